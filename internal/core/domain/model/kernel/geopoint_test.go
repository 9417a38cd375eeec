package kernel_test

import (
	"testing"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"valid_point", -38.005, -57.545, false},
		{"valid_extremes", 90, -180, false},
		{"zero_zero_is_valid", 0, 0, false},
		{"lat_too_high", 90.01, 0, true},
		{"lat_too_low", -90.01, 0, true},
		{"lng_too_high", 0, 180.5, true},
		{"lng_too_low", 0, -180.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, err := kernel.NewGeoPoint(tt.lat, tt.lng)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.lat, pt.Lat(), 1e-9)
			assert.InDelta(t, tt.lng, pt.Lng(), 1e-9)
			require.NoError(t, pt.Validate())
		})
	}
}

func TestGeoPoint_Validate_ZeroValue(t *testing.T) {
	var pt kernel.GeoPoint

	err := pt.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(-38.005, -57.545)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(-38.005, -57.545)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(-38.006, -57.545)
	require.NoError(t, err)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	var zero kernel.GeoPoint
	_, err = a.IsEqual(zero)
	require.Error(t, err)
}

func TestGeoPoint_String(t *testing.T) {
	pt, err := kernel.NewGeoPoint(-38.005, -57.545)
	require.NoError(t, err)

	assert.Equal(t, "GeoPoint(-38.005000,-57.545000)", pt.String())
}
