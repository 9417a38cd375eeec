package zone_test

import (
	"testing"
	"time"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/zone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePolygon(t *testing.T, latNorth, lngWest, latSouth, lngEast float64) kernel.Polygon {
	t.Helper()
	ring := make([]kernel.GeoPoint, 0, 5)
	for _, coords := range [][2]float64{
		{latNorth, lngWest},
		{latNorth, lngEast},
		{latSouth, lngEast},
		{latSouth, lngWest},
		{latNorth, lngWest},
	} {
		pt, err := kernel.NewGeoPoint(coords[0], coords[1])
		require.NoError(t, err)
		ring = append(ring, pt)
	}
	poly, err := kernel.NewPolygon(ring)
	require.NoError(t, err)
	return poly
}

func TestNewZone(t *testing.T) {
	poly := squarePolygon(t, -38.00, -57.55, -38.01, -57.54)

	z, err := zone.NewZone("Centro", 500, poly, 10, true)

	require.NoError(t, err)
	require.NoError(t, z.Validate())
	assert.Equal(t, "Centro", z.Name())
	assert.Equal(t, int64(500), z.DeliveryFee())
	assert.Equal(t, 10, z.Priority())
	assert.True(t, z.IsActive())
	assert.Equal(t, 1, z.Version())
}

func TestNewZone_Invalid(t *testing.T) {
	poly := squarePolygon(t, -38.00, -57.55, -38.01, -57.54)

	_, err := zone.NewZone("", 500, poly, 10, true)
	require.Error(t, err)

	_, err = zone.NewZone("Centro", -1, poly, 10, true)
	require.Error(t, err)

	var zeroPoly kernel.Polygon
	_, err = zone.NewZone("Centro", 500, zeroPoly, 10, true)
	require.Error(t, err)
}

func TestZone_Contains(t *testing.T) {
	poly := squarePolygon(t, -38.00, -57.55, -38.01, -57.54)
	z, err := zone.NewZone("Centro", 500, poly, 10, true)
	require.NoError(t, err)

	inside, err := kernel.NewGeoPoint(-38.005, -57.545)
	require.NoError(t, err)
	outside, err := kernel.NewGeoPoint(-37.90, -57.545)
	require.NoError(t, err)

	got, err := z.Contains(inside)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = z.Contains(outside)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestRestoreZone(t *testing.T) {
	poly := squarePolygon(t, -38.00, -57.55, -38.01, -57.54)
	now := time.Now()

	z, err := zone.RestoreZone(3, "Centro", 500, poly, 10, true, 4, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), z.ID())
	assert.Equal(t, 4, z.Version())
	assert.Equal(t, now, z.UpdatedAt())

	_, err = zone.RestoreZone(0, "Centro", 500, poly, 10, true, 1, now)
	require.Error(t, err)
}
