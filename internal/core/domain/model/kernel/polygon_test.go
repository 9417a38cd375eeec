package kernel_test

import (
	"testing"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	pt, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return pt
}

// closedSquare returns the ring of the Mar del Plata "Centro" seed zone.
func closedSquare(t *testing.T) []kernel.GeoPoint {
	t.Helper()
	return []kernel.GeoPoint{
		mustPoint(t, -38.0000, -57.5500),
		mustPoint(t, -38.0000, -57.5400),
		mustPoint(t, -38.0100, -57.5400),
		mustPoint(t, -38.0100, -57.5500),
		mustPoint(t, -38.0000, -57.5500),
	}
}

func TestNewPolygon(t *testing.T) {
	t.Run("valid_closed_ring", func(t *testing.T) {
		poly, err := kernel.NewPolygon(closedSquare(t))

		require.NoError(t, err)
		require.NoError(t, poly.Validate())
		assert.Len(t, poly.Vertices(), 5)
	})

	t.Run("too_few_vertices", func(t *testing.T) {
		ring := []kernel.GeoPoint{
			mustPoint(t, 0, 0),
			mustPoint(t, 0, 1),
			mustPoint(t, 0, 0),
		}

		_, err := kernel.NewPolygon(ring)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("open_ring_rejected", func(t *testing.T) {
		ring := []kernel.GeoPoint{
			mustPoint(t, 0, 0),
			mustPoint(t, 0, 1),
			mustPoint(t, 1, 1),
			mustPoint(t, 1, 0),
		}

		_, err := kernel.NewPolygon(ring)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_vertex_rejected", func(t *testing.T) {
		var zero kernel.GeoPoint
		ring := []kernel.GeoPoint{zero, zero, zero, zero}

		_, err := kernel.NewPolygon(ring)

		require.Error(t, err)
	})
}

func TestPolygon_Contains(t *testing.T) {
	poly, err := kernel.NewPolygon(closedSquare(t))
	require.NoError(t, err)

	t.Run("point_strictly_inside", func(t *testing.T) {
		inside, containsErr := poly.Contains(mustPoint(t, -38.0050, -57.5450))

		require.NoError(t, containsErr)
		assert.True(t, inside)
	})

	t.Run("point_strictly_outside", func(t *testing.T) {
		inside, containsErr := poly.Contains(mustPoint(t, -37.9000, -57.5450))

		require.NoError(t, containsErr)
		assert.False(t, inside)
	})

	t.Run("point_outside_on_longitude", func(t *testing.T) {
		inside, containsErr := poly.Contains(mustPoint(t, -38.0050, -57.6000))

		require.NoError(t, containsErr)
		assert.False(t, inside)
	})

	t.Run("zero_value_point_fails_validation", func(t *testing.T) {
		var zero kernel.GeoPoint

		_, containsErr := poly.Contains(zero)

		require.Error(t, containsErr)
	})

	t.Run("concave_ring", func(t *testing.T) {
		// L-shaped polygon: the notch at the top right is outside.
		ring := []kernel.GeoPoint{
			mustPoint(t, 0, 0),
			mustPoint(t, 0, 4),
			mustPoint(t, 2, 4),
			mustPoint(t, 2, 2),
			mustPoint(t, 4, 2),
			mustPoint(t, 4, 0),
			mustPoint(t, 0, 0),
		}
		concave, polyErr := kernel.NewPolygon(ring)
		require.NoError(t, polyErr)

		inside, containsErr := concave.Contains(mustPoint(t, 1, 1))
		require.NoError(t, containsErr)
		assert.True(t, inside)

		inside, containsErr = concave.Contains(mustPoint(t, 3, 3))
		require.NoError(t, containsErr)
		assert.False(t, inside)
	})
}

func TestPolygon_Vertices_ReturnsCopy(t *testing.T) {
	poly, err := kernel.NewPolygon(closedSquare(t))
	require.NoError(t, err)

	first := poly.Vertices()
	first[0] = mustPoint(t, 1, 1)

	second := poly.Vertices()
	equal, err := second[0].IsEqual(mustPoint(t, -38.0000, -57.5500))
	require.NoError(t, err)
	assert.True(t, equal)
}
