package kernel

import (
	"errors"
	"fmt"

	"orderintake/internal/pkg/errs"
	"orderintake/internal/pkg/guard"
)

const (
	// LatMin is the minimum valid latitude in degrees.
	LatMin = -90.0
	// LatMax is the maximum valid latitude in degrees.
	LatMax = 90.0
	// LngMin is the minimum valid longitude in degrees.
	LngMin = -180.0
	// LngMax is the maximum valid longitude in degrees.
	LngMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable geographic coordinate in floating-point degrees.
// The zero value is invalid and fails validation; use NewGeoPoint.
//
// Example:
//
//	pt, err := kernel.NewGeoPoint(-38.005, -57.545)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after validating that latitude is within
// [-90, 90] and longitude within [-180, 180] degrees.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	pt := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(pt.setLat(lat), pt.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return pt, nil
}

// Validate checks that the GeoPoint was created through its constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String returns a human-readable representation, useful for logs.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lng)
}

// IsEqual compares two points by exact coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatMin || lat > LatMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatMin, LatMax)
	}

	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < LngMin || lng > LngMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LngMin, LngMax)
	}

	p.lng = lng
	return nil
}
