// Package zone contains the delivery-zone read model.
//
// Zones are created and updated by administrative seeding; the order path
// only reads them. Each zone carries a closed polygon, an integer delivery
// fee, and a priority rank: when two active zones overlap, the one with the
// higher priority wins regardless of polygon shape or area.
package zone

import (
	"errors"
	"fmt"
	"time"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/errs"
)

// ErrZoneIsNotConstructed is returned when a Zone instance was not created
// through NewZone or RestoreZone.
var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone or RestoreZone constructors")

// Zone is a named geographic polygon with a delivery fee and a priority rank.
// The version field is an optimistic-concurrency counter maintained by the
// administrative seeding path; the order path treats it as opaque.
type Zone struct {
	id          int64
	name        string
	deliveryFee int64
	polygon     kernel.Polygon
	priority    int
	active      bool
	version     int
	updatedAt   time.Time

	isConstructed bool
}

// NewZone creates an unpersisted zone, used by seeding and tests.
func NewZone(name string, deliveryFee int64, polygon kernel.Polygon, priority int, active bool) (*Zone, error) {
	z := &Zone{
		priority:      priority,
		active:        active,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		z.setName(name),
		z.setDeliveryFee(deliveryFee),
		z.setPolygon(polygon),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone reconstructs a persisted zone.
func RestoreZone(
	id int64,
	name string,
	deliveryFee int64,
	polygon kernel.Polygon,
	priority int,
	active bool,
	version int,
	updatedAt time.Time,
) (*Zone, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("zone id",
			fmt.Errorf("%d is not a positive identifier", id))
	}

	z, err := NewZone(name, deliveryFee, polygon, priority, active)
	if err != nil {
		return nil, err
	}

	z.id = id
	z.version = version
	z.updatedAt = updatedAt
	return z, nil
}

// Validate ensures the Zone was created through a factory function.
func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

// ID returns the database identifier.
func (z *Zone) ID() int64 { return z.id }

// Name returns the zone's display name.
func (z *Zone) Name() string { return z.name }

// DeliveryFee returns the fee in integer currency units.
func (z *Zone) DeliveryFee() int64 { return z.deliveryFee }

// Polygon returns the closed boundary ring.
func (z *Zone) Polygon() kernel.Polygon { return z.polygon }

// Priority returns the rank; higher wins on overlap.
func (z *Zone) Priority() int { return z.priority }

// IsActive reports whether the zone participates in resolution.
func (z *Zone) IsActive() bool { return z.active }

// Version returns the optimistic-concurrency counter.
func (z *Zone) Version() int { return z.version }

// UpdatedAt returns the last administrative change timestamp.
func (z *Zone) UpdatedAt() time.Time { return z.updatedAt }

// Contains reports whether the point lies inside the zone's polygon.
func (z *Zone) Contains(pt kernel.GeoPoint) (bool, error) {
	if err := z.Validate(); err != nil {
		return false, err
	}
	return z.polygon.Contains(pt)
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("zone name")
	}
	z.name = name
	return nil
}

func (z *Zone) setDeliveryFee(fee int64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			fmt.Errorf("%d is negative", fee))
	}
	z.deliveryFee = fee
	return nil
}

func (z *Zone) setPolygon(polygon kernel.Polygon) error {
	if err := polygon.Validate(); err != nil {
		return err
	}
	z.polygon = polygon
	return nil
}
