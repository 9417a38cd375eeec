package services

import (
	"sort"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/zone"
)

// ZoneResolver matches a delivery location against the configured zones.
// Zones are checked in descending priority so overlapping polygons resolve
// to the most specific zone. Ties on priority fall back to lower id first.
type ZoneResolver struct{}

// NewZoneResolver creates a ZoneResolver.
func NewZoneResolver() ZoneResolver {
	return ZoneResolver{}
}

// Resolve returns the highest-priority active zone containing the point,
// or nil when the point is outside every zone. Inactive zones are skipped
// even if present in the input.
func (r ZoneResolver) Resolve(point kernel.GeoPoint, zones []*zone.Zone) (*zone.Zone, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]*zone.Zone, 0, len(zones))
	for _, z := range zones {
		if z != nil && z.IsActive() {
			candidates = append(candidates, z)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority() != candidates[j].Priority() {
			return candidates[i].Priority() > candidates[j].Priority()
		}
		return candidates[i].ID() < candidates[j].ID()
	})

	for _, z := range candidates {
		contains, err := z.Contains(point)
		if err != nil {
			return nil, err
		}
		if contains {
			return z, nil
		}
	}

	return nil, nil
}
