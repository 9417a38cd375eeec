package ports

import (
	"context"

	"orderintake/internal/core/domain/model/zone"
)

// ZoneRepository defines the read contract for delivery zones.
// Zones are administered out of band, so the intake service only reads them.
type ZoneRepository interface {
	// GetAllActive retrieves every active zone ordered by priority descending.
	GetAllActive(ctx context.Context) ([]*zone.Zone, error)

	// Get retrieves a zone by its unique identifier.
	Get(ctx context.Context, id int64) (*zone.Zone, error)
}
