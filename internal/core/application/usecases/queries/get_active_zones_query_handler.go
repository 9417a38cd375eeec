package queries

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

// GetActiveZonesQueryHandler retrieves active zones from the database,
// highest priority first.
type GetActiveZonesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveZonesQueryHandler creates a handler for zone retrieval.
func NewGetActiveZonesQueryHandler(db *gorm.DB) GetActiveZonesQueryHandler {
	return GetActiveZonesQueryHandler{db: db}
}

// Handle executes the query and decodes each zone's polygon document.
func (h GetActiveZonesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveZonesQuery,
) ([]ZoneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			delivery_fee,
			polygon,
			priority,
			version,
			updated_at
		FROM zones
		WHERE active
		ORDER BY priority DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]ZoneResponse, 0)
	for rows.Next() {
		var (
			resp       ZoneResponse
			polygonDoc []byte
		)

		err = rows.Scan(&resp.ID, &resp.Name, &resp.DeliveryFee, &polygonDoc,
			&resp.Priority, &resp.Version, &resp.UpdatedAt)
		if err != nil {
			return nil, err
		}

		if err = json.Unmarshal(polygonDoc, &resp.Polygon); err != nil {
			return nil, err
		}
		zones = append(zones, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
