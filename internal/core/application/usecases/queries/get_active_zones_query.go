package queries

import (
	"errors"
	"time"

	"orderintake/internal/pkg/guard"
)

var ErrGetActiveZonesQueryIsNotConstructed = errors.New(
	"GetActiveZonesQuery must be created via NewGetActiveZonesQuery constructor",
)

// GetActiveZonesQuery retrieves the active delivery zones so that clients
// can show coverage and fees before an order is placed.
type GetActiveZonesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveZonesQuery creates a parameterless query for active zones.
func NewGetActiveZonesQuery() GetActiveZonesQuery {
	return GetActiveZonesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveZonesQueryIsNotConstructed)
}

// ZoneResponse is the read model for one delivery zone. Polygon vertices are
// [latitude, longitude] pairs forming a closed ring.
type ZoneResponse struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	DeliveryFee int64        `json:"deliveryFee"`
	Polygon     [][2]float64 `json:"polygon"`
	Priority    int          `json:"priority"`
	Version     int          `json:"version"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
