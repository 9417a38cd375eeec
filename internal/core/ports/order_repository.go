package ports

import (
	"context"

	"orderintake/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing orders with their items and retrieving them
// by identifier for status management.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// On success the aggregate is marked with its database-assigned
	// identifiers and timestamps.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must already exist in the repository.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all its items.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
