// Package ports defines repository interfaces for the order intake domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"orderintake/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// FindByContact looks up a customer by email or normalized phone number.
	// Either argument may be empty; the lowest-id match wins when both
	// contacts resolve to different rows. Returns nil without error when no
	// customer matches.
	FindByContact(ctx context.Context, email, phone string) (*customer.Customer, error)
}
