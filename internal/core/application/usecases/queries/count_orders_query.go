package queries

import (
	"context"
	"errors"

	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountOrdersQueryIsNotConstructed = errors.New(
	"CountOrdersQuery must be created via NewCountOrdersQuery constructor",
)

// CountOrdersQuery counts orders in a given status. Backs the pending-orders
// gauge published for monitoring.
type CountOrdersQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewCountOrdersQuery creates a count query for the given status.
func NewCountOrdersQuery(status order.Status) (CountOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return CountOrdersQuery{}, err
	}

	return CountOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersQueryIsNotConstructed)
}

// Status returns the counted status.
func (q CountOrdersQuery) Status() order.Status {
	return q.status
}

// CountOrdersQueryHandler executes order counts against the database.
type CountOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersQueryHandler creates a handler for order counts.
func NewCountOrdersQueryHandler(db *gorm.DB) CountOrdersQueryHandler {
	return CountOrdersQueryHandler{db: db}
}

// Handle returns the number of orders currently in the queried status.
func (h CountOrdersQueryHandler) Handle(ctx context.Context, query CountOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders WHERE status = ?`, query.Status().String()).
		Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
