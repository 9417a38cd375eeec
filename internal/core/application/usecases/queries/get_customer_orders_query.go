package queries

import (
	"errors"

	"orderintake/internal/pkg/errs"
	"orderintake/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves the order history of one customer,
// newest first.
type GetCustomerOrdersQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's orders.
func NewGetCustomerOrdersQuery(customerID int64) (GetCustomerOrdersQuery, error) {
	if customerID <= 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidError("customerID")
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the requested customer identifier.
func (q GetCustomerOrdersQuery) CustomerID() int64 {
	return q.customerID
}
