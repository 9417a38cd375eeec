package queries

import (
	"errors"

	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"
	"orderintake/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

const (
	// DefaultPageSize is used when the client does not specify a limit.
	DefaultPageSize = 20
	// MaxPageSize caps the page size to keep admin listings bounded.
	MaxPageSize = 100
)

// GetOrdersQuery retrieves a page of orders for the admin surface, newest
// first, optionally filtered by status.
type GetOrdersQuery struct {
	status *order.Status
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paged listing query. Page numbering starts at
// one; zero values fall back to the first page and the default size.
func NewGetOrdersQuery(status *order.Status, page, limit int) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if page < 0 || limit < 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("pagination")
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return GetOrdersQuery{
		status: status,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when listing all orders.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the one-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// PageMeta describes the position of a page within the full result set.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// GetOrdersQueryResponse is one page of orders plus paging metadata.
type GetOrdersQueryResponse struct {
	Orders []OrderResponse `json:"orders"`
	Meta   PageMeta        `json:"meta"`
}
