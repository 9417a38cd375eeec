package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler serves the paged admin order listing.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for the admin order listing.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query. The total count and the page are read
// in two statements; the count drives the totalPages metadata.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	where := ""
	args := make([]any, 0, 3)
	if query.Status() != nil {
		where = ` WHERE status = ?`
		args = append(args, query.Status().String())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders`+where, args...).
		Scan(&total).Error; err != nil {
		return GetOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+orderColumns+` FROM orders`+where+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		append(args, query.Limit(), offset)...,
	).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.Limit())
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return GetOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	if err = loadOrderItems(ctx, h.db, orders); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	totalPages := int((total + int64(query.Limit()) - 1) / int64(query.Limit()))

	return GetOrdersQueryResponse{
		Orders: orders,
		Meta: PageMeta{
			Total:      total,
			Page:       query.Page(),
			Limit:      query.Limit(),
			TotalPages: totalPages,
		},
	}, nil
}
