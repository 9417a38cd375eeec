// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AddressResponse is the read model for a delivery address.
type AddressResponse struct {
	Street     string `json:"street"`
	Floor      string `json:"floor,omitempty"`
	City       string `json:"city"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Reference  string `json:"reference,omitempty"`
}

// ProductResponse is the catalog snapshot attached to an order line when the
// referenced product still exists. Prices are normalized through the same
// decimal-to-number path as the monetary order columns.
type ProductResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Active bool    `json:"active"`
}

// OrderItemResponse is the read model for one order line. Product is nil for
// free-form lines and for lines whose product has since been deleted.
type OrderItemResponse struct {
	ID         int64            `json:"id"`
	ProductID  *int64           `json:"productId,omitempty"`
	Name       string           `json:"name"`
	Quantity   int              `json:"quantity"`
	UnitPrice  float64          `json:"unitPrice"`
	TotalPrice float64          `json:"totalPrice"`
	Product    *ProductResponse `json:"product,omitempty"`
}

// OrderResponse is the normalized read model for an order. Monetary values
// are plain numbers and identifiers plain integers regardless of how the
// database driver surfaces NUMERIC and BIGINT columns.
type OrderResponse struct {
	ID            int64               `json:"id"`
	CustomerID    *int64              `json:"customerId,omitempty"`
	DeliveryType  string              `json:"deliveryType"`
	Address       *AddressResponse    `json:"address,omitempty"`
	Lat           *float64            `json:"lat,omitempty"`
	Lng           *float64            `json:"lng,omitempty"`
	Comments      string              `json:"comments,omitempty"`
	PaymentMethod string              `json:"paymentMethod"`
	Status        string              `json:"status"`
	TotalAmount   float64             `json:"totalAmount"`
	ShippingFee   float64             `json:"shippingFee"`
	ZoneID        *int64              `json:"zoneId,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

const orderColumns = `
	id,
	customer_id,
	delivery_type,
	address,
	lat,
	lng,
	comments,
	payment_method,
	status,
	total_amount,
	shipping_fee,
	zone_id,
	created_at,
	updated_at
`

// scanOrderRow reads one row produced by a SELECT over orderColumns.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp        OrderResponse
		customerID  sql.NullInt64
		addressDoc  []byte
		lat, lng    sql.NullFloat64
		comments    sql.NullString
		totalAmount decimal.Decimal
		shippingFee decimal.Decimal
		zoneID      sql.NullInt64
	)

	err := rows.Scan(
		&resp.ID,
		&customerID,
		&resp.DeliveryType,
		&addressDoc,
		&lat,
		&lng,
		&comments,
		&resp.PaymentMethod,
		&resp.Status,
		&totalAmount,
		&shippingFee,
		&zoneID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if customerID.Valid {
		resp.CustomerID = &customerID.Int64
	}
	if len(addressDoc) > 0 {
		var addr AddressResponse
		if err = json.Unmarshal(addressDoc, &addr); err != nil {
			return OrderResponse{}, err
		}
		resp.Address = &addr
	}
	if lat.Valid {
		resp.Lat = &lat.Float64
	}
	if lng.Valid {
		resp.Lng = &lng.Float64
	}
	if comments.Valid {
		resp.Comments = comments.String
	}
	if zoneID.Valid {
		resp.ZoneID = &zoneID.Int64
	}
	resp.TotalAmount = totalAmount.InexactFloat64()
	resp.ShippingFee = shippingFee.InexactFloat64()
	resp.Items = make([]OrderItemResponse, 0)

	return resp, nil
}

// loadOrderItems attaches item read models to the given orders in one query.
func loadOrderItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[int64]int, len(orders))
	ids := make([]int64, 0, len(orders))
	for i, o := range orders {
		index[o.ID] = i
		ids = append(ids, o.ID)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.id,
			oi.order_id,
			oi.product_id,
			oi.name,
			oi.quantity,
			oi.unit_price,
			oi.total_price,
			p.id,
			p.name,
			p.price,
			p.active
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id, oi.id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item           OrderItemResponse
			orderID        int64
			productID      sql.NullInt64
			unitPrice      decimal.Decimal
			totalPrice     decimal.Decimal
			snapshotID     sql.NullInt64
			snapshotName   sql.NullString
			snapshotPrice  decimal.NullDecimal
			snapshotActive sql.NullBool
		)

		err = rows.Scan(
			&item.ID,
			&orderID,
			&productID,
			&item.Name,
			&item.Quantity,
			&unitPrice,
			&totalPrice,
			&snapshotID,
			&snapshotName,
			&snapshotPrice,
			&snapshotActive,
		)
		if err != nil {
			return err
		}

		if productID.Valid {
			item.ProductID = &productID.Int64
		}
		item.UnitPrice = unitPrice.InexactFloat64()
		item.TotalPrice = totalPrice.InexactFloat64()

		if snapshotID.Valid {
			item.Product = &ProductResponse{
				ID:     snapshotID.Int64,
				Name:   snapshotName.String,
				Price:  snapshotPrice.Decimal.InexactFloat64(),
				Active: snapshotActive.Bool,
			}
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
