// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// JSONColumn stores a JSON document in a jsonb column. A plain []byte would
// be sent as bytea by the driver, which postgres refuses to cast to jsonb.
type JSONColumn json.RawMessage

// Value implements driver.Valuer.
func (j JSONColumn) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// Scan implements sql.Scanner.
func (j *JSONColumn) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONColumn(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONColumn", value)
	}
	return nil
}

// GormDataType tells GORM to declare the column as jsonb.
func (JSONColumn) GormDataType() string {
	return "jsonb"
}

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary columns use NUMERIC(10,2) so values survive round trips without
// binary float drift; the address is denormalized into a jsonb document.
type OrderDTO struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID    *int64          `gorm:"index"`
	DeliveryType  string          `gorm:"type:varchar(16);not null"`
	Address       JSONColumn      `gorm:"type:jsonb"`
	Lat           *float64        `gorm:"type:double precision"`
	Lng           *float64        `gorm:"type:double precision"`
	Comments      string          `gorm:"type:text"`
	PaymentMethod string          `gorm:"type:varchar(24);not null"`
	Status        string          `gorm:"type:varchar(16);not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ShippingFee   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ZoneID        *int64          `gorm:"index"`
	Items         []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted order line.
type ItemDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	OrderID    int64           `gorm:"not null;index"`
	ProductID  *int64          `gorm:"index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// addressDocument is the jsonb shape of a delivery address.
type addressDocument struct {
	Street     string `json:"street"`
	Floor      string `json:"floor,omitempty"`
	City       string `json:"city"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Reference  string `json:"reference,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	dto := OrderDTO{
		ID:            aggregate.ID(),
		CustomerID:    aggregate.CustomerID(),
		DeliveryType:  aggregate.DeliveryType().String(),
		Comments:      aggregate.Comments(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		Status:        aggregate.Status().String(),
		TotalAmount:   decimal.NewFromFloat(aggregate.TotalAmount()).Round(2),
		ShippingFee:   decimal.NewFromFloat(aggregate.ShippingFee()).Round(2),
		ZoneID:        aggregate.ZoneID(),
	}

	if addr := aggregate.Address(); addr != nil {
		doc, err := json.Marshal(addressDocument{
			Street:     addr.Street(),
			Floor:      addr.Floor(),
			City:       addr.City(),
			Province:   addr.Province(),
			PostalCode: addr.PostalCode(),
			Reference:  addr.Reference(),
		})
		if err != nil {
			return OrderDTO{}, err
		}
		dto.Address = JSONColumn(doc)
	}
	if pt := aggregate.Point(); pt != nil {
		lat, lng := pt.Lat(), pt.Lng()
		dto.Lat = &lat
		dto.Lng = &lng
	}

	dto.Items = make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			ID:         item.ID(),
			OrderID:    aggregate.ID(),
			ProductID:  item.ProductID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  decimal.NewFromFloat(item.UnitPrice()).Round(2),
			TotalPrice: decimal.NewFromFloat(item.TotalPrice()).Round(2),
		})
	}

	return dto, nil
}

// toDomain converts a database DTO back into an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	deliveryType, err := order.DeliveryTypeFromString(dto.DeliveryType)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var address *order.Address
	if len(dto.Address) > 0 {
		var doc addressDocument
		if err = json.Unmarshal(dto.Address, &doc); err != nil {
			return nil, err
		}
		addr := order.NewAddress(doc.Street, doc.Floor, doc.City, doc.Province, doc.PostalCode, doc.Reference)
		address = &addr
	}

	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		pt, ptErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if ptErr != nil {
			return nil, ptErr
		}
		point = &pt
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.RestoreItem(
			itemDTO.ID,
			itemDTO.ProductID,
			itemDTO.Name,
			itemDTO.Quantity,
			itemDTO.UnitPrice.InexactFloat64(),
			itemDTO.TotalPrice.InexactFloat64(),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		deliveryType,
		address,
		point,
		dto.Comments,
		paymentMethod,
		status,
		dto.TotalAmount.InexactFloat64(),
		dto.ShippingFee.InexactFloat64(),
		dto.ZoneID,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
