package order

import (
	"errors"
	"fmt"
	"time"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

// ErrOrderAlreadyPersisted is returned when MarkPersisted is called on an
// order that already carries a database identity.
var ErrOrderAlreadyPersisted = errors.New("order already has a persisted identity")

// Order is the aggregate root for a customer order.
//
// Invariants:
//   - at least one item; items are owned by the order (cascade lifecycle)
//   - delivery orders carry an address and coordinates; pickup orders carry
//     neither a shipping fee nor a zone reference
//   - totalAmount = sum of item totals + shippingFee, fixed at construction
//   - customer and zone are referenced by id only
//
// The identifier is database-generated: a new order has id 0 until the
// repository persists it and calls MarkPersisted.
type Order struct {
	id            int64
	customerID    *int64
	deliveryType  DeliveryType
	address       *Address
	point         *kernel.GeoPoint
	comments      string
	paymentMethod PaymentMethod
	status        Status
	totalAmount   float64
	shippingFee   float64
	zoneID        *int64
	items         []Item
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewOrder creates a pending order and computes its total amount once, as the
// sum of the item totals plus the shipping fee. For delivery orders the
// address and coordinates are required and the zone reference must identify
// the zone whose fee was charged; pickup orders must have a zero fee and no
// zone.
func NewOrder(
	deliveryType DeliveryType,
	address *Address,
	point *kernel.GeoPoint,
	comments string,
	paymentMethod PaymentMethod,
	items []Item,
	shippingFee float64,
	zoneID *int64,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		comments:      comments,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setDeliveryType(deliveryType),
		o.setPaymentMethod(paymentMethod),
		o.setItems(items),
		o.setShipping(deliveryType, address, point, shippingFee, zoneID),
	); err != nil {
		return nil, err
	}

	subtotal := 0.0
	for _, item := range o.items {
		subtotal += item.TotalPrice()
	}
	o.totalAmount = subtotal + o.shippingFee

	return o, nil
}

// RestoreOrder reconstructs a persisted order without recomputing the total:
// the stored amount is authoritative.
func RestoreOrder(
	id int64,
	customerID *int64,
	deliveryType DeliveryType,
	address *Address,
	point *kernel.GeoPoint,
	comments string,
	paymentMethod PaymentMethod,
	status Status,
	totalAmount float64,
	shippingFee float64,
	zoneID *int64,
	items []Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(deliveryType, address, point, comments, paymentMethod, items, shippingFee, zoneID)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.customerID = customerID
	o.status = status
	o.totalAmount = totalAmount
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two persisted orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the database identifier, zero until persisted.
func (o *Order) ID() int64 { return o.id }

// CustomerID returns the optional customer reference.
func (o *Order) CustomerID() *int64 { return o.customerID }

// DeliveryType returns pickup or delivery.
func (o *Order) DeliveryType() DeliveryType { return o.deliveryType }

// Address returns the delivery address, nil for pickup orders.
func (o *Order) Address() *Address { return o.address }

// Point returns the delivery coordinates, nil for pickup orders.
func (o *Order) Point() *kernel.GeoPoint { return o.point }

// Comments returns the free-form customer note.
func (o *Order) Comments() string { return o.comments }

// PaymentMethod returns the declared payment method.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// TotalAmount returns the amount fixed at construction.
func (o *Order) TotalAmount() float64 { return o.totalAmount }

// ShippingFee returns the delivery fee, zero for pickup orders.
func (o *Order) ShippingFee() float64 { return o.shippingFee }

// ZoneID returns the resolved zone reference, nil for pickup orders.
func (o *Order) ZoneID() *int64 { return o.zoneID }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns the persistence timestamp, zero until stored.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last persistence timestamp, zero until stored.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// AssignCustomer records the customer the upsert resolved for this order.
func (o *Order) AssignCustomer(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not a positive identifier", customerID))
	}

	o.customerID = &customerID
	return nil
}

// ChangeStatus sets a new lifecycle status. Only membership in the status set
// is validated; transition legality is deliberately not enforced (see Status).
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// MarkPersisted records the database-generated identity and timestamps after
// the repository stores the aggregate. It may be called once.
func (o *Order) MarkPersisted(id int64, itemIDs []int64, createdAt, updatedAt time.Time) error {
	if o.id != 0 {
		return ErrOrderAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if len(itemIDs) != len(o.items) {
		return errs.NewValueIsInvalidErrorWithCause("item ids",
			fmt.Errorf("got %d ids for %d items", len(itemIDs), len(o.items)))
	}

	o.id = id
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	for i := range o.items {
		o.items[i].id = itemIDs[i]
	}
	return nil
}

func (o *Order) setDeliveryType(deliveryType DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	o.deliveryType = deliveryType
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setShipping(
	deliveryType DeliveryType,
	address *Address,
	point *kernel.GeoPoint,
	shippingFee float64,
	zoneID *int64,
) error {
	if shippingFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shippingFee",
			fmt.Errorf("%v is negative", shippingFee))
	}

	switch deliveryType {
	case Delivery:
		if address == nil {
			return errs.NewValueIsRequiredError("address")
		}
		if err := address.Validate(); err != nil {
			return err
		}
		if point == nil {
			return errs.NewValueIsRequiredError("coordinates")
		}
		if err := point.Validate(); err != nil {
			return err
		}
		if zoneID != nil && *zoneID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("zoneId",
				fmt.Errorf("%d is not a positive identifier", *zoneID))
		}
	case Pickup:
		if shippingFee != 0 {
			return errs.NewValueIsInvalidErrorWithCause("shippingFee",
				errors.New("pickup orders cannot carry a shipping fee"))
		}
		if zoneID != nil {
			return errs.NewValueIsInvalidErrorWithCause("zoneId",
				errors.New("pickup orders cannot reference a zone"))
		}
	default:
		// setDeliveryType already rejected it; nothing more to check.
	}

	o.address = address
	o.point = point
	o.shippingFee = shippingFee
	o.zoneID = zoneID
	return nil
}
