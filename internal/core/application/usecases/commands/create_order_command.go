package commands

import (
	"errors"
	"regexp"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"
	"orderintake/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+\d][\d\s\-()]{7,20}$`)
)

// CreateOrderItem carries one order line as submitted by the client.
// ProductID is nil for free-form lines that do not reference the catalog.
type CreateOrderItem struct {
	ProductID  *int64
	Name       string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

// CreateOrderCommand represents a request to place a new order. It holds the
// customer contact details, the fulfillment choice with its location, and the
// cart lines. Field formats are checked here; cross-field business rules run
// in the handler's validation chain.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	fullName      string
	email         string
	phone         string
	deliveryType  order.DeliveryType
	address       *order.Address
	point         *kernel.GeoPoint
	comments      string
	paymentMethod order.PaymentMethod
	items         []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the customer name, contact formats, delivery type, payment
// method and item shapes. Returns an error if any validation fails.
func NewCreateOrderCommand(
	fullName string,
	email string,
	phone string,
	deliveryType order.DeliveryType,
	address *order.Address,
	point *kernel.GeoPoint,
	comments string,
	paymentMethod order.PaymentMethod,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard:    guard.NewConstructorGuard(),
		address:  address,
		point:    point,
		comments: comments,
	}

	if err := errors.Join(
		cmd.setFullName(fullName),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setDeliveryType(deliveryType),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// FullName returns the customer's display name.
func (c CreateOrderCommand) FullName() string {
	return c.fullName
}

// Email returns the contact email, possibly empty.
func (c CreateOrderCommand) Email() string {
	return c.email
}

// Phone returns the contact phone as submitted, possibly empty.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// DeliveryType returns the requested fulfillment type.
func (c CreateOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

// Address returns the delivery address, nil for pickup orders.
func (c CreateOrderCommand) Address() *order.Address {
	return c.address
}

// Point returns the delivery coordinates, nil for pickup orders.
func (c CreateOrderCommand) Point() *kernel.GeoPoint {
	return c.point
}

// Comments returns free-form order notes.
func (c CreateOrderCommand) Comments() string {
	return c.comments
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Items returns the submitted cart lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	out := make([]CreateOrderItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CreateOrderCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}

	c.fullName = fullName
	return nil
}

func (c *CreateOrderCommand) setEmail(email string) error {
	if email != "" && !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	if phone != "" && !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidError("phone")
	}

	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(deliveryType order.DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}

	c.deliveryType = deliveryType
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	for _, item := range items {
		if item.Name == "" {
			return errs.NewValueIsRequiredError("item name")
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidError("item quantity")
		}
		if item.UnitPrice <= 0 || item.TotalPrice <= 0 {
			return errs.NewValueIsInvalidError("item price")
		}
	}

	c.items = make([]CreateOrderItem, len(items))
	copy(c.items, items)
	return nil
}
