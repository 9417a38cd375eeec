package order

import (
	"errors"
	"fmt"

	"orderintake/internal/pkg/errs"
	"orderintake/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructors")

// Item is an order line. The product name is denormalized at order time so a
// later catalog rename never changes what the customer bought. The product
// reference is optional: free-form items carry no product id.
//
// The unit-price/total-price consistency rule (tolerance 0.01) belongs to the
// validation pipeline, which reports the offending item by position; Item only
// enforces structural invariants.
type Item struct { //nolint:recvcheck //using for validation
	id        int64
	productID *int64
	name      string
	quantity  int
	unitPrice float64
	total     float64

	guard guard.ConstructorGuard
}

// NewItem creates an order line with a positive quantity and prices.
func NewItem(productID *int64, name string, quantity int, unitPrice, totalPrice float64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setTotal(totalPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs a persisted order line including its identifier.
func RestoreItem(id int64, productID *int64, name string, quantity int, unitPrice, totalPrice float64) (Item, error) {
	item, err := NewItem(productID, name, quantity, unitPrice, totalPrice)
	if err != nil {
		return Item{}, err
	}

	item.id = id
	return item, nil
}

// Validate checks that the Item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the persisted identifier, zero until the owning order is stored.
func (i Item) ID() int64 { return i.id }

// ProductID returns the optional catalog reference.
func (i Item) ProductID() *int64 { return i.productID }

// Name returns the product name captured at order time.
func (i Item) Name() string { return i.name }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() float64 { return i.unitPrice }

// TotalPrice returns the line total.
func (i Item) TotalPrice() float64 { return i.total }

func (i *Item) setProductID(productID *int64) error {
	if productID != nil && *productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not a positive identifier", *productID))
	}

	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is not greater than 0", unitPrice))
	}

	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setTotal(totalPrice float64) error {
	if totalPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%v is not greater than 0", totalPrice))
	}

	i.total = totalPrice
	return nil
}
