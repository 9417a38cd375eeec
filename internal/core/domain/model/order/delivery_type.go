package order

import (
	"fmt"

	"orderintake/internal/pkg/errs"
)

// DeliveryType distinguishes pickup orders from delivered ones.
// Delivery orders require an address and coordinates; pickup orders
// carry neither a shipping fee nor a zone reference.
type DeliveryType int

const (
	// DeliveryTypeUnknown represents an invalid or undefined delivery type.
	DeliveryTypeUnknown DeliveryType = iota

	// Pickup orders are collected at the shop.
	Pickup

	// Delivery orders are shipped to the customer's address.
	Delivery
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	//nolint:exhaustive // DeliveryTypeUnknown is intentionally excluded as it's invalid
	return map[DeliveryType]string{
		Pickup:   "PICKUP",
		Delivery: "DELIVERY",
	}
}

// Validate checks that the DeliveryType is one of the defined values.
func (t DeliveryType) Validate() error {
	if _, ok := getDeliveryTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryType",
			fmt.Errorf("%d is not a valid delivery type", t))
	}
	return nil
}

// String returns the transport name, e.g. "DELIVERY".
func (t DeliveryType) String() string {
	if str, ok := getDeliveryTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// DeliveryTypeFromString parses a transport name such as "PICKUP".
func DeliveryTypeFromString(s string) (DeliveryType, error) {
	for t, name := range getDeliveryTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return DeliveryTypeUnknown, errs.NewValueIsInvalidErrorWithCause("deliveryType",
		fmt.Errorf("%q is not a valid delivery type", s))
}
