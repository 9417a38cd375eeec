package order

import (
	"errors"

	"orderintake/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the structured delivery destination. All fields are optional at
// construction; completeness requirements depend on the delivery type and are
// checked by the order validation pipeline, which owns the user-facing
// messages for missing street or city.
type Address struct {
	street     string
	floor      string
	city       string
	province   string
	postalCode string
	reference  string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address from its structured parts.
func NewAddress(street, floor, city, province, postalCode, reference string) Address {
	return Address{
		street:     street,
		floor:      floor,
		city:       city,
		province:   province,
		postalCode: postalCode,
		reference:  reference,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate checks that the Address was created through its constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// IsComplete reports whether the address carries at least a street and a city,
// the minimum required to dispatch a delivery order.
func (a Address) IsComplete() bool {
	return a.street != "" && a.city != ""
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// Floor returns the floor/apartment line.
func (a Address) Floor() string { return a.floor }

// City returns the city.
func (a Address) City() string { return a.city }

// Province returns the province.
func (a Address) Province() string { return a.province }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Reference returns the free-form delivery note.
func (a Address) Reference() string { return a.reference }
