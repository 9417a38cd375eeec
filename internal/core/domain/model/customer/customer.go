// Package customer contains the customer aggregate.
//
// A customer is identified by email or normalized phone; every accepted order
// that carries contact info refreshes the stored name and contact with
// last-writer-wins semantics. There is no merge and no uniqueness constraint:
// concurrent first-time submissions with identical contact info can create
// two records (an accepted limitation of the intake flow).
package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"orderintake/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructors")

// NormalizePhone strips whitespace, hyphens and parentheses so that the same
// number always produces the same identity key. The whole Unicode whitespace
// class is removed, not just spaces and tabs, so a stray newline or carriage
// return can never leak into the stored key. Digits and a leading plus survive
// untouched. An empty input stays empty.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Customer is the aggregate for a person placing orders. Email and phone are
// each optional, but at least one must be present: a customer record only
// exists because an order supplied contact info.
type Customer struct {
	id        int64
	fullName  string
	email     string
	phone     string
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCustomer creates an unpersisted customer. The phone is normalized before
// it is stored.
func NewCustomer(fullName, email, phone string) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setFullName(fullName),
		c.setContact(email, phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a persisted customer. The stored phone is
// assumed to be normalized already.
func RestoreCustomer(id int64, fullName, email, phone string, createdAt, updatedAt time.Time) (*Customer, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer id",
			fmt.Errorf("%d is not a positive identifier", id))
	}

	c, err := NewCustomer(fullName, email, phone)
	if err != nil {
		return nil, err
	}

	c.id = id
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the Customer was created through a factory function.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the database identifier, zero until persisted.
func (c *Customer) ID() int64 { return c.id }

// FullName returns the customer's name as last supplied.
func (c *Customer) FullName() string { return c.fullName }

// Email returns the email, empty when the customer was matched by phone only.
func (c *Customer) Email() string { return c.email }

// Phone returns the normalized phone, empty when matched by email only.
func (c *Customer) Phone() string { return c.phone }

// CreatedAt returns the persistence timestamp, zero until stored.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last persistence timestamp, zero until stored.
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// Refresh overwrites name and contact info with the values from a new order
// submission. Last writer wins; there is no field-level merge.
func (c *Customer) Refresh(fullName, email, phone string) error {
	if err := c.setFullName(fullName); err != nil {
		return err
	}
	return c.setContact(email, phone)
}

// MarkPersisted records the database-generated identity and timestamps.
func (c *Customer) MarkPersisted(id int64, createdAt, updatedAt time.Time) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customer id",
			fmt.Errorf("%d is not a positive identifier", id))
	}

	c.id = id
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return nil
}

func (c *Customer) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *Customer) setContact(email, phone string) error {
	normalized := NormalizePhone(phone)
	if email == "" && normalized == "" {
		return errs.NewValueIsRequiredError("email or phone")
	}

	c.email = email
	c.phone = normalized
	return nil
}
