package order

import (
	"fmt"

	"orderintake/internal/pkg/errs"
)

// PaymentMethod identifies how the customer intends to pay.
// Payment processing itself is out of scope; the method is recorded only.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// Cash on pickup or delivery.
	Cash

	// BankTransfer paid ahead of preparation.
	BankTransfer

	// OnlinePayment through an external payment provider.
	OnlinePayment
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentMethodUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		Cash:          "CASH",
		BankTransfer:  "BANK_TRANSFER",
		OnlinePayment: "ONLINE_PAYMENT",
	}
}

// Validate checks that the PaymentMethod is one of the defined values.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the transport name, e.g. "BANK_TRANSFER".
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// PaymentMethodFromString parses a transport name such as "CASH".
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for m, name := range getPaymentMethodStrings() {
		if name == s {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}
