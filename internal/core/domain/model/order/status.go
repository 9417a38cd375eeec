package order

import (
	"fmt"

	"orderintake/internal/pkg/errs"
)

// Status represents the administrative lifecycle state of an order.
//
// The intended flow is:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Delivered
//	    │            │             │          │
//	    └────────────┴─────────────┴──────────┴──> Cancelled
//
// Transitions are administrative and unconditional: any valid status may be
// set from any other, including from terminal states. Legality of a
// transition is not validated, so operators can correct misclicked statuses.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every created order.
	Pending

	// Confirmed indicates the shop has accepted the order.
	Confirmed

	// Preparing indicates the order is being prepared.
	Preparing

	// Ready indicates the order is ready for pickup or dispatch.
	Ready

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is the terminal abort status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// Validate checks that the Status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the transport name of the status, e.g. "PENDING".
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further forward transition is expected.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// StatusFromString parses a transport status name such as "PENDING".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}
