// Package services contains stateless domain services for the order-intake
// pipeline.
//
// OrderValidator runs the fail-fast rule chain every incoming order request
// passes before any I/O happens: business hours, item price integrity,
// address completeness, and contact presence, in that order.
//
// ZoneResolver answers "which delivery zone contains this point" over a
// priority-ordered set of active zones. BusinessHours evaluates the shop's
// opening window, including windows that cross midnight.
package services
