// Package order contains the order aggregate and its value objects.
//
// Order is the aggregate root: it exclusively owns its Items (cascade
// lifecycle) and references the customer and delivery zone by id only.
// The total amount is computed once at construction, as the sum of item
// totals plus the shipping fee, and is never recomputed implicitly.
//
// Status models the administrative lifecycle (PENDING through DELIVERED,
// with CANCELLED reachable from any non-terminal state). Transition
// legality is documented but deliberately not enforced; see Status.
package order
