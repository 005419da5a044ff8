// Package order provides domain entities and business logic for the order
// lifecycle. It implements the Order aggregate root with a validated status
// state machine and the human-facing order-number value object.
//
// The package includes:
//   - Order: the aggregate root owning identity, item snapshot and lifecycle
//   - Status: a state machine enforcing valid status transitions
//   - Action: the wire-level lifecycle triggers mapped onto transitions
//   - order numbers: generation and shape validation for ORD-... labels
//
// Key business rules:
//   - Submitted orders start in Pending
//   - The happy path is Pending -> Approved -> Paid -> Preparing -> Delivering -> Completed
//   - Rejection is only possible from Pending; cancellation from Pending or Approved
//   - Cancellation is owner-only; the ownership check precedes the transition check
//   - Any transition outside the table is refused with ErrInvalidTransition
package order
