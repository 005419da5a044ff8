package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel error for InvalidTransitionError.
// Callers can use errors.Is to detect a refused status change regardless
// of the concrete from/to pair.
var ErrInvalidTransition = errors.New("status transition is not allowed")

// InvalidTransitionError reports a status change that the lifecycle state
// machine does not permit. The stored status is left untouched whenever this
// error is returned.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	Pending ──> Approved ──> Paid ──> Preparing ──> Delivering ──> Completed
//	   │  │         │
//	   │  └─────────┴──> Cancelled   (customer, pending/approved only)
//	   └──> Rejected                 (approver, pending only)
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a submitted order, waiting for the
	// approver's decision.
	Pending

	// Approved indicates the approver accepted the order and payment is expected.
	Approved

	// Paid indicates payment was captured for the order.
	Paid

	// Preparing indicates the kitchen started working on the order.
	Preparing

	// Delivering indicates the order was handed to a courier.
	Delivering

	// Completed indicates the order was delivered. Final state.
	Completed

	// Rejected indicates the approver declined the order. Final state.
	Rejected

	// Cancelled indicates the customer withdrew the order. Final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their persisted string form.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Approved:   "approved",
		Paid:       "paid",
		Preparing:  "preparing",
		Delivering: "delivering",
		Completed:  "completed",
		Rejected:   "rejected",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Approved:   "approved",
		Paid:       "paid",
		Preparing:  "preparing",
		Delivering: "delivering",
		Completed:  "completed",
		Rejected:   "rejected",
		Cancelled:  "cancelled",
	}
}

// getStatusLabels returns the human-readable label shown to participants
// for each status.
func getStatusLabels() map[Status]string {
	return map[Status]string{
		Pending:    "Awaiting confirmation",
		Approved:   "Confirmed, awaiting payment",
		Paid:       "Paid",
		Preparing:  "Being prepared",
		Delivering: "Out for delivery",
		Completed:  "Delivered",
		Rejected:   "Rejected",
		Cancelled:  "Cancelled by customer",
	}
}

// getTransitions returns the allowed target statuses per source status.
// Any pair absent from this table is an invalid transition.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Approved, Rejected, Cancelled},
		Approved:   {Paid, Cancelled},
		Paid:       {Preparing},
		Preparing:  {Delivering},
		Delivering: {Completed},
	}
}

// StatusFromString converts a persisted string form back into a Status.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted string form of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Label returns the human-readable status label used in participant-facing
// messages. Falls back to the persisted string form for unlabeled values.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return s.String()
}

// IsTerminal reports whether no further transitions are possible from the status.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0 && s != Unknown
}

// CanTransitionTo reports whether the transition table permits moving from
// the current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo performs a validated move to the target status.
//
// Returns:
//   - (target, nil) when the transition table permits the move
//   - (0, *InvalidTransitionError) otherwise; the error wraps ErrInvalidTransition
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return 0, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}

// Approve transitions the status to Approved. Valid only from Pending.
func (s Status) Approve() (Status, error) {
	return s.TransitionTo(Approved)
}

// Reject transitions the status to Rejected. Valid only from Pending.
func (s Status) Reject() (Status, error) {
	return s.TransitionTo(Rejected)
}

// Cancel transitions the status to Cancelled.
// Valid from Pending and Approved; an order that is already paid or in
// fulfilment can no longer be withdrawn by the customer.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}

// MarkPaid transitions the status to Paid. Valid only from Approved.
func (s Status) MarkPaid() (Status, error) {
	return s.TransitionTo(Paid)
}

// StartPreparing transitions the status to Preparing. Valid only from Paid.
func (s Status) StartPreparing() (Status, error) {
	return s.TransitionTo(Preparing)
}

// StartDelivering transitions the status to Delivering. Valid only from Preparing.
func (s Status) StartDelivering() (Status, error) {
	return s.TransitionTo(Delivering)
}

// Complete transitions the status to Completed. Valid only from Delivering.
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(Completed)
}
