package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Action names a lifecycle trigger requested by a participant. Actions arrive
// over the wire as plain strings and are mapped to target statuses here, so
// callers never pick a raw status themselves.
type Action string

const (
	// ActionApprove is the approver accepting a pending order.
	ActionApprove Action = "approve"

	// ActionReject is the approver declining a pending order.
	ActionReject Action = "reject"

	// ActionCancel is the customer withdrawing their own order.
	ActionCancel Action = "cancel"

	// ActionPay records a captured payment.
	ActionPay Action = "pay"

	// ActionPreparing is the approver starting preparation.
	ActionPreparing Action = "preparing"

	// ActionDelivering is the approver dispatching the order.
	ActionDelivering Action = "delivering"

	// ActionComplete is the approver confirming delivery.
	ActionComplete Action = "complete"
)

// getActionTargets maps each action to the status it drives the order into.
func getActionTargets() map[Action]Status {
	return map[Action]Status{
		ActionApprove:    Approved,
		ActionReject:     Rejected,
		ActionCancel:     Cancelled,
		ActionPay:        Paid,
		ActionPreparing:  Preparing,
		ActionDelivering: Delivering,
		ActionComplete:   Completed,
	}
}

// ParseAction converts a wire string into an Action.
// Returns an error for strings that do not name a known action.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := getActionTargets()[a]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a known action", s))
	}
	return a, nil
}

// Validate checks that the action names a known lifecycle trigger.
func (a Action) Validate() error {
	if _, ok := getActionTargets()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a known action", string(a)))
	}
	return nil
}

// Target returns the status this action drives an order into.
// Unknown actions map to the Unknown status.
func (a Action) Target() Status {
	return getActionTargets()[a]
}

// RequiresOwnership reports whether the action may only be performed by the
// order's owning customer. The ownership check precedes the transition check.
func (a Action) RequiresOwnership() bool {
	return a == ActionCancel
}

func (a Action) String() string {
	return string(a)
}
