package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// TransitionOrderCommand represents a request to move an order along its
// lifecycle. The requester's account id is carried so owner-only actions
// (cancellation) can be enforced against the order's owner.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.ActionApprove, approverAccountID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            int64
	action             order.Action
	requesterAccountID int64

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to apply a lifecycle action.
// The requester account id may be zero for trusted callers performing
// actions that do not require ownership.
func NewTransitionOrderCommand(orderID int64, action order.Action, requesterAccountID int64) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		requesterAccountID: requesterAccountID,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setAction(action),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the surrogate id of the order to transition.
func (c TransitionOrderCommand) OrderID() int64 {
	return c.orderID
}

// Action returns the lifecycle action to apply.
func (c TransitionOrderCommand) Action() order.Action {
	return c.action
}

// RequesterAccountID returns the external account id of the requester.
func (c TransitionOrderCommand) RequesterAccountID() int64 {
	return c.requesterAccountID
}

func (c *TransitionOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setAction(action order.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}
