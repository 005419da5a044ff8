package commands

import (
	"errors"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// UpdateOrderDetailsCommand represents a partial edit of an order's mutable
// details (contact phone and delivery address). Fields left nil are not
// touched.
//
// Example:
//
//	addr := "12 New Street"
//	cmd, err := NewUpdateOrderDetailsCommand(orderID, ports.OrderPatch{Address: &addr})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewUpdateOrderDetailsCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	patch   ports.OrderPatch

	guard guard.ConstructorGuard
}

// NewUpdateOrderDetailsCommand creates a command to edit order details.
// An empty patch is rejected up front with ports.ErrNoFieldsToUpdate.
func NewUpdateOrderDetailsCommand(orderID int64, patch ports.OrderPatch) (UpdateOrderDetailsCommand, error) {
	detailsCommand := UpdateOrderDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		detailsCommand.setOrderID(orderID),
		detailsCommand.setPatch(patch),
	); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return detailsCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderDetailsCommandIsNotConstructed if validation fails.
func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

// OrderID returns the surrogate id of the order to edit.
func (c UpdateOrderDetailsCommand) OrderID() int64 {
	return c.orderID
}

// Patch returns the partial update to apply.
func (c UpdateOrderDetailsCommand) Patch() ports.OrderPatch {
	return c.patch
}

func (c *UpdateOrderDetailsCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderDetailsCommand) setPatch(patch ports.OrderPatch) error {
	if patch.IsEmpty() {
		return ports.ErrNoFieldsToUpdate
	}

	c.patch = patch
	return nil
}
