package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// UpdateOrderDetailsCommandHandler applies partial edits to an order row.
// Detail edits never touch the status column, so they go through the patch
// primitive rather than a full aggregate save.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderDetailsCommandHandler creates a handler for order detail edits.
func NewUpdateOrderDetailsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detail edit command and returns the refreshed order.
func (h UpdateOrderDetailsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderDetailsCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.OrderRepository().UpdateFields(ctx, cmd.OrderID(), cmd.Patch())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
