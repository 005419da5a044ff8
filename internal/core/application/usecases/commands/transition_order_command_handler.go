package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/payment"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// TransitionOrderCommandHandler handles lifecycle transitions for orders.
// The order row is read under a row-level lock so the status check and the
// following write are atomic: two concurrent transitions on the same order
// serialize, and the loser fails the transition-table check instead of
// silently overwriting.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewTransitionOrderCommand(orderID, order.ActionCancel, customerAccountID)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // already past the point of cancellation
//	case errors.Is(err, order.ErrNotOrderOwner):
//	    // somebody else's order
//	}
type TransitionOrderCommandHandler struct {
	uowFactory PaymentUoWFactory
	notifier   ports.Notifier
	policy     services.NotificationPolicy
	logger     *zap.Logger
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle transitions.
func NewTransitionOrderCommandHandler(
	uowFactory PaymentUoWFactory,
	notifier ports.Notifier,
	logger *zap.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		policy:     services.NewNotificationPolicy(),
		logger:     logger,
	}
}

// Handle processes the transition command.
// Loads the order under lock, enforces ownership for owner-only actions
// before consulting the transition table, applies the action, and persists
// the new status. A pay action additionally marks the latest recorded payment
// attempt succeeded inside the same transaction. Notifications go out
// best-effort after commit.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	lockedOrder, err := orderRepo.GetByIDForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Action().RequiresOwnership() && !lockedOrder.IsOwnedBy(cmd.RequesterAccountID()) {
		return order.ErrNotOrderOwner
	}

	if err = lockedOrder.Apply(cmd.Action()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, lockedOrder); err != nil {
		return err
	}

	if cmd.Action() == order.ActionPay {
		if err = h.markLatestPaymentSucceeded(ctx, uow.PaymentRepository(), lockedOrder.ID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("order transitioned",
		zap.String("order_number", lockedOrder.Number()),
		zap.String("action", cmd.Action().String()),
		zap.String("status", lockedOrder.Status().String()))

	notifyStatusChange(ctx, h.notifier, h.policy, h.logger, lockedOrder)

	return nil
}

// markLatestPaymentSucceeded keeps the payment record consistent with a pay
// transition driven through the transition endpoint: the most recent attempt,
// if one was recorded, is marked succeeded in the same transaction. An order
// paid without a recorded attempt has nothing to sync.
func (h TransitionOrderCommandHandler) markLatestPaymentSucceeded(
	ctx context.Context,
	paymentRepo ports.PaymentRepository,
	orderID int64,
) error {
	attempt, err := paymentRepo.GetLatestByOrderID(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if attempt.Succeeded() {
		return nil
	}

	succeeded, err := payment.NewPayment(
		attempt.OrderID(),
		attempt.PaymentID(),
		attempt.Amount(),
		attempt.Method(),
		payment.StatusSucceeded,
	)
	if err != nil {
		return err
	}

	return paymentRepo.Upsert(ctx, succeeded)
}
