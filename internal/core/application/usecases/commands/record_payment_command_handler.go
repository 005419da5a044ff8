package commands

import (
	"context"

	"go.uber.org/zap"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/payment"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// RecordPaymentCommandHandler records payment attempts and drives the paid
// transition. The attempt upsert and the order's move to paid land in the
// same transaction: either both are visible or neither is.
//
// Replays are tolerated end to end. The attempt upsert is idempotent by
// payment id, and an order that is already paid is left alone, so a provider
// retrying a succeeded webhook neither fails nor re-notifies.
//
// Example:
//
//	handler := NewRecordPaymentCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewRecordPaymentCommand(orderID, providerID, 850, "card", payment.StatusSucceeded)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment recording failed: %w", err)
//	}
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	notifier   ports.Notifier
	policy     services.NotificationPolicy
	logger     *zap.Logger
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	notifier ports.Notifier,
	logger *zap.Logger,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		policy:     services.NewNotificationPolicy(),
		logger:     logger,
	}
}

// Handle processes the payment recording command.
// Verifies the order exists, upserts the attempt, and for a succeeded
// attempt locks the order row and moves it to paid. A succeeded attempt
// against an order that cannot transition to paid (already paid orders
// excepted) surfaces the transition error and rolls everything back.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	paidOrder, err := orderRepo.GetByIDForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	attempt, err := payment.NewPayment(cmd.OrderID(), cmd.PaymentID(), cmd.Amount(), cmd.Method(), cmd.Status())
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Upsert(ctx, attempt); err != nil {
		return err
	}

	becamePaid := false
	if attempt.Succeeded() && paidOrder.Status() != order.Paid {
		if err = paidOrder.MarkPaid(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, paidOrder); err != nil {
			return err
		}
		becamePaid = true
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("payment recorded",
		zap.String("payment_id", cmd.PaymentID()),
		zap.String("order_number", paidOrder.Number()),
		zap.String("status", string(attempt.Status())))

	if becamePaid {
		notifyStatusChange(ctx, h.notifier, h.policy, h.logger, paidOrder)
	}

	return nil
}
