package commands

import (
	"context"

	"go.uber.org/zap"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// notifyStatusChange fans a lifecycle event out to the participants the
// notification policy names for the order's current status. Delivery is
// best-effort: failures are logged and never propagated, so a messaging
// outage cannot roll back a committed state change.
func notifyStatusChange(
	ctx context.Context,
	notifier ports.Notifier,
	policy services.NotificationPolicy,
	logger *zap.Logger,
	o *order.Order,
) {
	if notifier == nil {
		return
	}

	routing := policy.RoutingFor(o.Status())
	notification := ports.StatusNotification{
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		AccountID:   o.AccountID(),
		Status:      o.Status(),
		StatusLabel: o.Status().Label(),
		Template:    routing.Template,
	}

	if routing.Customer {
		if err := notifier.NotifyCustomer(ctx, o.AccountID(), notification); err != nil {
			logger.Warn("customer notification failed",
				zap.String("order_number", o.Number()),
				zap.String("status", o.Status().String()),
				zap.Error(err))
		}
	}

	if routing.Approver {
		if err := notifier.NotifyApprover(ctx, notification); err != nil {
			logger.Warn("approver notification failed",
				zap.String("order_number", o.Number()),
				zap.String("status", o.Status().String()),
				zap.Error(err))
		}
	}
}
