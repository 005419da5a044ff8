// Package notify carries order lifecycle notifications to participants.
// The conversational transport that originally rendered these messages lives
// outside this service; the log notifier stands in for it, emitting the
// rendered text as structured log events that a relay can pick up.
package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ordering/internal/core/ports"
)

// messageTexts maps template keys to the human-readable message bodies.
// %s is the order number.
var messageTexts = map[string]string{
	"order_submitted":  "Order %s has been submitted and awaits confirmation.",
	"order_approved":   "Order %s is confirmed. You can proceed to payment.",
	"order_rejected":   "Order %s was declined. Contact us for details.",
	"order_paid":       "Payment for order %s received. The kitchen takes it from here.",
	"order_preparing":  "Order %s is being prepared.",
	"order_delivering": "Order %s is on its way.",
	"order_completed":  "Order %s has been delivered. Thank you!",
	"order_cancelled":  "Order %s was cancelled by the customer.",

	"order_pending_reminder": "Order %s is still awaiting confirmation.",
}

// LogNotifier implements ports.Notifier by writing rendered notifications to
// the structured log.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier that logs instead of sending.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifyCustomer logs a lifecycle notification addressed to the owning customer.
func (n *LogNotifier) NotifyCustomer(_ context.Context, accountID int64, notification ports.StatusNotification) error {
	n.logger.Info("customer notification",
		zap.Int64("account_id", accountID),
		zap.String("order_number", notification.OrderNumber),
		zap.String("template", notification.Template),
		zap.String("text", renderText(notification)))
	return nil
}

// NotifyApprover logs a lifecycle notification addressed to the approver channel.
func (n *LogNotifier) NotifyApprover(_ context.Context, notification ports.StatusNotification) error {
	n.logger.Info("approver notification",
		zap.Int64("order_id", notification.OrderID),
		zap.String("order_number", notification.OrderNumber),
		zap.String("template", notification.Template),
		zap.String("text", renderText(notification)))
	return nil
}

func renderText(notification ports.StatusNotification) string {
	text, ok := messageTexts[notification.Template]
	if !ok {
		return fmt.Sprintf("Order %s: %s.", notification.OrderNumber, notification.StatusLabel)
	}
	return fmt.Sprintf(text, notification.OrderNumber)
}
