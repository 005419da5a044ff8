package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// StatusNotification carries everything a transport needs to tell a
// participant about an order lifecycle event.
type StatusNotification struct {
	OrderID     int64
	OrderNumber string
	AccountID   int64
	Status      order.Status
	StatusLabel string

	// Template is the message template key chosen by the notification policy.
	Template string
}

// Notifier abstracts the messaging transport used to reach participants.
// Delivery is best-effort: callers log returned errors and never let them
// roll back or block the state change that triggered the notification.
type Notifier interface {
	// NotifyCustomer sends a lifecycle notification to the owning customer.
	NotifyCustomer(ctx context.Context, accountID int64, n StatusNotification) error

	// NotifyApprover sends a lifecycle notification to the approver channel.
	NotifyApprover(ctx context.Context, n StatusNotification) error
}
