package ports

import (
	"context"

	"ordering/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment attempts.
type PaymentRepository interface {
	// Upsert records a payment attempt. An attempt with a known payment id
	// updates in place (refreshing status and, on success, the payment date);
	// a new id inserts. The aggregate's surrogate id is attached either way.
	Upsert(ctx context.Context, aggregate *payment.Payment) error

	// GetByPaymentID retrieves an attempt by its external idempotency key.
	GetByPaymentID(ctx context.Context, paymentID string) (*payment.Payment, error)

	// GetLatestByOrderID retrieves the most recent attempt for an order.
	GetLatestByOrderID(ctx context.Context, orderID int64) (*payment.Payment, error)
}
