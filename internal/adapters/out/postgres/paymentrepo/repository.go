package paymentrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ordering/internal/core/domain/model/payment"
	"ordering/internal/pkg/errs"
)

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert records a payment attempt. Replays with a known payment id update
// the existing row in place; the payment date, once set, is never cleared.
func (r *GormPaymentRepository) Upsert(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, time.Now())
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "payment_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"amount":         dto.Amount,
			"payment_method": dto.Method,
			"status":         dto.Status,
			"payment_date":   gorm.Expr("COALESCE(payments.payment_date, EXCLUDED.payment_date)"),
		}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	aggregate.AttachID(dto.ID)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByPaymentID retrieves an attempt by its external idempotency key.
func (r *GormPaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	var dto PaymentDTO
	if err := r.db.WithContext(ctx).Take(&dto, "payment_id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", paymentID)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// GetLatestByOrderID retrieves the most recent attempt for an order.
func (r *GormPaymentRepository) GetLatestByOrderID(ctx context.Context, orderID int64) (*payment.Payment, error) {
	var dto PaymentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC, id DESC").
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment for order", orderID)
		}
		return nil, err
	}

	return toDomain(dto), nil
}
