// Package paymentrepo persists payment attempts, idempotent by their
// external payment id.
package paymentrepo

import (
	"time"

	"ordering/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for persisting payment attempts.
type PaymentDTO struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	OrderID     int64      `gorm:"index;not null"`
	PaymentID   string     `gorm:"uniqueIndex;not null"`
	Amount      float64    `gorm:"type:numeric(10,2);not null"`
	Method      string     `gorm:"column:payment_method;type:varchar(64)"`
	Status      string     `gorm:"type:varchar(32);not null;default:'pending'"`
	PaymentDate *time.Time `gorm:""`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database
// representation. The payment date is stamped the moment a succeeded attempt
// is first persisted.
func fromDomain(aggregate *payment.Payment, now time.Time) PaymentDTO {
	paymentDate := aggregate.PaymentDate()
	if paymentDate == nil && aggregate.Succeeded() {
		paymentDate = &now
	}

	return PaymentDTO{
		ID:          aggregate.ID(),
		OrderID:     aggregate.OrderID(),
		PaymentID:   aggregate.PaymentID(),
		Amount:      aggregate.Amount(),
		Method:      aggregate.Method(),
		Status:      string(aggregate.Status()),
		PaymentDate: paymentDate,
	}
}

// toDomain converts a database row to a payment domain aggregate.
func toDomain(dto PaymentDTO) *payment.Payment {
	return payment.RestorePayment(
		dto.ID,
		dto.OrderID,
		dto.PaymentID,
		dto.Amount,
		dto.Method,
		payment.Status(dto.Status),
		dto.PaymentDate,
		dto.CreatedAt,
	)
}
