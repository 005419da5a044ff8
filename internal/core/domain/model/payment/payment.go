// Package payment models payment attempts against orders. An order may have
// zero, one or several attempts; attempts are idempotent by their external
// payment id, and a succeeded attempt drives the owning order to paid.
package payment

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Status is the state of a payment attempt as reported by the capture step.
// Values outside the named constants are stored as-is; the lifecycle only
// reacts to StatusSucceeded.
type Status string

const (
	// StatusPending is the initial state of a recorded attempt.
	StatusPending Status = "pending"

	// StatusSucceeded means the capture step confirmed the payment.
	// Recording a succeeded attempt must drive the order to paid.
	StatusSucceeded Status = "succeeded"

	// StatusFailed means the capture step reported a failure.
	StatusFailed Status = "failed"
)

// Payment is one payment attempt against an order.
type Payment struct {
	// id is the store-assigned surrogate key; zero until first persisted
	id int64

	// orderID is the owning order's surrogate key
	orderID int64

	// paymentID is the external idempotency key; attempts recorded twice
	// under the same key update in place
	paymentID string

	amount float64
	method string
	status Status

	// paymentDate is set only when the attempt transitions to succeeded
	paymentDate *time.Time

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewPayment records a payment attempt for an order.
func NewPayment(orderID int64, paymentID string, amount float64, method string, status Status) (*Payment, error) {
	p := &Payment{
		method: method,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setOrderID(orderID),
		p.setPaymentID(paymentID),
		p.setAmount(amount),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment rehydrates a payment from persistence.
func RestorePayment(
	id, orderID int64,
	paymentID string,
	amount float64,
	method string,
	status Status,
	paymentDate *time.Time,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:          id,
		orderID:     orderID,
		paymentID:   paymentID,
		amount:      amount,
		method:      method,
		status:      status,
		paymentDate: paymentDate,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the store-assigned surrogate key, zero before first persistence.
func (p *Payment) ID() int64 { return p.id }

// OrderID returns the owning order's surrogate key.
func (p *Payment) OrderID() int64 { return p.orderID }

// PaymentID returns the external idempotency key.
func (p *Payment) PaymentID() string { return p.paymentID }

// Amount returns the attempted amount.
func (p *Payment) Amount() float64 { return p.amount }

// Method returns the reported payment method.
func (p *Payment) Method() string { return p.method }

// Status returns the current attempt status.
func (p *Payment) Status() Status { return p.status }

// PaymentDate returns when the attempt succeeded, nil otherwise.
func (p *Payment) PaymentDate() *time.Time { return p.paymentDate }

// CreatedAt returns the store-managed creation timestamp.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// Succeeded reports whether the capture step confirmed this attempt.
func (p *Payment) Succeeded() bool {
	return p.status == StatusSucceeded
}

// AttachID records the surrogate key assigned by the store on first insert.
func (p *Payment) AttachID(id int64) {
	if p.id == 0 {
		p.id = id
	}
}

func (p *Payment) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderID")
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setPaymentID(paymentID string) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentID")
	}
	p.paymentID = paymentID
	return nil
}

func (p *Payment) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	p.amount = amount
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if status == "" {
		p.status = StatusPending
		return nil
	}
	p.status = status
	return nil
}
