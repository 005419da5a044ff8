package commands

import (
	"errors"

	"ordering/internal/core/domain/model/payment"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a payment attempt reported by the payment
// provider. The payment id is the provider-side idempotency key: replays of
// the same attempt carry the same id and must not double-apply.
//
// Example:
//
//	cmd, err := NewRecordPaymentCommand(orderID, providerPaymentID, 850, "card", payment.StatusSucceeded)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewRecordPaymentCommandHandler(uowFactory, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment recording failed: %w", err)
//	}
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	paymentID string
	amount    float64
	method    string
	status    payment.Status

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment attempt.
// An empty status defaults to pending; an empty payment id is rejected
// because without it replays cannot be deduplicated.
func NewRecordPaymentCommand(
	orderID int64,
	paymentID string,
	amount float64,
	method string,
	status payment.Status,
) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		method: method,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setPaymentID(paymentID),
		paymentCommand.setAmount(amount),
		paymentCommand.setStatus(status),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordPaymentCommandIsNotConstructed if validation fails.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the surrogate id of the paid order.
func (c RecordPaymentCommand) OrderID() int64 {
	return c.orderID
}

// PaymentID returns the provider-side idempotency key.
func (c RecordPaymentCommand) PaymentID() string {
	return c.paymentID
}

// Amount returns the attempted amount.
func (c RecordPaymentCommand) Amount() float64 {
	return c.amount
}

// Method returns the payment method label, possibly empty.
func (c RecordPaymentCommand) Method() string {
	return c.method
}

// Status returns the reported attempt status.
func (c RecordPaymentCommand) Status() payment.Status {
	return c.status
}

func (c *RecordPaymentCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setPaymentID(paymentID string) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentID")
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setStatus(status payment.Status) error {
	if status == "" {
		c.status = payment.StatusPending
		return nil
	}

	c.status = status
	return nil
}
