package payment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/domain/model/payment"
)

func TestNewPayment(t *testing.T) {
	t.Run("should record a payment attempt", func(t *testing.T) {
		p, err := payment.NewPayment(42, "pay-abc", 900, "card", payment.StatusSucceeded)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, int64(42), p.OrderID())
		assert.Equal(t, "pay-abc", p.PaymentID())
		assert.Equal(t, 900.0, p.Amount())
		assert.Equal(t, "card", p.Method())
		assert.Equal(t, payment.StatusSucceeded, p.Status())
		assert.True(t, p.Succeeded())
		assert.Nil(t, p.PaymentDate())
		assert.Zero(t, p.ID())
	})

	t.Run("should default an empty status to pending", func(t *testing.T) {
		p, err := payment.NewPayment(42, "pay-abc", 900, "card", "")

		require.NoError(t, err)
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.False(t, p.Succeeded())
	})

	t.Run("should store an unrecognized status as-is", func(t *testing.T) {
		p, err := payment.NewPayment(42, "pay-abc", 900, "card", payment.Status("refunded"))

		require.NoError(t, err)
		assert.Equal(t, payment.Status("refunded"), p.Status())
		assert.False(t, p.Succeeded())
	})

	t.Run("should fail with a non-positive order id", func(t *testing.T) {
		p, err := payment.NewPayment(0, "pay-abc", 900, "card", payment.StatusPending)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "value is required: orderID")
	})

	t.Run("should fail with an empty payment id", func(t *testing.T) {
		p, err := payment.NewPayment(42, "", 900, "card", payment.StatusPending)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "value is required: paymentID")
	})

	t.Run("should fail with a negative amount", func(t *testing.T) {
		p, err := payment.NewPayment(42, "pay-abc", -1, "card", payment.StatusPending)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "value is invalid: amount")
	})

	t.Run("should accept a zero amount", func(t *testing.T) {
		p, err := payment.NewPayment(42, "pay-abc", 0, "promo", payment.StatusSucceeded)

		require.NoError(t, err)
		assert.Zero(t, p.Amount())
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		p, err := payment.NewPayment(0, "", -1, "card", payment.StatusPending)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "value is required: orderID")
		assert.Contains(t, err.Error(), "value is required: paymentID")
		assert.Contains(t, err.Error(), "value is invalid: amount")
	})
}

func TestRestorePayment(t *testing.T) {
	t.Run("should rehydrate a stored attempt", func(t *testing.T) {
		paidAt := time.Now().Add(-time.Minute)
		createdAt := time.Now().Add(-time.Hour)

		p := payment.RestorePayment(3, 42, "pay-abc", 900, "card", payment.StatusSucceeded, &paidAt, createdAt)

		require.NoError(t, p.Validate())
		assert.Equal(t, int64(3), p.ID())
		assert.Equal(t, int64(42), p.OrderID())
		require.NotNil(t, p.PaymentDate())
		assert.Equal(t, paidAt, *p.PaymentDate())
		assert.Equal(t, createdAt, p.CreatedAt())
	})
}

func TestPayment_Validate(t *testing.T) {
	t.Run("should fail validation for nil payment", func(t *testing.T) {
		var p *payment.Payment

		require.Equal(t, payment.ErrPaymentIsNotConstructed, p.Validate())
	})

	t.Run("should fail validation for zero value payment", func(t *testing.T) {
		var p payment.Payment

		require.Equal(t, payment.ErrPaymentIsNotConstructed, p.Validate())
	})
}

func TestPayment_AttachID(t *testing.T) {
	t.Run("should record the store-assigned id once", func(t *testing.T) {
		p, err := payment.NewPayment(42, "pay-abc", 900, "card", payment.StatusPending)
		require.NoError(t, err)

		p.AttachID(3)
		p.AttachID(4)

		assert.Equal(t, int64(3), p.ID())
	})
}
