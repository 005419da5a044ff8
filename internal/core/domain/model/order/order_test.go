package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/order"
)

func validItems() cart.PricedCart {
	return cart.PricedCart{
		Lines: []cart.PricedLine{
			{ItemID: "pizza_1", Name: "Margherita", Price: 400, Quantity: 2, Subtotal: 800},
		},
		Total: 800,
	}
}

func TestNewOrder(t *testing.T) {
	validNumber := order.GenerateNumber(time.Now())

	t.Run("should create a pending order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validNumber, 7, 555, validItems(), "+15550100", "5 High St")

		require.NoError(t, err)
		require.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, validNumber, o.Number())
		assert.Equal(t, int64(7), o.UserID())
		assert.Equal(t, int64(555), o.AccountID())
		assert.Equal(t, 800.0, o.Amount())
		assert.Equal(t, "+15550100", o.Phone())
		assert.Equal(t, "5 High St", o.Address())
		assert.Zero(t, o.ID())
	})

	t.Run("should fail with malformed number", func(t *testing.T) {
		o, err := order.NewOrder("not-a-number", 7, 555, validItems(), "+15550100", "5 High St")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is invalid: orderNumber")
	})

	t.Run("should fail with zero user id", func(t *testing.T) {
		o, err := order.NewOrder(validNumber, 0, 555, validItems(), "+15550100", "5 High St")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: userID")
	})

	t.Run("should fail with zero account id", func(t *testing.T) {
		o, err := order.NewOrder(validNumber, 7, 0, validItems(), "+15550100", "5 High St")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: accountID")
	})

	t.Run("should fail with an empty item snapshot", func(t *testing.T) {
		o, err := order.NewOrder(validNumber, 7, 555, cart.PricedCart{}, "+15550100", "5 High St")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, cart.ErrEmptyCart)
	})

	t.Run("should fail with missing contact fields", func(t *testing.T) {
		o, err := order.NewOrder(validNumber, 7, 555, validItems(), "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: phone")
		assert.Contains(t, err.Error(), "value is required: address")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder("bad", 0, 0, cart.PricedCart{}, "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is invalid: orderNumber")
		assert.Contains(t, err.Error(), "value is required: userID")
		assert.ErrorIs(t, err, cart.ErrEmptyCart)
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()

	t.Run("should rehydrate a stored order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			42, "ORD-2504151830-AB12", 7, 555,
			validItems(), 50, 10,
			"+15550100", "5 High St",
			order.Delivering, now, now,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(42), o.ID())
		assert.Equal(t, order.Delivering, o.Status())
		assert.Equal(t, 50.0, o.DeliveryCost())
		assert.Equal(t, 10.0, o.Discount())
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("should refuse an invalid stored status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			42, "ORD-2504151830-AB12", 7, 555,
			validItems(), 0, 0,
			"+15550100", "5 High St",
			order.Status(99), now, now,
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_AttachID(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(order.GenerateNumber(time.Now()), 7, 555, validItems(), "+15550100", "5 High St")
		require.NoError(t, err)
		return o
	}

	t.Run("should record the store-assigned id once", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AttachID(42))
		assert.Equal(t, int64(42), o.ID())
	})

	t.Run("should refuse a second attachment", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AttachID(42))

		err := o.AttachID(43)

		require.ErrorIs(t, err, order.ErrIDAlreadyAssigned)
		assert.Equal(t, int64(42), o.ID())
	})

	t.Run("should refuse non-positive ids", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.AttachID(0))
		require.Error(t, o.AttachID(-1))
		assert.Zero(t, o.ID())
	})
}

func TestOrder_IsOwnedBy(t *testing.T) {
	o, err := order.NewOrder(order.GenerateNumber(time.Now()), 7, 555, validItems(), "+15550100", "5 High St")
	require.NoError(t, err)

	t.Run("should match the owning account", func(t *testing.T) {
		assert.True(t, o.IsOwnedBy(555))
	})

	t.Run("should refuse other accounts", func(t *testing.T) {
		assert.False(t, o.IsOwnedBy(556))
		assert.False(t, o.IsOwnedBy(0))
	})
}

func TestOrder_Apply(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(order.GenerateNumber(time.Now()), 7, 555, validItems(), "+15550100", "5 High St")
		require.NoError(t, err)
		return o
	}

	t.Run("should walk the full fulfilment lifecycle", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Approve())
		assert.Equal(t, order.Approved, o.Status())

		require.NoError(t, o.MarkPaid())
		assert.Equal(t, order.Paid, o.Status())

		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.StartDelivering())
		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should leave status unchanged on refused transitions", func(t *testing.T) {
		o := newOrder(t)

		err := o.MarkPaid()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject unknown actions", func(t *testing.T) {
		o := newOrder(t)

		err := o.Apply(order.Action("ship"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is invalid: action")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should cancel an approved order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Approve())

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should not cancel a paid order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Approve())
		require.NoError(t, o.MarkPaid())

		err := o.Cancel()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should reject a pending order", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Reject())
		assert.Equal(t, order.Rejected, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	newOrder := func(t *testing.T, id int64) *order.Order {
		t.Helper()
		o, err := order.NewOrder(order.GenerateNumber(time.Now()), 7, 555, validItems(), "+15550100", "5 High St")
		require.NoError(t, err)
		if id != 0 {
			require.NoError(t, o.AttachID(id))
		}
		return o
	}

	t.Run("should match orders sharing a surrogate id", func(t *testing.T) {
		o1 := newOrder(t, 42)
		o2 := newOrder(t, 42)

		assert.True(t, o1.IsEqual(o2))
	})

	t.Run("should not match different ids", func(t *testing.T) {
		assert.False(t, newOrder(t, 42).IsEqual(newOrder(t, 43)))
	})

	t.Run("should never match before persistence assigned an id", func(t *testing.T) {
		assert.False(t, newOrder(t, 0).IsEqual(newOrder(t, 0)))
	})

	t.Run("should not match nil", func(t *testing.T) {
		assert.False(t, newOrder(t, 42).IsEqual(nil))
	})
}
