package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/domain/model/cart"
)

func testCatalog() *cart.StaticCatalog {
	return cart.NewStaticCatalog(
		cart.Item{ID: "pizza_1", Name: "Pepperoni", Price: 450, Category: "pizza"},
		cart.Item{ID: "drink_1", Name: "Cola", Price: 120.50, Category: "drink"},
	)
}

func TestCart_IsEmpty(t *testing.T) {
	t.Run("should be empty with no items", func(t *testing.T) {
		assert.True(t, cart.Cart{}.IsEmpty())
		assert.True(t, cart.Cart(nil).IsEmpty())
	})

	t.Run("should be empty when all quantities are non-positive", func(t *testing.T) {
		c := cart.Cart{"pizza_1": 0, "drink_1": -2}

		assert.True(t, c.IsEmpty())
	})

	t.Run("should not be empty with a positive quantity", func(t *testing.T) {
		c := cart.Cart{"pizza_1": 1}

		assert.False(t, c.IsEmpty())
	})
}

func TestPrice(t *testing.T) {
	t.Run("should price a cart against the catalog", func(t *testing.T) {
		c := cart.Cart{"pizza_1": 2}

		priced, err := cart.Price(c, testCatalog())

		require.NoError(t, err)
		require.Len(t, priced.Lines, 1)
		assert.Equal(t, "pizza_1", priced.Lines[0].ItemID)
		assert.Equal(t, "Pepperoni", priced.Lines[0].Name)
		assert.Equal(t, 450.0, priced.Lines[0].Price)
		assert.Equal(t, 2, priced.Lines[0].Quantity)
		assert.Equal(t, 900.0, priced.Lines[0].Subtotal)
		assert.Equal(t, 900.0, priced.Total)
	})

	t.Run("should sum multiple lines into the total", func(t *testing.T) {
		c := cart.Cart{"pizza_1": 1, "drink_1": 2}

		priced, err := cart.Price(c, testCatalog())

		require.NoError(t, err)
		assert.Len(t, priced.Lines, 2)
		assert.Equal(t, 691.0, priced.Total)
	})

	t.Run("should skip items missing from the catalog", func(t *testing.T) {
		c := cart.Cart{"pizza_1": 1, "retired_item": 3}

		priced, err := cart.Price(c, testCatalog())

		require.NoError(t, err)
		require.Len(t, priced.Lines, 1)
		assert.Equal(t, "pizza_1", priced.Lines[0].ItemID)
	})

	t.Run("should skip non-positive quantities", func(t *testing.T) {
		c := cart.Cart{"pizza_1": 1, "drink_1": 0}

		priced, err := cart.Price(c, testCatalog())

		require.NoError(t, err)
		assert.Len(t, priced.Lines, 1)
	})

	t.Run("should fail on an empty cart", func(t *testing.T) {
		_, err := cart.Price(cart.Cart{}, testCatalog())

		require.ErrorIs(t, err, cart.ErrEmptyCart)
	})

	t.Run("should fail when every item fell out of the catalog", func(t *testing.T) {
		c := cart.Cart{"retired_1": 1, "retired_2": 2}

		_, err := cart.Price(c, testCatalog())

		require.ErrorIs(t, err, cart.ErrEmptyCart)
	})

	t.Run("should keep money at two decimal places", func(t *testing.T) {
		c := cart.Cart{"drink_1": 3}

		priced, err := cart.Price(c, testCatalog())

		require.NoError(t, err)
		assert.Equal(t, 361.50, priced.Total)
	})
}

func TestPricedCart_Snapshot(t *testing.T) {
	t.Run("should survive a persistence round trip", func(t *testing.T) {
		original, err := cart.Price(cart.Cart{"pizza_1": 2, "drink_1": 1}, testCatalog())
		require.NoError(t, err)

		snapshot, err := original.MarshalSnapshot()
		require.NoError(t, err)

		restored, err := cart.UnmarshalSnapshot(snapshot)
		require.NoError(t, err)
		assert.Equal(t, original.Total, restored.Total)
		assert.ElementsMatch(t, original.Lines, restored.Lines)
	})

	t.Run("should read an empty snapshot as a zero cart", func(t *testing.T) {
		restored, err := cart.UnmarshalSnapshot("")

		require.NoError(t, err)
		assert.Empty(t, restored.Lines)
		assert.Zero(t, restored.Total)
	})

	t.Run("should fail on corrupted snapshots", func(t *testing.T) {
		_, err := cart.UnmarshalSnapshot("{not json")

		require.Error(t, err)
	})
}

func TestStaticCatalog(t *testing.T) {
	t.Run("should look up items by id", func(t *testing.T) {
		item, ok := testCatalog().Item("pizza_1")

		require.True(t, ok)
		assert.Equal(t, "Pepperoni", item.Name)
	})

	t.Run("should report missing items", func(t *testing.T) {
		_, ok := testCatalog().Item("nope")

		assert.False(t, ok)
	})

	t.Run("should list all items", func(t *testing.T) {
		assert.Len(t, testCatalog().Items(), 2)
	})

	t.Run("should ship a non-empty default menu", func(t *testing.T) {
		assert.NotEmpty(t, cart.DefaultCatalog().Items())
	})
}
