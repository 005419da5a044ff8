package ports

import (
	"context"

	"ordering/internal/core/domain/model/cart"
)

// CartStore keeps the cart a customer builds between conversation steps.
// Carts are session state, keyed by external account id, and expire on their
// own; losing one is an inconvenience, never a correctness problem.
type CartStore interface {
	// Get returns the stored cart for the account, or a nil cart when none
	// is stored.
	Get(ctx context.Context, accountID int64) (cart.Cart, error)

	// Save stores the cart for the account, refreshing its expiry.
	Save(ctx context.Context, accountID int64, c cart.Cart) error

	// Clear removes the stored cart for the account.
	Clear(ctx context.Context, accountID int64) error
}
