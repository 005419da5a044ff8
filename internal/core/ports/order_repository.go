package ports

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
)

// ErrNoFieldsToUpdate signals an UpdateFields call with an empty patch.
// It is distinct from a not-found miss: the order may well exist, there was
// just nothing to write.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// OrderPatch is a partial update for mutable order fields. Nil members are
// left untouched.
type OrderPatch struct {
	Phone   *string
	Address *string
	Amount  *float64
	Items   *string
	Status  *order.Status
}

// IsEmpty reports whether the patch would write nothing.
func (p OrderPatch) IsEmpty() bool {
	return p.Phone == nil && p.Address == nil && p.Amount == nil && p.Items == nil && p.Status == nil
}

// ListFilter bounds and filters administrative order listings.
// The zero value lists everything, newest first.
type ListFilter struct {
	// Limit caps the number of returned orders; 0 means unbounded.
	Limit int

	// Offset skips that many orders from the newest end.
	Offset int

	// Status restricts the listing to one lifecycle status when non-nil.
	Status *order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
// Lookups return *errs.ObjectNotFoundError on a miss; Add surfaces
// order.ErrNumberTaken on an order-number uniqueness collision so callers
// can regenerate and retry.
type OrderRepository interface {
	// Add persists a new order aggregate and attaches the store-assigned
	// surrogate id to it.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable state of an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByID retrieves an order by surrogate id. This primitive does not
	// interpret order numbers or account ids; that is the resolver's job.
	GetByID(ctx context.Context, id int64) (*order.Order, error)

	// GetByIDForUpdate retrieves an order by surrogate id with a row-level
	// lock, so a status check and the following write are atomic within the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// GetByNumber retrieves an order by its human-facing order number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetLatestByAccount retrieves the most recent order owned by the user
	// with the given external account id.
	GetLatestByAccount(ctx context.Context, accountID int64) (*order.Order, error)

	// List enumerates orders newest first, honoring the filter.
	List(ctx context.Context, filter ListFilter) ([]*order.Order, error)

	// UpdateFields applies a partial update to an order row and returns the
	// refreshed aggregate. Returns ErrNoFieldsToUpdate for an empty patch.
	UpdateFields(ctx context.Context, id int64, patch OrderPatch) (*order.Order, error)
}
