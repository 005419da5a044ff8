package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the administrative order listing, newest first,
// optionally filtered to a single lifecycle status.
//
// Example:
//
//	pending := order.Pending
//	query, err := NewListOrdersQuery(20, 0, &pending)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	limit  int
	offset int
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an administrative listing query.
// A non-positive limit means unbounded; a nil status lists everything.
func NewListOrdersQuery(limit, offset int, status *order.Status) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		limit:  limit,
		offset: offset,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Limit returns the listing cap, non-positive meaning unbounded.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns how many newest orders to skip.
func (q ListOrdersQuery) Offset() int {
	return q.offset
}

// Status returns the status filter, nil meaning all statuses.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// ListOrdersQueryResponse is one row of the administrative order listing.
// Customer identity comes from the joined user row.
type ListOrdersQueryResponse struct {
	OrderID      int64     `json:"order_id"`
	Number       string    `json:"number"`
	Status       string    `json:"status"`
	Amount       float64   `json:"amount"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	AccountID    int64     `json:"account_id"`
	CustomerName string    `json:"customer_name"`
	Username     string    `json:"username,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
