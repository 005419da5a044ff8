// Package queries contains read-only operations for the CQRS architecture.
// Query handlers bypass the domain model and read projection rows straight
// from the database, so listings stay cheap as order history grows.
package queries

import (
	"errors"
	"time"

	"ordering/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
	ErrAccountIDIsInvalid = errors.New("account id must be greater than 0")
)

// GetUserOrdersQuery retrieves a customer's order history, newest first.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery(accountID, 10)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetUserOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order history: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s: %s (%.2f)\n", o.Number, o.StatusLabel, o.Amount)
//	}
type GetUserOrdersQuery struct {
	accountID int64
	limit     int

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a customer's order history.
// A non-positive limit means unbounded.
func NewGetUserOrdersQuery(accountID int64, limit int) (GetUserOrdersQuery, error) {
	if accountID <= 0 {
		return GetUserOrdersQuery{}, ErrAccountIDIsInvalid
	}

	return GetUserOrdersQuery{
		accountID: accountID,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserOrdersQueryIsNotConstructed if validation fails.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// AccountID returns the customer's external account id.
func (q GetUserOrdersQuery) AccountID() int64 {
	return q.accountID
}

// Limit returns the history cap, non-positive meaning unbounded.
func (q GetUserOrdersQuery) Limit() int {
	return q.limit
}

// GetUserOrdersQueryResponse is one row of a customer's order history.
// PaymentStatus reflects the latest payment attempt, empty when the order
// has none.
type GetUserOrdersQueryResponse struct {
	OrderID       int64     `json:"order_id"`
	Number        string    `json:"number"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	Amount        float64   `json:"amount"`
	Address       string    `json:"address"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
