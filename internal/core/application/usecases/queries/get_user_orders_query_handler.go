package queries

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"ordering/internal/core/domain/model/order"
)

// GetUserOrdersQueryHandler reads a customer's order history from the
// database. Each row carries the status of the latest payment attempt so the
// history view needs no second round trip.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the history query, newest orders first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			o.id,
			o.order_number,
			o.status,
			o.amount,
			o.address,
			o.created_at,
			p.status AS payment_status
		FROM orders o
		JOIN users u ON u.id = o.user_id
		LEFT JOIN LATERAL (
			SELECT status
			FROM payments
			WHERE order_id = o.id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		) p ON true
		WHERE u.account_id = ?
		ORDER BY o.created_at DESC, o.id DESC
	`
	args := []any{query.AccountID()}
	if query.Limit() > 0 {
		sqlText += " LIMIT ?"
		args = append(args, query.Limit())
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]GetUserOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp          GetUserOrdersQueryResponse
			status        string
			createdAt     time.Time
			paymentStatus sql.NullString
		)

		if err = rows.Scan(
			&resp.OrderID,
			&resp.Number,
			&status,
			&resp.Amount,
			&resp.Address,
			&createdAt,
			&paymentStatus,
		); err != nil {
			return nil, err
		}

		resp.Status = status
		if parsed, parseErr := order.StatusFromString(status); parseErr == nil {
			resp.StatusLabel = parsed.Label()
		}
		resp.CreatedAt = createdAt
		if paymentStatus.Valid {
			resp.PaymentStatus = paymentStatus.String
		}

		history = append(history, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
