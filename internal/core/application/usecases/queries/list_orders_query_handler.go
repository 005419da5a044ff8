package queries

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the administrative order listing from the
// database, joining customer identity onto each row.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for administrative listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query, newest orders first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			o.id,
			o.order_number,
			o.status,
			o.amount,
			o.phone,
			o.address,
			o.created_at,
			u.account_id,
			u.username,
			u.first_name,
			u.last_name
		FROM orders o
		JOIN users u ON u.id = o.user_id
	`
	args := make([]any, 0, 3)
	if query.Status() != nil {
		sqlText += " WHERE o.status = ?"
		args = append(args, query.Status().String())
	}
	sqlText += " ORDER BY o.created_at DESC, o.id DESC"
	if query.Limit() > 0 {
		sqlText += " LIMIT ?"
		args = append(args, query.Limit())
	}
	if query.Offset() > 0 {
		sqlText += " OFFSET ?"
		args = append(args, query.Offset())
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listing := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp                ListOrdersQueryResponse
			createdAt           time.Time
			firstName, lastName string
		)

		if err = rows.Scan(
			&resp.OrderID,
			&resp.Number,
			&resp.Status,
			&resp.Amount,
			&resp.Phone,
			&resp.Address,
			&createdAt,
			&resp.AccountID,
			&resp.Username,
			&firstName,
			&lastName,
		); err != nil {
			return nil, err
		}

		resp.CreatedAt = createdAt
		resp.CustomerName = customerDisplayName(firstName, lastName, resp.Username)
		listing = append(listing, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listing, nil
}

// customerDisplayName mirrors the display rule of the user aggregate:
// name parts first, username as fallback.
func customerDisplayName(firstName, lastName, username string) string {
	name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	if name != "" {
		return name
	}
	return username
}
