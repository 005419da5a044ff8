// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and relational rows.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The priced item snapshot is stored as serialized text so it stays stable
// even when the catalog changes after submission.
type OrderDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Number       string    `gorm:"column:order_number;uniqueIndex;not null"`
	UserID       int64     `gorm:"index;not null"`
	Amount       float64   `gorm:"type:numeric(10,2);not null"`
	DeliveryCost float64   `gorm:"type:numeric(10,2);not null;default:0"`
	Discount     float64   `gorm:"type:numeric(10,2);not null;default:0"`
	Items        string    `gorm:"type:text"`
	Phone        string    `gorm:"type:varchar(32)"`
	Address      string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(32);not null;default:'created';index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// orderRow is an OrderDTO joined with the owning user's external account id,
// which the aggregate carries for notification routing.
type orderRow struct {
	OrderDTO
	AccountID int64
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := aggregate.Items().MarshalSnapshot()
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		Number:       aggregate.Number(),
		UserID:       aggregate.UserID(),
		Amount:       aggregate.Amount(),
		DeliveryCost: aggregate.DeliveryCost(),
		Discount:     aggregate.Discount(),
		Items:        items,
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		Status:       aggregate.Status().String(),
	}, nil
}

// toDomain converts a joined database row to an order domain aggregate.
func toDomain(row orderRow) (*order.Order, error) {
	status, err := order.StatusFromString(row.Status)
	if err != nil {
		return nil, err
	}

	items, err := cart.UnmarshalSnapshot(row.Items)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		row.ID,
		row.Number,
		row.UserID,
		row.AccountID,
		items,
		row.DeliveryCost,
		row.Discount,
		row.Phone,
		row.Address,
		status,
		row.CreatedAt,
		row.UpdatedAt,
	)
}
