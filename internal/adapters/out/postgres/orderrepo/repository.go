package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Every read joins the owning user row, because the aggregate carries the
// external account id for notification routing.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// joined starts a query over orders with the owning user's account id.
func (r *GormOrderRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders").
		Select("orders.*, users.account_id AS account_id").
		Joins("JOIN users ON users.id = orders.user_id")
}

// Add saves a new order to the database and attaches the generated surrogate
// id. A uniqueness collision on order_number surfaces as order.ErrNumberTaken
// so the caller can regenerate and retry. The insert runs in its own
// savepoint scope; inside a surrounding transaction a collision would
// otherwise abort the whole transaction and leave no room for a retry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return order.ErrNumberTaken
		}
		return err
	}

	if err = aggregate.AttachID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the mutable state of an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"amount":        dto.Amount,
		"delivery_cost": dto.DeliveryCost,
		"discount":      dto.Discount,
		"items":         dto.Items,
		"phone":         dto.Phone,
		"address":       dto.Address,
		"status":        dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByID retrieves an order by surrogate id.
func (r *GormOrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	return r.getOne(r.joined(ctx).Where("orders.id = ?", id), "order", id)
}

// GetByIDForUpdate retrieves an order by surrogate id with a row-level lock
// on the order row. Within the surrounding transaction, a concurrent
// transition on the same order blocks until this one commits or rolls back.
func (r *GormOrderRepository) GetByIDForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	query := r.joined(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}}).
		Where("orders.id = ?", id)
	return r.getOne(query, "order", id)
}

// GetByNumber retrieves an order by its human-facing order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	return r.getOne(r.joined(ctx).Where("orders.order_number = ?", number), "order", number)
}

// GetLatestByAccount retrieves the most recent order owned by the user with
// the given external account id.
func (r *GormOrderRepository) GetLatestByAccount(ctx context.Context, accountID int64) (*order.Order, error) {
	query := r.joined(ctx).
		Where("users.account_id = ?", accountID).
		Order("orders.created_at DESC, orders.id DESC")
	return r.getOne(query, "order for account", accountID)
}

// List enumerates orders newest first, honoring the filter.
func (r *GormOrderRepository) List(ctx context.Context, filter ports.ListFilter) ([]*order.Order, error) {
	query := r.joined(ctx).Order("orders.created_at DESC, orders.id DESC")
	if filter.Status != nil {
		query = query.Where("orders.status = ?", filter.Status.String())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []orderRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateFields applies a partial update to an order row and returns the
// refreshed aggregate.
func (r *GormOrderRepository) UpdateFields(
	ctx context.Context,
	id int64,
	patch ports.OrderPatch,
) (*order.Order, error) {
	if patch.IsEmpty() {
		return nil, ports.ErrNoFieldsToUpdate
	}

	updates := make(map[string]any, 5)
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
	if patch.Items != nil {
		updates["items"] = *patch.Items
	}
	if patch.Status != nil {
		updates["status"] = patch.Status.String()
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return r.GetByID(ctx, id)
}

func (r *GormOrderRepository) getOne(query *gorm.DB, paramName string, id any) (*order.Order, error) {
	var row orderRow
	if err := query.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, id)
		}
		return nil, err
	}

	return toDomain(row)
}
