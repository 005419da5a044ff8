package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert inserts the user on first contact or merges the profile into the
// existing row. Username and name fields always take the incoming value; the
// stored phone survives when the incoming one is empty.
func (r *GormUserRepository) Upsert(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"username":   dto.Username,
			"first_name": dto.FirstName,
			"last_name":  dto.LastName,
			"phone":      gorm.Expr("COALESCE(NULLIF(EXCLUDED.phone, ''), users.phone)"),
		}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	aggregate.AttachID(dto.ID)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByAccountID retrieves a user by the stable external account id.
func (r *GormUserRepository) GetByAccountID(ctx context.Context, accountID int64) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Take(&dto, "account_id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", accountID)
		}
		return nil, err
	}

	return toDomain(dto)
}
