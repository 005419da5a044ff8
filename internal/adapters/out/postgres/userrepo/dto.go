// Package userrepo persists customer identities keyed by their stable
// external account id.
package userrepo

import (
	"time"

	"ordering/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	AccountID int64     `gorm:"uniqueIndex;not null"`
	Username  string    `gorm:"type:varchar(255)"`
	FirstName string    `gorm:"type:varchar(255)"`
	LastName  string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(32)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:        aggregate.ID(),
		AccountID: aggregate.AccountID(),
		Username:  aggregate.Username(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Phone:     aggregate.Phone(),
	}
}

// toDomain converts a database row to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(dto.ID, dto.AccountID, user.Profile{
		Username:  dto.Username,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Phone:     dto.Phone,
	}, dto.CreatedAt)
}
