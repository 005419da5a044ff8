package ports

import (
	"context"

	"ordering/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for customer identities.
type UserRepository interface {
	// Upsert inserts the user on first contact or merges the profile into the
	// existing row (a stored phone survives an empty incoming one). The
	// aggregate's surrogate id is attached either way.
	Upsert(ctx context.Context, aggregate *user.User) error

	// GetByAccountID retrieves a user by the stable external account id.
	GetByAccountID(ctx context.Context, accountID int64) (*user.User, error)
}
