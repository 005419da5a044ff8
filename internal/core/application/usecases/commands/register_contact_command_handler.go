package commands

import (
	"context"

	"ordering/internal/core/domain/model/user"
)

// RegisterContactCommandHandler upserts customer identities. The merge is
// phone-preserving: an empty incoming phone never erases a stored one.
type RegisterContactCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewRegisterContactCommandHandler creates a handler for contact registration.
func NewRegisterContactCommandHandler(uowFactory CheckoutUoWFactory) RegisterContactCommandHandler {
	return RegisterContactCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the contact registration command and returns the stored user.
func (h RegisterContactCommandHandler) Handle(ctx context.Context, cmd RegisterContactCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profile := cmd.Profile()
	customer, err := user.NewUser(cmd.AccountID(), user.Profile{
		Username:  profile.Username,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Phone:     cmd.Phone(),
	})
	if err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Upsert(ctx, customer); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return customer, nil
}
