package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/user"
)

func TestRegisterContactCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterContactCommand(42, commands.CustomerProfile{
		Username:  "jdoe",
		FirstName: "Jane",
		LastName:  "Doe",
	}, "+15550100")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.AccountID() == 42 && u.Phone() == "+15550100" && u.Username() == "jdoe"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterContactCommandHandler(factory)
	customer, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(42), customer.AccountID())
	assert.Equal(t, "Jane Doe", customer.FullName())
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewRegisterContactCommand_InvalidAccountID(t *testing.T) {
	_, err := commands.NewRegisterContactCommand(0, commands.CustomerProfile{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAccountIDIsInvalid)
}

func TestRegisterContactCommandHandler_Handle_UpsertFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterContactCommand(42, commands.CustomerProfile{Username: "jdoe"}, "")
	require.NoError(t, err)

	storeErr := errors.New("connection reset")

	userRepo := new(MockUserRepository)
	userRepo.On("Upsert", mock.Anything, mock.Anything).Return(storeErr).Once()

	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterContactCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, storeErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
