package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

func TestUpdateOrderDetailsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	addr := "12 New Street"
	cmd, err := commands.NewUpdateOrderDetailsCommand(7, ports.OrderPatch{Address: &addr})
	require.NoError(t, err)

	updated := restoredOrder(t, 7, 42, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateFields", mock.Anything, int64(7), mock.MatchedBy(func(p ports.OrderPatch) bool {
			return p.Address != nil && *p.Address == addr && p.Phone == nil
		})).Return(updated, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderDetailsCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Same(t, updated, got)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewUpdateOrderDetailsCommand_EmptyPatch(t *testing.T) {
	_, err := commands.NewUpdateOrderDetailsCommand(7, ports.OrderPatch{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrNoFieldsToUpdate)
}

func TestUpdateOrderDetailsCommandHandler_Handle_StoreFailure(t *testing.T) {
	ctx := t.Context()
	phone := "+15550100"
	cmd, err := commands.NewUpdateOrderDetailsCommand(7, ports.OrderPatch{Phone: &phone})
	require.NoError(t, err)

	storeErr := errors.New("connection reset")

	repo := new(MockOrderRepository)
	repo.On("UpdateFields", mock.Anything, int64(7), mock.Anything).Return(nil, storeErr).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderDetailsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, storeErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
