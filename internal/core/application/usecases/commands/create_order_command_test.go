package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/cart"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	items := cart.Cart{"pizza_1": 2}
	profile := commands.CustomerProfile{Username: "jdoe", FirstName: "John"}

	cmd, err := commands.NewCreateOrderCommand(42, profile, items, "+15550100", "5 High St")
	require.NoError(t, err)
	assert.Equal(t, int64(42), cmd.AccountID())
	assert.Equal(t, profile, cmd.Profile())
	assert.Equal(t, items, cmd.Items())
	assert.Equal(t, "+15550100", cmd.Phone())
	assert.Equal(t, "5 High St", cmd.Address())
}

func TestNewCreateOrderCommand_InvalidAccountID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(0, commands.CustomerProfile{}, cart.Cart{"pizza_1": 1}, "+1", "addr")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAccountIDIsInvalid)
}

func TestNewCreateOrderCommand_EmptyCart(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(42, commands.CustomerProfile{}, cart.Cart{}, "+1", "addr")
	require.Error(t, err)
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
}

func TestNewCreateOrderCommand_EmptyPhone(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(42, commands.CustomerProfile{}, cart.Cart{"pizza_1": 1}, "", "addr")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPhoneIsRequired)
}

func TestNewCreateOrderCommand_EmptyAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(42, commands.CustomerProfile{}, cart.Cart{"pizza_1": 1}, "+1", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddressIsRequired)
}
