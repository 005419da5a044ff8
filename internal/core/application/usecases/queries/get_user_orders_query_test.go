package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
)

func TestNewGetUserOrdersQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetUserOrdersQuery(42, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(42), query.AccountID())
	assert.Equal(t, 10, query.Limit())
	require.NoError(t, query.Validate())
}

func TestNewGetUserOrdersQuery_InvalidAccountID(t *testing.T) {
	_, err := queries.NewGetUserOrdersQuery(0, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrAccountIDIsInvalid)
}

func TestGetUserOrdersQuery_NotConstructed(t *testing.T) {
	var query queries.GetUserOrdersQuery
	require.Error(t, query.Validate())
}

func TestNewListOrdersQuery_ValidInput(t *testing.T) {
	pending := order.Pending
	query, err := queries.NewListOrdersQuery(20, 5, &pending)
	require.NoError(t, err)
	assert.Equal(t, 20, query.Limit())
	assert.Equal(t, 5, query.Offset())
	require.NotNil(t, query.Status())
	assert.Equal(t, order.Pending, *query.Status())
}

func TestNewListOrdersQuery_NilStatus(t *testing.T) {
	query, err := queries.NewListOrdersQuery(0, 0, nil)
	require.NoError(t, err)
	assert.Nil(t, query.Status())
}

func TestNewListOrdersQuery_InvalidStatus(t *testing.T) {
	bad := order.Status(99)
	_, err := queries.NewListOrdersQuery(0, 0, &bad)
	require.Error(t, err)
}
