package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/directory"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func TestCustomerBlobStore(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewCustomerBlobStore(client, "helpdesk", logger.NewNopLogger())
	ctx := context.Background()

	c, err := directory.NewCustomer("c-1", "owner-a", "John Doe", "john@example.com", "", "555-0100", baseTime)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, c))
	assert.True(t, mr.Exists("helpdesk_customers_owner-a"))

	dup, err := directory.NewCustomer("c-2", "owner-a", "J", "JOHN@example.com", "", "", baseTime)
	require.NoError(t, err)
	assert.True(t, errors.IsConflictError(store.Create(ctx, dup)))

	list, err := store.List(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "555-0100", list[0].Phone())
}

func TestAgentBlobStore(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewAgentBlobStore(client, "helpdesk", logger.NewNopLogger())
	ctx := context.Background()

	a, err := directory.NewAgent("a-1", "owner-a", "Mike Johnson", "mike@example.com", directory.RoleAgent, baseTime)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, a))

	list, err := store.List(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mike Johnson", list[0].Name())

	list, err = store.List(ctx, "owner-b")
	require.NoError(t, err)
	assert.Empty(t, list)
}
