package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/directory"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database/dbtest"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

func TestCustomerRepository(t *testing.T) {
	repo := NewCustomerRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	c, err := directory.NewCustomer("c-1", "owner-a", "John Doe", "john@example.com", "Acme", "", baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))

	dup, err := directory.NewCustomer("c-2", "owner-a", "Johnny", "john@example.com", "", "", baseTime)
	require.NoError(t, err)
	assert.True(t, errors.IsConflictError(repo.Create(ctx, dup)))

	other, err := directory.NewCustomer("c-3", "owner-b", "John Doe", "john@example.com", "", "", baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.List(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Company())
	assert.Equal(t, "", list[0].Phone())
}

func TestAgentRepository(t *testing.T) {
	repo := NewAgentRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	a, err := directory.NewAgent("a-1", "owner-a", "Sarah Wilson", "sarah@example.com", directory.RoleAdmin, baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, a))

	list, err := repo.List(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, directory.RoleAdmin, list[0].Role())

	list, err = repo.List(ctx, "owner-b")
	require.NoError(t, err)
	assert.Empty(t, list)
}
