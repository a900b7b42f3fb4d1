package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/infrastructure/database/dbtest"
)

func TestSeedMarkerRepository(t *testing.T) {
	repo := NewSeedMarkerRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	seeded, err := repo.IsSeeded(ctx, "owner-a")
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, repo.MarkSeeded(ctx, "owner-a"))
	// marking twice is fine
	require.NoError(t, repo.MarkSeeded(ctx, "owner-a"))

	seeded, err = repo.IsSeeded(ctx, "owner-a")
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = repo.IsSeeded(ctx, "owner-b")
	require.NoError(t, err)
	assert.False(t, seeded)
}
