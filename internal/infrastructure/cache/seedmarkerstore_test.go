package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedMarkerStore(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewSeedMarkerStore(client, "helpdesk")
	ctx := context.Background()

	seeded, err := store.IsSeeded(ctx, "owner-a")
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, store.MarkSeeded(ctx, "owner-a"))
	first, err := mr.Get("helpdesk_seeded_owner-a")
	require.NoError(t, err)

	require.NoError(t, store.MarkSeeded(ctx, "owner-a"))
	again, err := mr.Get("helpdesk_seeded_owner-a")
	require.NoError(t, err)
	assert.Equal(t, first, again)

	seeded, err = store.IsSeeded(ctx, "owner-a")
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = store.IsSeeded(ctx, "owner-b")
	require.NoError(t, err)
	assert.False(t, seeded)
}
