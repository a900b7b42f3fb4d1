package storage

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/infrastructure/database/dbtest"
	"github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func TestOpen(t *testing.T) {
	log := logger.NewNopLogger()

	t.Run("remote is the default", func(t *testing.T) {
		stores, err := Open(&config.StorageConfig{}, dbtest.NewSQLite(t), nil, log)
		require.NoError(t, err)
		assert.Equal(t, constants.StorageBackendRemote, stores.Backend)
		assert.IsType(t, &db.TransactionManager{}, stores.TxRunner)
	})

	t.Run("remote without database", func(t *testing.T) {
		_, err := Open(&config.StorageConfig{Backend: "remote"}, nil, nil, log)
		assert.Error(t, err)
	})

	t.Run("local", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		stores, err := Open(&config.StorageConfig{Backend: "local"}, nil, client, log)
		require.NoError(t, err)
		assert.Equal(t, constants.StorageBackendLocal, stores.Backend)
		assert.IsType(t, db.NoopTxRunner{}, stores.TxRunner)

		n, err := stores.Tickets.Count(context.Background(), "owner-a")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := Open(&config.StorageConfig{Backend: "s3"}, nil, nil, log)
		assert.Error(t, err)
	})
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	host := mr.Host()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewRedisClient(context.Background(), &config.RedisConfig{Host: host, Port: port})
	require.NoError(t, err)
	_ = client.Close()

	mr.Close()
	_, err = NewRedisClient(context.Background(), &config.RedisConfig{Host: host, Port: port})
	assert.Error(t, err)
}
