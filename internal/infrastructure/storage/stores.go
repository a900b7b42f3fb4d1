// Package storage selects the backing stores for the configured backend.
package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/directory"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/infrastructure/cache"
	"github.com/orris-inc/helpdesk/internal/infrastructure/metrics"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	"github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// Stores holds one backend's stores. Ticket and message stores are
// instrumented with operation metrics.
type Stores struct {
	Backend   string
	Tickets   ticket.TicketStore
	Messages  ticket.MessageStore
	Customers directory.CustomerStore
	Agents    directory.AgentStore
	Seeds     ticket.SeedMarkerStore
	TxRunner  db.TxRunner
}

// NewRemoteStores builds the SQL backed stores.
func NewRemoteStores(gdb *gorm.DB) *Stores {
	return &Stores{
		Backend:   constants.StorageBackendRemote,
		Tickets:   metrics.NewTicketStore(repository.NewTicketRepository(gdb), constants.StorageBackendRemote),
		Messages:  metrics.NewMessageStore(repository.NewTicketMessageRepository(gdb), constants.StorageBackendRemote),
		Customers: repository.NewCustomerRepository(gdb),
		Agents:    repository.NewAgentRepository(gdb),
		Seeds:     repository.NewSeedMarkerRepository(gdb),
		TxRunner:  db.NewTransactionManager(gdb),
	}
}

// NewLocalStores builds the Redis blob stores. Writes are not atomic across
// keys, so TxRunner runs work directly.
func NewLocalStores(client *redis.Client, prefix string, log logger.Interface) *Stores {
	return &Stores{
		Backend:   constants.StorageBackendLocal,
		Tickets:   metrics.NewTicketStore(cache.NewTicketBlobStore(client, prefix, log), constants.StorageBackendLocal),
		Messages:  metrics.NewMessageStore(cache.NewTicketMessageBlobStore(client, prefix, log), constants.StorageBackendLocal),
		Customers: cache.NewCustomerBlobStore(client, prefix, log),
		Agents:    cache.NewAgentBlobStore(client, prefix, log),
		Seeds:     cache.NewSeedMarkerStore(client, prefix),
		TxRunner:  db.NoopTxRunner{},
	}
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}
	return client, nil
}

// Open returns the stores for cfg.Backend. gdb is required for the remote
// backend and client for the local one.
func Open(cfg *config.StorageConfig, gdb *gorm.DB, client *redis.Client, log logger.Interface) (*Stores, error) {
	switch cfg.Backend {
	case "", constants.StorageBackendRemote:
		if gdb == nil {
			return nil, fmt.Errorf("remote storage backend requires a database connection")
		}
		return NewRemoteStores(gdb), nil
	case constants.StorageBackendLocal:
		if client == nil {
			return nil, fmt.Errorf("local storage backend requires a redis client")
		}
		prefix := cfg.KeyPrefix
		if prefix == "" {
			prefix = constants.DefaultStorageKeyPrefix
		}
		return NewLocalStores(client, prefix, log), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
