// Package bootstrap loads configuration and opens the configured storage
// backend for CLI commands.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/infrastructure/storage"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// Env is a loaded configuration with logging initialized.
type Env struct {
	Config *config.Config
	Log    logger.Interface

	DB     *gorm.DB
	Redis  *redis.Client
	Stores *storage.Stores
}

// Load reads configuration and initializes logging and the business timezone.
func Load(env, configPath string) (*Env, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return &Env{Config: cfg, Log: logger.NewLogger()}, nil
}

// OpenDatabase connects the SQL database regardless of the storage backend.
func (e *Env) OpenDatabase() error {
	if e.DB != nil {
		return nil
	}
	if err := database.Init(&e.Config.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	e.DB = database.Get()
	return nil
}

// OpenStores connects whatever the configured backend needs and builds its stores.
func (e *Env) OpenStores(ctx context.Context) error {
	switch e.Config.Storage.Backend {
	case constants.StorageBackendLocal:
		client, err := storage.NewRedisClient(ctx, &e.Config.Redis)
		if err != nil {
			return err
		}
		e.Redis = client
		e.Log.Infow("redis connection established", "addr", e.Config.Redis.GetAddr())
	default:
		if err := e.OpenDatabase(); err != nil {
			return err
		}
	}

	stores, err := storage.Open(&e.Config.Storage, e.DB, e.Redis, e.Log)
	if err != nil {
		return err
	}
	e.Stores = stores
	e.Log.Infow("storage backend ready", "backend", stores.Backend)
	return nil
}

// Ping checks the connection backing the active stores.
func (e *Env) Ping(ctx context.Context) error {
	if e.Redis != nil {
		return e.Redis.Ping(ctx).Err()
	}
	if e.DB != nil {
		sqlDB, err := e.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
	return nil
}

// Close releases every connection opened by the Env.
func (e *Env) Close() error {
	var errs []error
	if e.Redis != nil {
		errs = append(errs, e.Redis.Close())
	}
	if e.DB != nil {
		errs = append(errs, database.Close())
	}
	return errors.Join(errs...)
}
