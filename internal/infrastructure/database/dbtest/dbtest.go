// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/orris-inc/helpdesk/internal/infrastructure/migration"
	appLogger "github.com/orris-inc/helpdesk/internal/shared/logger"
)

// NewSQLite returns an in-memory database with every migration applied. The
// pool is pinned to one connection so all statements see the same database.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	strategy := migration.NewGooseStrategy("sqlite", "", appLogger.NewNopLogger())
	require.NoError(t, strategy.Migrate(db))

	return db
}
