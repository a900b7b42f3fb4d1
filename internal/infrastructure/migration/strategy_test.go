package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGooseDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", GooseDialect("sqlite"))
	assert.Equal(t, "sqlite3", GooseDialect(""))
	assert.Equal(t, "mysql", GooseDialect("MySQL"))
	assert.Equal(t, "postgres", GooseDialect("postgresql"))
}

func TestGooseStrategy_MigrateUpAndDown(t *testing.T) {
	db := openMemoryDB(t)
	strategy := NewGooseStrategy("sqlite", "", logger.NewNopLogger())

	require.NoError(t, strategy.Migrate(db))
	for _, table := range []string{"tickets", "ticket_messages", "customers", "agents", "sample_seeds"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	version, err := strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(20250101000004), version)

	// Re-running is a no-op.
	require.NoError(t, strategy.Migrate(db))

	require.NoError(t, strategy.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable("sample_seeds"))
	assert.True(t, db.Migrator().HasTable("agents"))
	assert.True(t, db.Migrator().HasTable("tickets"))
}

func TestMigrations_CheckConstraints(t *testing.T) {
	db := openMemoryDB(t)
	require.NoError(t, NewGooseStrategy("sqlite", "", logger.NewNopLogger()).Migrate(db))

	err := db.Exec(`INSERT INTO tickets (id, user_id, title, description, status, priority, category,
		customer_name, customer_email, created_at, updated_at)
		VALUES ('T-1', 'u', 't', 'd', 'pending', 'low', 'c', 'n', 'e', 'x', 'x')`).Error
	assert.Error(t, err)

	err = db.Exec(`INSERT INTO agents (id, user_id, name, email, role, created_at, updated_at)
		VALUES ('a', 'u', 'n', 'e', 'supervisor', 'x', 'x')`).Error
	assert.Error(t, err)
}
