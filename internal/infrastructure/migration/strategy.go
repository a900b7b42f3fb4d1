package migration

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

//go:embed scripts/*.sql
var embeddedScripts embed.FS

const embeddedDir = "scripts"

// goose keeps dialect and base FS in package globals.
var gooseMu sync.Mutex

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// GooseStrategy applies the embedded SQL scripts with goose.
type GooseStrategy struct {
	dialect     string
	scriptsPath string
	logger      logger.Interface
}

// NewGooseStrategy creates a goose strategy for a database driver name
// (sqlite, mysql, postgres). scriptsPath is only used by Create, which writes
// new script files to disk.
func NewGooseStrategy(driver, scriptsPath string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		dialect:     GooseDialect(driver),
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.goose"),
	}
}

// GooseDialect maps a configured database driver to its goose dialect.
func GooseDialect(driver string) string {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql":
		return "postgres"
	case "mysql":
		return "mysql"
	default:
		return "sqlite3"
	}
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// prepare configures goose globals for the embedded scripts. Callers hold gooseMu.
func (s *GooseStrategy) prepare() error {
	goose.SetBaseFS(embeddedScripts)
	goose.SetLogger(&gooseLogger{log: s.logger})
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting goose migration", "dialect", s.dialect)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := s.prepare(); err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, embeddedDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get final version", "error", err)
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := s.prepare(); err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, embeddedDir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := s.prepare(); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}

	return version, nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := s.prepare(); err != nil {
		return err
	}

	if err := goose.Status(sqlDB, embeddedDir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	return nil
}

// Create writes a new timestamped SQL script into scriptsPath on disk.
func (s *GooseStrategy) Create(name string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(nil)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Create(nil, s.scriptsPath, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name)
	return nil
}

// gooseLogger routes goose output through the application logger.
type gooseLogger struct {
	log logger.Interface
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.log.Infow(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.log.Errorw(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
