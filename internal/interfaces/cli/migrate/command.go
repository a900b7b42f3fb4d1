package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/orris-inc/helpdesk/internal/infrastructure/migration"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/bootstrap"
)

var (
	env        string
	configPath string
	name       string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the remote store schema: run migrations, roll back, check status and create new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// initEnv loads configuration and, when connect is set, opens the database.
func initEnv(connect bool) (*bootstrap.Env, *migration.GooseStrategy, error) {
	e, err := bootstrap.Load(env, configPath)
	if err != nil {
		return nil, nil, err
	}

	if connect {
		if err := e.OpenDatabase(); err != nil {
			return nil, nil, err
		}
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get scripts path: %w", err)
	}

	return e, migration.NewGooseStrategy(e.Config.Database.Driver, scriptsPath, e.Log), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	e, strategy, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	e.Log.Infow("running up migrations", "environment", env, "driver", e.Config.Database.Driver)

	if err := strategy.Migrate(e.DB); err != nil {
		e.Log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	e.Log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	e, strategy, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	e.Log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := strategy.MigrateDown(e.DB, steps); err != nil {
		e.Log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	e.Log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, strategy, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	e.Log.Infow("checking migration status", "environment", env)

	version, err := strategy.GetVersion(e.DB)
	if err != nil {
		e.Log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Driver:          %s\n", e.Config.Database.Driver)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(e.DB); err != nil {
		e.Log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	e, strategy, err := initEnv(false)
	if err != nil {
		return err
	}

	e.Log.Infow("creating new migration", "name", name)

	if err := strategy.Create(name); err != nil {
		e.Log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	e.Log.Infow("migration created successfully", "name", name)
	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created\n", name)

	return nil
}
