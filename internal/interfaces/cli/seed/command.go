package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/seeds"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/bootstrap"
)

var (
	env        string
	configPath string
	ownerID    string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample tickets for an owner",
		Long:  `Insert the sample tickets and messages for an owner whose ticket collection is empty. Owners that already have tickets, or were seeded before, are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVar(&ownerID, "owner", "", "Owner user id (required)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	e, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := e.OpenStores(ctx); err != nil {
		return err
	}
	defer e.Close()

	uc := usecases.NewSeedSampleDataUseCase(e.Stores.Tickets, e.Stores.Messages, e.Stores.Seeds, seeds.Sample, e.Log)
	seeded, err := uc.Execute(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to seed sample data: %w", err)
	}

	if seeded {
		fmt.Fprintf(cmd.OutOrStdout(), "Sample tickets created for %s (%s backend)\n", ownerID, e.Stores.Backend)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Owner %s already has tickets or was seeded before, nothing to do\n", ownerID)
	}
	return nil
}
