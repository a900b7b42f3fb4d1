package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/helpdesk/internal/interfaces/cli/migrate"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/seed"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/server"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - ticket tracking service",
		Long:  `Helpdesk serves support tickets, their conversations and dashboard statistics from a SQL database or a Redis blob store.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
