// Package token issues access tokens for local development and scripting.
package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/bootstrap"
)

var (
	env         string
	configPath  string
	userID      string
	email       string
	displayName string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		Long:  `Sign an access token with the configured JWT secret. The token identifies the owner whose tickets the API serves.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVar(&userID, "user", "", "User id (required)")
	cmd.Flags().StringVar(&email, "email", "", "User email")
	cmd.Flags().StringVar(&displayName, "name", "", "Display name used as message author")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	e, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}

	jwtCfg := e.Config.Auth.JWT
	svc := auth.NewJWTService(jwtCfg.Secret, jwtCfg.AccessExpMinutes)

	signed, err := svc.Generate(auth.Principal{ID: userID, Email: email, DisplayName: displayName})
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	e.Log.Infow("issued access token", "user_id", userID, "expires_in_minutes", svc.AccessExpMinutes())
	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
