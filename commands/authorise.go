package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/planningtools/planning-sheets/config"
	"github.com/planningtools/planning-sheets/gsheet"
)

var authoriseCmd = &cobra.Command{
	Use:     "authorise",
	Aliases: []string{"authorize"},
	Short:   "Obtains and caches an OAuth access token for the configured client credentials",
	Long: `Runs the interactive OAuth flow for an OAuth client credential and caches the
retrieved token next to the configuration. Service account keys do not require
authorisation.`,
	RunE: authorise,
}

func init() {
	rootCmd.AddCommand(authoriseCmd)
}

func authorise(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	if err := gsheet.Authorise(ctx, cfg.Credentials, cfg.Tokens, cfg.Scopes()...); err != nil {
		return err
	}

	log.Info().Str("tokens", cfg.Tokens).Msg("cached access token")

	return nil
}
