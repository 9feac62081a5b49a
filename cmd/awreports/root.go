package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"awreports/internal/config"
	"awreports/internal/infrastructure"
	"awreports/pkg/contracts"
)

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "awreports",
		Short: "AdventureWorks production and sales reports",
		Long: `awreports exposes read-only production and sales reports over HTTP.

Configuration is read from defaults, an optional YAML file and AWR_*
environment variables, in increasing order of precedence.`,
		Version:       contracts.GetVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// one trace id per invocation ties its log lines together
			cmd.SetContext(infrastructure.EnsureTraceID(cmd.Context()))
			if opts.configFile != "" {
				return os.Setenv(config.ConfigFileEnv, opts.configFile)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "path to a YAML config file")

	cmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newReportCmd(),
	)

	return cmd
}

// loadConfig loads the configuration and a JSON logger writing to stderr, so
// command output on stdout stays machine readable.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := infrastructure.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Development)
	return cfg, logger, nil
}
