package main

import (
	"context"

	"github.com/spf13/cobra"

	"awreports/internal/app"
	"awreports/internal/infrastructure"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP report server",
		Long: `Starts the HTTP server on the configured address. The server shuts down
gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			application, err := app.NewApplication(ctx)
			if err != nil {
				return err
			}
			defer infrastructure.CloseLogFile()

			return application.Run()
		},
	}
}
