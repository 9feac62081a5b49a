package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"awreports/internal/storage"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := storage.Open(cmd.Context(), cfg.Database, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := storage.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			logger.InfoContext(cmd.Context(), "Schema applied")
			fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Apply the schema and load the demo data set",
		Long: `Applies the schema and loads a small deterministic data set covering the
years 2011 to 2014. A database that already holds products is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := storage.Open(cmd.Context(), cfg.Database, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := storage.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			rows, err := storage.Seed(cmd.Context(), db)
			if err != nil {
				return err
			}

			logger.InfoContext(cmd.Context(), "Seed finished", slog.Int("rows", rows))
			if rows == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "database already seeded")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d rows\n", rows)
			return nil
		},
	}
}
