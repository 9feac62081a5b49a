package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"awreports/internal/app"
	"awreports/internal/exporter"
	"awreports/internal/middleware"
	api "awreports/pkg/contracts/api/v1"
	"awreports/pkg/contracts/domain"
)

type reportOptions struct {
	year   int
	format string
	output string
}

func newReportCmd() *cobra.Command {
	opts := &reportOptions{}

	names := make([]string, len(domain.AllReports))
	for i, name := range domain.AllReports {
		names[i] = string(name)
	}

	cmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Run one report against the store and print it",
		Long: fmt.Sprintf(`Runs a report directly against the configured store. <name> is the
endpoint path without the leading slash, one of:

  %s`, strings.Join(names, "\n  ")),
		Example: `  awreports report total-sales-year --year 2013
  awreports report defective-products-rate --format csv --output defects.csv`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, domain.ReportName(args[0]), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.year, "year", "y", 0, "restrict the report to one calendar year")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(domain.ReportFormatJSON), "output format: json, csv or xlsx")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

func runReport(cmd *cobra.Command, name domain.ReportName, opts *reportOptions) error {
	if !slices.Contains(domain.AllReports, name) {
		return fmt.Errorf("unknown report %q", name)
	}

	query := api.ReportQuery{Format: strings.ToLower(strings.TrimSpace(opts.format))}
	if cmd.Flags().Changed("year") {
		query.Year = &opts.year
	}

	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := middleware.NewQueryValidator(logger).ValidateStruct(query); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	db, err := app.OpenStore(cmd.Context(), cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := app.NewServiceContainer(db, cfg.Database, nil, logger).
		RunReport(cmd.Context(), name, query.YearFilter())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return writeReport(out, query.OutputFormat(), report)
}

func writeReport(w io.Writer, format domain.ReportFormat, report domain.Tabular) error {
	if format == domain.ReportFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return exporter.Write(w, format, report.Table())
}
