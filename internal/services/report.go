package services

import (
	"context"
	"fmt"
	"log/slog"

	"awreports/internal/infrastructure"
	"awreports/pkg/contracts/domain"
)

// reportRunner times, traces and logs report executions for both services
type reportRunner struct {
	observer *infrastructure.ReportObserver
	logger   *slog.Logger
}

func newReportRunner(observer *infrastructure.ReportObserver, logger *slog.Logger, component string) reportRunner {
	if observer == nil {
		observer = infrastructure.NewReportObserver(nil, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return reportRunner{
		observer: observer,
		logger:   infrastructure.WithComponent(logger, component),
	}
}

// runReport executes fn inside a stopwatch and a report span. fn returns the
// report value together with its row count. On failure the zero value is
// returned, so no partial report ever leaves the service.
func runReport[T any](ctx context.Context, r reportRunner, name domain.ReportName, year domain.Year, fn func(context.Context) (T, int, error)) (T, int64, error) {
	sw := infrastructure.StartStopwatch()
	ctx, done := r.observer.Start(ctx, name, year)

	result, rows, err := fn(ctx)
	sw.Stop()
	done(rows, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "Report failed",
			slog.String("report", string(name)),
			slog.String("year", year.Label()),
			slog.Duration("duration", sw.Elapsed()),
			slog.String("error", err.Error()),
		)
		var zero T
		return zero, 0, fmt.Errorf("%s: %w", name, err)
	}

	r.logger.InfoContext(ctx, "Report generated",
		slog.String("report", string(name)),
		slog.String("year", year.Label()),
		slog.Int("rows", rows),
		slog.Int64("execution_time_ms", sw.ElapsedMilliseconds()),
	)

	return result, sw.ElapsedMilliseconds(), nil
}
