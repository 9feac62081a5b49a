package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"awreports/pkg/contracts/domain"
)

// BusinessMetrics holds all application-specific metrics
type BusinessMetrics struct {
	// HTTP metrics
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram
	HTTPActiveRequests  metric.Int64UpDownCounter

	// Report metrics
	ReportQueriesTotal  metric.Int64Counter
	ReportQueryDuration metric.Float64Histogram
	ReportQueryErrors   metric.Int64Counter
	ReportRowsReturned  metric.Int64Histogram
}

// CreateBusinessMetrics creates the HTTP and report instruments on meter
func CreateBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	var (
		m   BusinessMetrics
		err error
	)

	if m.HTTPRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	); err != nil {
		return nil, err
	}

	if m.HTTPRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if m.HTTPActiveRequests, err = meter.Int64UpDownCounter(
		"http_active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	); err != nil {
		return nil, err
	}

	if m.ReportQueriesTotal, err = meter.Int64Counter(
		"report_queries_total",
		metric.WithDescription("Total number of report executions"),
	); err != nil {
		return nil, err
	}

	if m.ReportQueryDuration, err = meter.Float64Histogram(
		"report_query_duration_seconds",
		metric.WithDescription("Report query and aggregation duration in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if m.ReportQueryErrors, err = meter.Int64Counter(
		"report_query_errors_total",
		metric.WithDescription("Total number of failed report executions"),
	); err != nil {
		return nil, err
	}

	if m.ReportRowsReturned, err = meter.Int64Histogram(
		"report_rows_returned",
		metric.WithDescription("Number of rows in a report response"),
	); err != nil {
		return nil, err
	}

	return &m, nil
}

// ReportObserver traces and measures report executions. A nil metrics
// pointer disables measurement; spans are still started on the global tracer.
type ReportObserver struct {
	tracer  trace.Tracer
	metrics *BusinessMetrics
}

// NewReportObserver creates an observer. A nil tracer falls back to the global provider.
func NewReportObserver(tracer trace.Tracer, metrics *BusinessMetrics) *ReportObserver {
	if tracer == nil {
		tracer = otel.Tracer(InstrumentationName)
	}
	return &ReportObserver{tracer: tracer, metrics: metrics}
}

// Start opens the report.<name> span and returns a function that closes it
// and records the outcome.
func (o *ReportObserver) Start(ctx context.Context, report domain.ReportName, year domain.Year) (context.Context, func(rows int, err error)) {
	attrs := []attribute.KeyValue{
		attribute.String("report.name", string(report)),
		attribute.String("report.year", year.Label()),
	}

	ctx, span := o.tracer.Start(ctx, "report."+string(report), trace.WithAttributes(attrs...))
	started := time.Now()

	return ctx, func(rows int, err error) {
		defer span.End()

		span.SetAttributes(attribute.Int("report.rows", rows))
		if err != nil {
			RecordError(ctx, err)
		}

		if o.metrics == nil {
			return
		}
		status := attribute.String("status", "success")
		if err != nil {
			status = attribute.String("status", "failure")
			o.metrics.ReportQueryErrors.Add(ctx, 1, metric.WithAttributes(attrs[0]))
		}
		o.metrics.ReportQueriesTotal.Add(ctx, 1, metric.WithAttributes(attrs[0], status))
		o.metrics.ReportQueryDuration.Record(ctx, time.Since(started).Seconds(), metric.WithAttributes(attrs[0], status))
		if err == nil {
			o.metrics.ReportRowsReturned.Record(ctx, int64(rows), metric.WithAttributes(attrs[0]))
		}
	}
}
