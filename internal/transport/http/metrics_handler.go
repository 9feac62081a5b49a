package http

import (
	"net/http"

	apierrors "awreports/internal/errors"
)

// MetricsHandler exposes the Prometheus registry fed by the OpenTelemetry
// meter. It answers 503 when the metric exporter is disabled.
type MetricsHandler struct {
	exposition   http.Handler
	errorHandler *apierrors.ErrorHandler
}

// NewMetricsHandler creates a new metrics handler; exposition may be nil
func NewMetricsHandler(exposition http.Handler, errorHandler *apierrors.ErrorHandler) *MetricsHandler {
	return &MetricsHandler{exposition: exposition, errorHandler: errorHandler}
}

// ServeHTTP handles GET /metrics
func (h *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.exposition == nil {
		h.errorHandler.HandleError(w, r, apierrors.New(
			http.StatusServiceUnavailable,
			apierrors.CodeServiceUnavailable,
			"Metrics exporter is disabled",
		))
		return
	}
	h.exposition.ServeHTTP(w, r)
}
