package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	apierrors "awreports/internal/errors"
	"awreports/internal/exporter"
	"awreports/internal/middleware"
	"awreports/internal/repository"
	api "awreports/pkg/contracts/api/v1"
	"awreports/pkg/contracts/domain"
)

// reportResponder holds what every report handler needs to turn a query into
// a response: query validation, problem rendering and export encoding.
type reportResponder struct {
	validator    *middleware.QueryValidator
	errorHandler *apierrors.ErrorHandler
	logger       *slog.Logger
}

func newReportResponder(validator *middleware.QueryValidator, errorHandler *apierrors.ErrorHandler, logger *slog.Logger, handler string) reportResponder {
	if logger == nil {
		logger = slog.Default()
	}
	return reportResponder{
		validator:    validator,
		errorHandler: errorHandler,
		logger:       logger.With(slog.String("handler", handler)),
	}
}

// parse validates the query string, writing a 400 problem when it is invalid.
func (rr reportResponder) parse(w http.ResponseWriter, r *http.Request) (api.ReportQuery, bool) {
	q, err := rr.validator.ParseReportQuery(r)
	if err != nil {
		rr.errorHandler.HandleError(w, r, err)
		return api.ReportQuery{}, false
	}
	return q, true
}

// respond writes report in the requested format, or the problem for err.
func (rr reportResponder) respond(w http.ResponseWriter, r *http.Request, name domain.ReportName, year domain.Year, format domain.ReportFormat, report domain.Tabular, err error) {
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			rr.errorHandler.HandleError(w, r, apierrors.StoreUnavailableError(string(name), err))
			return
		}
		rr.errorHandler.HandleError(w, r, apierrors.ReportQueryError(string(name), err))
		return
	}

	if format == domain.ReportFormatJSON {
		render.JSON(w, r, report)
		return
	}

	var buf bytes.Buffer
	if err := exporter.Write(&buf, format, report.Table()); err != nil {
		rr.logger.ErrorContext(r.Context(), "report export failed",
			slog.String("report", string(name)),
			slog.String("format", string(format)),
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		rr.errorHandler.HandleError(w, r, apierrors.ErrInternalServer)
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType(format))
	w.Header().Set("Content-Disposition", exporter.ContentDisposition(name, year, format))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		rr.logger.WarnContext(r.Context(), "failed to write export",
			slog.String("report", string(name)),
			slog.String("error", err.Error()),
		)
	}
}
