package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "awreports/internal/errors"
	"awreports/internal/middleware"
	"awreports/pkg/contracts/domain"
)

// ProductionService defines the manufacturing reports served over HTTP
type ProductionService interface {
	ProductionCostByLocation(ctx context.Context, year domain.Year) (domain.ProductionCostReport, error)
	ProductsCompletedByYear(ctx context.Context) (domain.CompletedProductsReport, error)
	ProductionEfficiencyByYear(ctx context.Context) (domain.ProductionEfficiencyReport, error)
	DefectiveProductsRate(ctx context.Context, year domain.Year) (domain.DefectRateReport, error)
	TopProductsProduced(ctx context.Context, year domain.Year) (domain.TopProducedReport, error)
}

// ProductionHandler serves the production reports
type ProductionHandler struct {
	service ProductionService
	reportResponder
}

// NewProductionHandler creates a new production report handler
func NewProductionHandler(service ProductionService, validator *middleware.QueryValidator, errorHandler *apierrors.ErrorHandler, logger *slog.Logger) *ProductionHandler {
	return &ProductionHandler{
		service:         service,
		reportResponder: newReportResponder(validator, errorHandler, logger, "production"),
	}
}

// Routes registers the production report paths on r
func (h *ProductionHandler) Routes(r chi.Router) {
	r.Get("/"+string(domain.ReportProductionCostByLocation), h.ProductionCostByLocation)
	r.Get("/"+string(domain.ReportProductsCompletedByYear), h.ProductsCompletedByYear)
	r.Get("/"+string(domain.ReportProductionEfficiency), h.ProductionEfficiencyByYear)
	r.Get("/"+string(domain.ReportDefectiveProductsRate), h.DefectiveProductsRate)
	r.Get("/"+string(domain.ReportTopProductsProduced), h.TopProductsProduced)
}

// ProductionCostByLocation handles GET /production-cost-by-location
func (h *ProductionHandler) ProductionCostByLocation(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	report, err := h.service.ProductionCostByLocation(r.Context(), q.YearFilter())
	h.respond(w, r, domain.ReportProductionCostByLocation, q.YearFilter(), q.OutputFormat(), report, err)
}

// ProductsCompletedByYear handles GET /products-completed-by-year. The report
// always covers every year, so only format is read.
func (h *ProductionHandler) ProductsCompletedByYear(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	report, err := h.service.ProductsCompletedByYear(r.Context())
	h.respond(w, r, domain.ReportProductsCompletedByYear, domain.AllYears(), q.OutputFormat(), report, err)
}

// ProductionEfficiencyByYear handles GET /production-efficiency-by-year
func (h *ProductionHandler) ProductionEfficiencyByYear(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	report, err := h.service.ProductionEfficiencyByYear(r.Context())
	h.respond(w, r, domain.ReportProductionEfficiency, domain.AllYears(), q.OutputFormat(), report, err)
}

// DefectiveProductsRate handles GET /defective-products-rate
func (h *ProductionHandler) DefectiveProductsRate(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	report, err := h.service.DefectiveProductsRate(r.Context(), q.YearFilter())
	h.respond(w, r, domain.ReportDefectiveProductsRate, q.YearFilter(), q.OutputFormat(), report, err)
}

// TopProductsProduced handles GET /top-10-products-produced
func (h *ProductionHandler) TopProductsProduced(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	report, err := h.service.TopProductsProduced(r.Context(), q.YearFilter())
	h.respond(w, r, domain.ReportTopProductsProduced, q.YearFilter(), q.OutputFormat(), report, err)
}
