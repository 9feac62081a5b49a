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

// SalesService defines the sales reports served over HTTP
type SalesService interface {
	SalesPercentageByCategory(ctx context.Context, year domain.Year) (domain.SalesPercentageReport, error)
	TopProductsByRevenue(ctx context.Context, year domain.Year) (domain.TopRevenueReport, error)
	YearlySalesByCityAndCategory(ctx context.Context, year domain.Year) (domain.CitySalesReport, error)
	TotalSalesForYear(ctx context.Context, year domain.Year) (domain.TotalSalesReport, error)
}

// SalesHandler serves the sales reports
type SalesHandler struct {
	service SalesService
	reportResponder
}

// NewSalesHandler creates a new sales report handler
func NewSalesHandler(service SalesService, validator *middleware.QueryValidator, errorHandler *apierrors.ErrorHandler, logger *slog.Logger) *SalesHandler {
	return &SalesHandler{
		service:         service,
		reportResponder: newReportResponder(validator, errorHandler, logger, "sales"),
	}
}

// Routes registers the sales report paths on r
func (h *SalesHandler) Routes(r chi.Router) {
	r.Get("/"+string(domain.ReportSalesPercentageByCategory), h.SalesPercentageByCategory)
	r.Get("/"+string(domain.ReportTopProductsByRevenue), h.TopProductsByRevenue)
	r.Get("/"+string(domain.ReportSalesByCityAndCategory), h.YearlySalesByCityAndCategory)
	r.Get("/"+string(domain.ReportTotalSalesYear), h.TotalSalesForYear)
}

// SalesPercentageByCategory handles GET /sales-percentage-by-year
func (h *SalesHandler) SalesPercentageByCategory(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	report, err := h.service.SalesPercentageByCategory(r.Context(), q.YearFilter())
	h.respond(w, r, domain.ReportSalesPercentageByCategory, q.YearFilter(), q.OutputFormat(), report, err)
}

// TopProductsByRevenue handles GET /top-products-by-revenue
func (h *SalesHandler) TopProductsByRevenue(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	report, err := h.service.TopProductsByRevenue(r.Context(), q.YearFilter())
	h.respond(w, r, domain.ReportTopProductsByRevenue, q.YearFilter(), q.OutputFormat(), report, err)
}

// YearlySalesByCityAndCategory handles GET /yearly-sales-by-city-and-category
func (h *SalesHandler) YearlySalesByCityAndCategory(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	report, err := h.service.YearlySalesByCityAndCategory(r.Context(), q.YearFilter())
	h.respond(w, r, domain.ReportSalesByCityAndCategory, q.YearFilter(), q.OutputFormat(), report, err)
}

// TotalSalesForYear handles GET /total-sales-year
func (h *SalesHandler) TotalSalesForYear(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parse(w, r)
	if !ok {
		return
	}
	report, err := h.service.TotalSalesForYear(r.Context(), q.YearFilter())
	h.respond(w, r, domain.ReportTotalSalesYear, q.YearFilter(), q.OutputFormat(), report, err)
}
