package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	apierrors "awreports/internal/errors"
	"awreports/internal/middleware"
	"awreports/internal/shared/testutil"
	"awreports/pkg/contracts/domain"
)

type mockProductionService struct {
	mock.Mock
}

func (m *mockProductionService) ProductionCostByLocation(ctx context.Context, year domain.Year) (domain.ProductionCostReport, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(domain.ProductionCostReport), args.Error(1)
}

func (m *mockProductionService) ProductsCompletedByYear(ctx context.Context) (domain.CompletedProductsReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CompletedProductsReport), args.Error(1)
}

func (m *mockProductionService) ProductionEfficiencyByYear(ctx context.Context) (domain.ProductionEfficiencyReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ProductionEfficiencyReport), args.Error(1)
}

func (m *mockProductionService) DefectiveProductsRate(ctx context.Context, year domain.Year) (domain.DefectRateReport, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(domain.DefectRateReport), args.Error(1)
}

func (m *mockProductionService) TopProductsProduced(ctx context.Context, year domain.Year) (domain.TopProducedReport, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(domain.TopProducedReport), args.Error(1)
}

type mockSalesService struct {
	mock.Mock
}

func (m *mockSalesService) SalesPercentageByCategory(ctx context.Context, year domain.Year) (domain.SalesPercentageReport, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(domain.SalesPercentageReport), args.Error(1)
}

func (m *mockSalesService) TopProductsByRevenue(ctx context.Context, year domain.Year) (domain.TopRevenueReport, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(domain.TopRevenueReport), args.Error(1)
}

func (m *mockSalesService) YearlySalesByCityAndCategory(ctx context.Context, year domain.Year) (domain.CitySalesReport, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(domain.CitySalesReport), args.Error(1)
}

func (m *mockSalesService) TotalSalesForYear(ctx context.Context, year domain.Year) (domain.TotalSalesReport, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(domain.TotalSalesReport), args.Error(1)
}

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// newReportRouter mounts both report handlers the way the application does.
func newReportRouter(t *testing.T, production ProductionService, sales SalesService) http.Handler {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	errorHandler := apierrors.NewErrorHandler(logger, false)
	validator := middleware.NewQueryValidator(logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	NewProductionHandler(production, validator, errorHandler, logger).Routes(r)
	NewSalesHandler(sales, validator, errorHandler, logger).Routes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}
