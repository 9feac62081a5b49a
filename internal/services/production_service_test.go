package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"awreports/internal/repository"
	"awreports/internal/shared/testutil"
	"awreports/pkg/contracts/domain"
)

func TestProductionReportService_ProductionCostByLocation(t *testing.T) {
	tests := []struct {
		name  string
		year  domain.Year
		costs []domain.LocationCost
	}{
		{
			name: "single year",
			year: domain.YearOf(2013),
			costs: []domain.LocationCost{
				{Location: "Final Assembly", TotalProductionCost: decimal.RequireFromString("200.1234")},
				{Location: "Paint", TotalProductionCost: decimal.RequireFromString("110.5")},
			},
		},
		{
			name:  "all years, no rows",
			year:  domain.AllYears(),
			costs: []domain.LocationCost{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := testutil.NewTestLogger(t)
			store := new(mockProductionStore)
			store.On("CostByLocation", mock.Anything, tt.year).Return(tt.costs, nil)

			svc := NewProductionReportService(store, nil, logger)
			report, err := svc.ProductionCostByLocation(context.Background(), tt.year)

			require.NoError(t, err)
			assert.Equal(t, tt.year, report.Year)
			assert.Equal(t, tt.costs, report.ProductionCosts)
			assert.NotNil(t, report.ProductionCosts)
			assert.GreaterOrEqual(t, report.ExecutionTimeMs, int64(0))

			testutil.AssertLogContains(t, logs, slog.LevelInfo, "Report generated")
			testutil.AssertLogAttr(t, logs, "report", string(domain.ReportProductionCostByLocation))
			testutil.AssertLogAttr(t, logs, "year", tt.year.Label())
			store.AssertExpectations(t)
		})
	}
}

func TestProductionReportService_ProductsCompletedByYear(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	store := new(mockProductionStore)
	store.On("CompletedByYear", mock.Anything).Return([]domain.CompletedProducts{
		{Year: 2013, TotalCompletedProducts: 15},
		{Year: 2014, TotalCompletedProducts: 28},
	}, nil)

	svc := NewProductionReportService(store, nil, logger)
	report, err := svc.ProductsCompletedByYear(context.Background())

	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, int64(28), report[1].TotalCompletedProducts)
	store.AssertExpectations(t)
}

func TestProductionReportService_ProductionEfficiencyByYear(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	store := new(mockProductionStore)
	store.On("EfficiencyByYear", mock.Anything).Return([]domain.ProductionEfficiency{
		{Year: 2013, AverageActualDuration: 4, AveragePlannedDuration: 10.5},
	}, nil)

	svc := NewProductionReportService(store, nil, logger)
	report, err := svc.ProductionEfficiencyByYear(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.ProductionEfficiencyReport{
		{Year: 2013, AverageActualDuration: 4, AveragePlannedDuration: 10.5},
	}, report)
}

func TestProductionReportService_DefectiveProductsRate(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	store := new(mockProductionStore)
	store.On("DefectRates", mock.Anything, domain.YearOf(2013)).Return([]domain.DefectRate{
		domain.NewDefectRate(2013, 35, 25),
	}, nil)

	svc := NewProductionReportService(store, nil, logger)
	report, err := svc.DefectiveProductsRate(context.Background(), domain.YearOf(2013))

	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, 71.43, report[0].DefectiveRatePercentage)
	assert.LessOrEqual(t, report[0].DefectiveProducts, report[0].TotalProducts)
}

func TestProductionReportService_TopProductsProduced(t *testing.T) {
	tests := []struct {
		name      string
		year      domain.Year
		wantLabel string
	}{
		{name: "all years", year: domain.AllYears(), wantLabel: "All Years"},
		{name: "single year", year: domain.YearOf(2014), wantLabel: "2014"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := testutil.NewTestLogger(t)
			store := new(mockProductionStore)
			store.On("TopProduced", mock.Anything, tt.year, domain.TopN).Return([]domain.ProducedProduct{
				{Name: "Bike Wash", ProductNumber: "CL-9009", TotalProduced: 20},
			}, nil)

			svc := NewProductionReportService(store, nil, logger)
			report, err := svc.TopProductsProduced(context.Background(), tt.year)

			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, report.Year)
			assert.Len(t, report.TopProducts, 1)
			store.AssertExpectations(t)
		})
	}
}

func TestProductionReportService_Errors(t *testing.T) {
	storeErr := errors.New("database is locked")

	tests := []struct {
		name   string
		report domain.ReportName
		setup  func(*mockProductionStore)
		call   func(*ProductionReportService) error
	}{
		{
			name:   "cost by location",
			report: domain.ReportProductionCostByLocation,
			setup: func(m *mockProductionStore) {
				m.On("CostByLocation", mock.Anything, mock.Anything).Return(nil, storeErr)
			},
			call: func(s *ProductionReportService) error {
				report, err := s.ProductionCostByLocation(context.Background(), domain.AllYears())
				assert.Empty(t, report.ProductionCosts)
				return err
			},
		},
		{
			name:   "completed",
			report: domain.ReportProductsCompletedByYear,
			setup: func(m *mockProductionStore) {
				m.On("CompletedByYear", mock.Anything).Return(nil, storeErr)
			},
			call: func(s *ProductionReportService) error {
				report, err := s.ProductsCompletedByYear(context.Background())
				assert.Nil(t, report)
				return err
			},
		},
		{
			name:   "efficiency",
			report: domain.ReportProductionEfficiency,
			setup: func(m *mockProductionStore) {
				m.On("EfficiencyByYear", mock.Anything).Return(nil, storeErr)
			},
			call: func(s *ProductionReportService) error {
				_, err := s.ProductionEfficiencyByYear(context.Background())
				return err
			},
		},
		{
			name:   "defect rate",
			report: domain.ReportDefectiveProductsRate,
			setup: func(m *mockProductionStore) {
				m.On("DefectRates", mock.Anything, mock.Anything).Return(nil, storeErr)
			},
			call: func(s *ProductionReportService) error {
				_, err := s.DefectiveProductsRate(context.Background(), domain.YearOf(2013))
				return err
			},
		},
		{
			name:   "top produced",
			report: domain.ReportTopProductsProduced,
			setup: func(m *mockProductionStore) {
				m.On("TopProduced", mock.Anything, mock.Anything, domain.TopN).Return(nil, storeErr)
			},
			call: func(s *ProductionReportService) error {
				report, err := s.TopProductsProduced(context.Background(), domain.AllYears())
				assert.Empty(t, report.Year)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := testutil.NewTestLogger(t)
			store := new(mockProductionStore)
			tt.setup(store)

			err := tt.call(NewProductionReportService(store, nil, logger))

			require.Error(t, err)
			assert.ErrorIs(t, err, storeErr)
			assert.Contains(t, err.Error(), string(tt.report))
			testutil.AssertLogContains(t, logs, slog.LevelError, "Report failed")
		})
	}
}

func TestProductionReportService_AgainstStore(t *testing.T) {
	db := testutil.NewTestDB(t, nil)
	logger, logs := testutil.NewTestLogger(t)
	svc := NewProductionReportService(repository.NewProductionRepository(db, logger), nil, logger)
	ctx := context.Background()

	cost, err := svc.ProductionCostByLocation(ctx, domain.YearOf(2013))
	require.NoError(t, err)
	assert.NotNil(t, cost.ProductionCosts)
	assert.Empty(t, cost.ProductionCosts)

	top, err := svc.TopProductsProduced(ctx, domain.AllYears())
	require.NoError(t, err)
	assert.Equal(t, "All Years", top.Year)
	assert.NotNil(t, top.TopProducts)

	defects, err := svc.DefectiveProductsRate(ctx, domain.AllYears())
	require.NoError(t, err)
	assert.NotNil(t, defects)

	testutil.AssertNoErrors(t, logs)
}
