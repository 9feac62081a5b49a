package services

import (
	"context"
	"log/slog"

	"awreports/internal/infrastructure"
	"awreports/pkg/contracts/domain"
)

// ProductionStore is the read model behind the production reports
type ProductionStore interface {
	CostByLocation(ctx context.Context, year domain.Year) ([]domain.LocationCost, error)
	CompletedByYear(ctx context.Context) ([]domain.CompletedProducts, error)
	EfficiencyByYear(ctx context.Context) ([]domain.ProductionEfficiency, error)
	DefectRates(ctx context.Context, year domain.Year) ([]domain.DefectRate, error)
	TopProduced(ctx context.Context, year domain.Year, limit int) ([]domain.ProducedProduct, error)
}

// ProductionReportService builds the manufacturing reports
type ProductionReportService struct {
	store  ProductionStore
	runner reportRunner
}

// NewProductionReportService creates a new production report service
func NewProductionReportService(store ProductionStore, observer *infrastructure.ReportObserver, logger *slog.Logger) *ProductionReportService {
	return &ProductionReportService{
		store:  store,
		runner: newReportRunner(observer, logger, "production_reports"),
	}
}

// ProductionCostByLocation sums routing costs per assembly location
func (s *ProductionReportService) ProductionCostByLocation(ctx context.Context, year domain.Year) (domain.ProductionCostReport, error) {
	costs, ms, err := runReport(ctx, s.runner, domain.ReportProductionCostByLocation, year,
		func(ctx context.Context) ([]domain.LocationCost, int, error) {
			costs, err := s.store.CostByLocation(ctx, year)
			return costs, len(costs), err
		})
	if err != nil {
		return domain.ProductionCostReport{}, err
	}

	return domain.ProductionCostReport{
		Year:            year,
		ProductionCosts: costs,
		ExecutionTimeMs: ms,
	}, nil
}

// ProductsCompletedByYear sums finished quantities per end year
func (s *ProductionReportService) ProductsCompletedByYear(ctx context.Context) (domain.CompletedProductsReport, error) {
	completed, _, err := runReport(ctx, s.runner, domain.ReportProductsCompletedByYear, domain.AllYears(),
		func(ctx context.Context) ([]domain.CompletedProducts, int, error) {
			completed, err := s.store.CompletedByYear(ctx)
			return completed, len(completed), err
		})
	if err != nil {
		return nil, err
	}
	return domain.CompletedProductsReport(completed), nil
}

// ProductionEfficiencyByYear compares actual and planned durations per end year
func (s *ProductionReportService) ProductionEfficiencyByYear(ctx context.Context) (domain.ProductionEfficiencyReport, error) {
	efficiency, _, err := runReport(ctx, s.runner, domain.ReportProductionEfficiency, domain.AllYears(),
		func(ctx context.Context) ([]domain.ProductionEfficiency, int, error) {
			efficiency, err := s.store.EfficiencyByYear(ctx)
			return efficiency, len(efficiency), err
		})
	if err != nil {
		return nil, err
	}
	return domain.ProductionEfficiencyReport(efficiency), nil
}

// DefectiveProductsRate reports scrapped quantities per start year
func (s *ProductionReportService) DefectiveProductsRate(ctx context.Context, year domain.Year) (domain.DefectRateReport, error) {
	rates, _, err := runReport(ctx, s.runner, domain.ReportDefectiveProductsRate, year,
		func(ctx context.Context) ([]domain.DefectRate, int, error) {
			rates, err := s.store.DefectRates(ctx, year)
			return rates, len(rates), err
		})
	if err != nil {
		return nil, err
	}
	return domain.DefectRateReport(rates), nil
}

// TopProductsProduced ranks products by ordered work order quantity
func (s *ProductionReportService) TopProductsProduced(ctx context.Context, year domain.Year) (domain.TopProducedReport, error) {
	products, ms, err := runReport(ctx, s.runner, domain.ReportTopProductsProduced, year,
		func(ctx context.Context) ([]domain.ProducedProduct, int, error) {
			products, err := s.store.TopProduced(ctx, year, domain.TopN)
			return products, len(products), err
		})
	if err != nil {
		return domain.TopProducedReport{}, err
	}

	return domain.TopProducedReport{
		Year:            year.Label(),
		ExecutionTimeMs: ms,
		TopProducts:     products,
	}, nil
}
