package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"awreports/internal/infrastructure"
	"awreports/pkg/contracts/domain"
)

// SalesStore is the read model behind the sales reports
type SalesStore interface {
	TotalSales(ctx context.Context, year domain.Year) (decimal.Decimal, error)
	CategorySales(ctx context.Context, year domain.Year) ([]domain.CategorySales, error)
	TopRevenue(ctx context.Context, year domain.Year, limit int) ([]domain.ProductRevenue, error)
	CitySales(ctx context.Context, year domain.Year, limit int) ([]string, []domain.CityCategorySales, error)
}

// SalesReportService builds the sales reports
type SalesReportService struct {
	store  SalesStore
	runner reportRunner
}

// NewSalesReportService creates a new sales report service
func NewSalesReportService(store SalesStore, observer *infrastructure.ReportObserver, logger *slog.Logger) *SalesReportService {
	return &SalesReportService{
		store:  store,
		runner: newReportRunner(observer, logger, "sales_reports"),
	}
}

// SalesPercentageByCategory reports each category's share of total sales.
// The total and the per-category sums are independent and run concurrently.
func (s *SalesReportService) SalesPercentageByCategory(ctx context.Context, year domain.Year) (domain.SalesPercentageReport, error) {
	data, ms, err := runReport(ctx, s.runner, domain.ReportSalesPercentageByCategory, year,
		func(ctx context.Context) ([]domain.CategorySales, int, error) {
			var (
				total      decimal.Decimal
				categories []domain.CategorySales
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				total, err = s.store.TotalSales(gctx, year)
				return err
			})
			g.Go(func() error {
				var err error
				categories, err = s.store.CategorySales(gctx, year)
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, 0, err
			}

			for i := range categories {
				categories[i].SalesPercentage = domain.Percentage(categories[i].TotalSales, total)
			}
			return categories, len(categories), nil
		})
	if err != nil {
		return domain.SalesPercentageReport{}, err
	}

	return domain.SalesPercentageReport{
		Year:            year,
		ExecutionTimeMs: ms,
		Data:            data,
	}, nil
}

// TopProductsByRevenue ranks products by summed line totals
func (s *SalesReportService) TopProductsByRevenue(ctx context.Context, year domain.Year) (domain.TopRevenueReport, error) {
	products, ms, err := runReport(ctx, s.runner, domain.ReportTopProductsByRevenue, year,
		func(ctx context.Context) ([]domain.ProductRevenue, int, error) {
			products, err := s.store.TopRevenue(ctx, year, domain.TopN)
			return products, len(products), err
		})
	if err != nil {
		return domain.TopRevenueReport{}, err
	}

	return domain.TopRevenueReport{
		Year:            year,
		ExecutionTimeMs: ms,
		TopProducts:     products,
	}, nil
}

type citySales struct {
	cities []string
	rows   []domain.CityCategorySales
}

// YearlySalesByCityAndCategory breaks down the revenue of the top cities by category
func (s *SalesReportService) YearlySalesByCityAndCategory(ctx context.Context, year domain.Year) (domain.CitySalesReport, error) {
	result, ms, err := runReport(ctx, s.runner, domain.ReportSalesByCityAndCategory, year,
		func(ctx context.Context) (citySales, int, error) {
			cities, rows, err := s.store.CitySales(ctx, year, domain.TopN)
			return citySales{cities: cities, rows: rows}, len(rows), err
		})
	if err != nil {
		return domain.CitySalesReport{}, err
	}

	return domain.CitySalesReport{
		Year:            year,
		ExecutionTimeMs: ms,
		TopCities:       result.cities,
		SalesData:       result.rows,
	}, nil
}

// TotalSalesForYear sums the amount due of every order
func (s *SalesReportService) TotalSalesForYear(ctx context.Context, year domain.Year) (domain.TotalSalesReport, error) {
	total, ms, err := runReport(ctx, s.runner, domain.ReportTotalSalesYear, year,
		func(ctx context.Context) (decimal.Decimal, int, error) {
			total, err := s.store.TotalSales(ctx, year)
			return total, 1, err
		})
	if err != nil {
		return domain.TotalSalesReport{}, err
	}

	return domain.TotalSalesReport{
		Year:            year,
		TotalSales:      total,
		ExecutionTimeMs: ms,
	}, nil
}
