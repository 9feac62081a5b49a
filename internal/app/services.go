package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"awreports/internal/config"
	"awreports/internal/infrastructure"
	"awreports/internal/repository"
	"awreports/internal/services"
	"awreports/pkg/contracts/domain"
)

// ServiceContainer holds all application services
type ServiceContainer struct {
	Production *services.ProductionReportService
	Sales      *services.SalesReportService
	Health     *services.HealthService
}

// NewServiceContainer builds the report and health services over db.
// observer may be nil.
func NewServiceContainer(db *sql.DB, cfg config.DatabaseConfig, observer *infrastructure.ReportObserver, logger *slog.Logger) *ServiceContainer {
	return &ServiceContainer{
		Production: services.NewProductionReportService(
			repository.NewProductionRepository(db, logger), observer, logger),
		Sales: services.NewSalesReportService(
			repository.NewSalesRepository(db, logger), observer, logger),
		Health: services.NewHealthService(db, cfg.PingTimeout, logger),
	}
}

// RunReport runs the named report. Reports that always cover every year
// ignore year.
func (c *ServiceContainer) RunReport(ctx context.Context, name domain.ReportName, year domain.Year) (domain.Tabular, error) {
	switch name {
	case domain.ReportProductionCostByLocation:
		return c.Production.ProductionCostByLocation(ctx, year)
	case domain.ReportProductsCompletedByYear:
		return c.Production.ProductsCompletedByYear(ctx)
	case domain.ReportProductionEfficiency:
		return c.Production.ProductionEfficiencyByYear(ctx)
	case domain.ReportDefectiveProductsRate:
		return c.Production.DefectiveProductsRate(ctx, year)
	case domain.ReportTopProductsProduced:
		return c.Production.TopProductsProduced(ctx, year)
	case domain.ReportSalesPercentageByCategory:
		return c.Sales.SalesPercentageByCategory(ctx, year)
	case domain.ReportTopProductsByRevenue:
		return c.Sales.TopProductsByRevenue(ctx, year)
	case domain.ReportSalesByCityAndCategory:
		return c.Sales.YearlySalesByCityAndCategory(ctx, year)
	case domain.ReportTotalSalesYear:
		return c.Sales.TotalSalesForYear(ctx, year)
	default:
		return nil, fmt.Errorf("unknown report %q", name)
	}
}
