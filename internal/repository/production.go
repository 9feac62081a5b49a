package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/shopspring/decimal"

	"awreports/pkg/contracts/domain"
)

// ProductionRepository runs the production report queries.
type ProductionRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewProductionRepository creates a production repository
func NewProductionRepository(db Querier, logger *slog.Logger) *ProductionRepository {
	return &ProductionRepository{
		db:     db,
		logger: logger.With(slog.String("component", "production_repository")),
	}
}

// CostByLocation sums routing ActualCost per location over work orders due in year.
// Ordered by cost descending, then location name.
func (r *ProductionRepository) CostByLocation(ctx context.Context, year domain.Year) ([]domain.LocationCost, error) {
	var f filter
	f.year("wo.DueDate", year)

	query := `
SELECT l.Name, COALESCE(SUM(wor.ActualCost), 0) AS TotalCost
FROM WorkOrders wo
JOIN WorkOrderRoutings wor ON wor.WorkOrderID = wo.WorkOrderID
JOIN Locations l ON l.LocationID = wor.LocationID
` + f.where() + `
GROUP BY l.Name
ORDER BY TotalCost DESC, l.Name ASC`

	return queryRows(ctx, r.db, r.logger, "production cost by location", query, f.args,
		func(rows *sql.Rows) (domain.LocationCost, error) {
			var c domain.LocationCost
			if err := rows.Scan(&c.Location, &c.TotalProductionCost); err != nil {
				return c, err
			}
			c.TotalProductionCost = c.TotalProductionCost.Round(moneyPlaces)
			return c, nil
		})
}

// CompletedByYear sums OrderQty of finished work orders per EndDate year, ascending.
func (r *ProductionRepository) CompletedByYear(ctx context.Context) ([]domain.CompletedProducts, error) {
	const query = `
SELECT CAST(strftime('%Y', EndDate) AS INTEGER) AS EndYear, SUM(OrderQty)
FROM WorkOrders
WHERE EndDate IS NOT NULL
GROUP BY EndYear
ORDER BY EndYear`

	return queryRows(ctx, r.db, r.logger, "products completed by year", query, nil,
		func(rows *sql.Rows) (domain.CompletedProducts, error) {
			var c domain.CompletedProducts
			err := rows.Scan(&c.Year, &c.TotalCompletedProducts)
			return c, err
		})
}

// EfficiencyByYear averages actual (Start to End) and planned (Start to Due)
// durations in whole days per EndDate year, ascending.
func (r *ProductionRepository) EfficiencyByYear(ctx context.Context) ([]domain.ProductionEfficiency, error) {
	const query = `
SELECT CAST(strftime('%Y', EndDate) AS INTEGER) AS EndYear,
       AVG(julianday(date(EndDate)) - julianday(date(StartDate))),
       AVG(julianday(date(DueDate)) - julianday(date(StartDate)))
FROM WorkOrders
WHERE StartDate IS NOT NULL AND EndDate IS NOT NULL
GROUP BY EndYear
ORDER BY EndYear`

	return queryRows(ctx, r.db, r.logger, "production efficiency by year", query, nil,
		func(rows *sql.Rows) (domain.ProductionEfficiency, error) {
			var e domain.ProductionEfficiency
			if err := rows.Scan(&e.Year, &e.AverageActualDuration, &e.AveragePlannedDuration); err != nil {
				return e, err
			}
			e.AverageActualDuration = domain.RoundDays(e.AverageActualDuration)
			e.AveragePlannedDuration = domain.RoundDays(e.AveragePlannedDuration)
			return e, nil
		})
}

// DefectRates groups work orders by StartDate year and counts the quantity of
// those carrying a scrap reason as defective.
func (r *ProductionRepository) DefectRates(ctx context.Context, year domain.Year) ([]domain.DefectRate, error) {
	var f filter
	f.add("StartDate IS NOT NULL")
	f.year("StartDate", year)

	query := `
SELECT CAST(strftime('%Y', StartDate) AS INTEGER) AS StartYear,
       SUM(OrderQty),
       SUM(CASE WHEN ScrapReasonID IS NOT NULL THEN OrderQty ELSE 0 END)
FROM WorkOrders
` + f.where() + `
GROUP BY StartYear
ORDER BY StartYear`

	return queryRows(ctx, r.db, r.logger, "defective products rate", query, f.args,
		func(rows *sql.Rows) (domain.DefectRate, error) {
			var (
				y                int
				total, defective int64
			)
			if err := rows.Scan(&y, &total, &defective); err != nil {
				return domain.DefectRate{}, err
			}
			return domain.NewDefectRate(y, total, defective), nil
		})
}

// TopProduced ranks products by summed work order quantity for orders due in year.
func (r *ProductionRepository) TopProduced(ctx context.Context, year domain.Year, limit int) ([]domain.ProducedProduct, error) {
	var f filter
	f.year("wo.DueDate", year)

	query := `
SELECT p.Name, p.ProductNumber, SUM(wo.OrderQty) AS TotalProduced
FROM WorkOrders wo
JOIN Products p ON p.ProductID = wo.ProductID
` + f.where() + `
GROUP BY p.Name, p.ProductNumber
ORDER BY TotalProduced DESC, p.Name ASC, p.ProductNumber ASC
LIMIT ?`

	return queryRows(ctx, r.db, r.logger, "top products produced", query, append(f.args, limit),
		func(rows *sql.Rows) (domain.ProducedProduct, error) {
			var p domain.ProducedProduct
			err := rows.Scan(&p.Name, &p.ProductNumber, &p.TotalProduced)
			return p, err
		})
}

// scanMoney is used where a single aggregate is read with QueryRow.
func scanMoney(row *sql.Row) (decimal.Decimal, error) {
	var d decimal.Decimal
	if err := row.Scan(&d); err != nil {
		return decimal.Zero, err
	}
	return d.Round(moneyPlaces), nil
}
