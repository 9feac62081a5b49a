package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"awreports/pkg/contracts/domain"
)

// SalesRepository runs the sales report queries.
type SalesRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewSalesRepository creates a sales repository
func NewSalesRepository(db Querier, logger *slog.Logger) *SalesRepository {
	return &SalesRepository{
		db:     db,
		logger: logger.With(slog.String("component", "sales_repository")),
	}
}

const categoryJoins = `
JOIN Products p ON p.ProductID = sod.ProductID
JOIN ProductSubcategories ps ON ps.ProductSubcategoryID = p.ProductSubcategoryID
JOIN ProductCategories pc ON pc.ProductCategoryID = ps.ProductCategoryID`

// TotalSales sums header TotalDue over orders placed in year. No orders yields zero.
func (r *SalesRepository) TotalSales(ctx context.Context, year domain.Year) (decimal.Decimal, error) {
	var f filter
	f.year("soh.OrderDate", year)

	query := `
SELECT COALESCE(SUM(soh.TotalDue), 0)
FROM SalesOrderHeaders soh
` + f.where()

	total, err := scanMoney(r.db.QueryRowContext(ctx, query, f.args...))
	if err != nil {
		return decimal.Zero, wrap("total sales", err)
	}
	return total, nil
}

// CategorySales sums LineTotal per product category for orders placed in year,
// ordered by category name. SalesPercentage is left for the caller.
func (r *SalesRepository) CategorySales(ctx context.Context, year domain.Year) ([]domain.CategorySales, error) {
	var f filter
	f.year("soh.OrderDate", year)

	query := `
SELECT pc.Name, COALESCE(SUM(sod.LineTotal), 0)
FROM SalesOrderDetails sod
JOIN SalesOrderHeaders soh ON soh.SalesOrderID = sod.SalesOrderID` + categoryJoins + `
` + f.where() + `
GROUP BY pc.Name
ORDER BY pc.Name ASC`

	return queryRows(ctx, r.db, r.logger, "sales by category", query, f.args,
		func(rows *sql.Rows) (domain.CategorySales, error) {
			var c domain.CategorySales
			if err := rows.Scan(&c.Category, &c.TotalSales); err != nil {
				return c, err
			}
			c.TotalSales = c.TotalSales.Round(moneyPlaces)
			return c, nil
		})
}

// TopRevenue ranks products by summed LineTotal for orders placed in year.
// Ties are broken by product id.
func (r *SalesRepository) TopRevenue(ctx context.Context, year domain.Year, limit int) ([]domain.ProductRevenue, error) {
	var f filter
	f.year("soh.OrderDate", year)

	query := `
SELECT p.ProductID, p.Name, COALESCE(SUM(sod.LineTotal), 0) AS TotalRevenue
FROM SalesOrderDetails sod
JOIN Products p ON p.ProductID = sod.ProductID
JOIN SalesOrderHeaders soh ON soh.SalesOrderID = sod.SalesOrderID
` + f.where() + `
GROUP BY p.ProductID, p.Name
ORDER BY TotalRevenue DESC, p.ProductID ASC
LIMIT ?`

	return queryRows(ctx, r.db, r.logger, "top products by revenue", query, append(f.args, limit),
		func(rows *sql.Rows) (domain.ProductRevenue, error) {
			var p domain.ProductRevenue
			if err := rows.Scan(&p.ProductID, &p.ProductName, &p.TotalRevenue); err != nil {
				return p, err
			}
			p.TotalRevenue = p.TotalRevenue.Round(moneyPlaces)
			return p, nil
		})
}

type cityCategoryRow struct {
	sales       domain.CityCategorySales
	cityRevenue decimal.Decimal
}

// CitySales returns the limit cities with the highest revenue in year, ranked
// by revenue then name, and the per-category revenue rows of those cities
// ordered by city and category.
func (r *SalesRepository) CitySales(ctx context.Context, year domain.Year, limit int) ([]string, []domain.CityCategorySales, error) {
	var f filter
	f.year("soh.OrderDate", year)

	query := `
WITH city_category AS (
	SELECT a.City AS City, pc.Name AS Category, SUM(sod.LineTotal) AS Revenue
	FROM SalesOrderDetails sod
	JOIN SalesOrderHeaders soh ON soh.SalesOrderID = sod.SalesOrderID
	JOIN Addresses a ON a.AddressID = soh.ShipToAddressID` + categoryJoins + `
	` + f.where() + `
	GROUP BY a.City, pc.Name
),
top_cities AS (
	SELECT City, SUM(Revenue) AS CityRevenue
	FROM city_category
	GROUP BY City
	ORDER BY CityRevenue DESC, City ASC
	LIMIT ?
)
SELECT cc.City, cc.Category, cc.Revenue, tc.CityRevenue
FROM city_category cc
JOIN top_cities tc ON tc.City = cc.City
ORDER BY cc.City ASC, cc.Category ASC`

	rows, err := queryRows(ctx, r.db, r.logger, "sales by city and category", query, append(f.args, limit),
		func(rows *sql.Rows) (cityCategoryRow, error) {
			var row cityCategoryRow
			if err := rows.Scan(&row.sales.City, &row.sales.Category, &row.sales.TotalRevenue, &row.cityRevenue); err != nil {
				return row, err
			}
			row.sales.TotalRevenue = row.sales.TotalRevenue.Round(moneyPlaces)
			return row, nil
		})
	if err != nil {
		return nil, nil, err
	}

	revenue := make(map[string]decimal.Decimal)
	data := make([]domain.CityCategorySales, 0, len(rows))
	for _, row := range rows {
		revenue[row.sales.City] = row.cityRevenue
		data = append(data, row.sales)
	}

	cities := make([]string, 0, len(revenue))
	for city := range revenue {
		cities = append(cities, city)
	}
	slices.SortFunc(cities, func(a, b string) int {
		if c := revenue[b].Cmp(revenue[a]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	return cities, data, nil
}
