package domain

import (
	"github.com/shopspring/decimal"
)

// CategorySales is the revenue of one product category and its share of total sales.
type CategorySales struct {
	Category        string          `json:"category"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	SalesPercentage float64         `json:"salesPercentage"`
}

// SalesPercentageReport is the response of the sales-percentage-by-year report.
type SalesPercentageReport struct {
	Year            Year            `json:"year"`
	ExecutionTimeMs int64           `json:"executionTimeMs"`
	Data            []CategorySales `json:"data"`
}

// Table implements Tabular.
func (r SalesPercentageReport) Table() Table {
	rows := make([][]string, 0, len(r.Data))
	for _, c := range r.Data {
		rows = append(rows, []string{c.Category, c.TotalSales.StringFixed(2), formatFloat(c.SalesPercentage)})
	}
	return Table{
		Name:    "Sales By Category",
		Headers: []string{"Category", "Total Sales", "Sales %"},
		Numeric: []bool{false, true, true},
		Rows:    rows,
	}
}

// ProductRevenue is the summed line total of one product.
type ProductRevenue struct {
	ProductID    int64           `json:"-"`
	ProductName  string          `json:"productName"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// TopRevenueReport is the response of the top-products-by-revenue report.
type TopRevenueReport struct {
	Year            Year             `json:"year"`
	ExecutionTimeMs int64            `json:"executionTimeMs"`
	TopProducts     []ProductRevenue `json:"topProducts"`
}

// Table implements Tabular.
func (r TopRevenueReport) Table() Table {
	rows := make([][]string, 0, len(r.TopProducts))
	for _, p := range r.TopProducts {
		rows = append(rows, []string{p.ProductName, p.TotalRevenue.StringFixed(2)})
	}
	return Table{
		Name:    "Top Products By Revenue",
		Headers: []string{"Product Name", "Total Revenue"},
		Numeric: []bool{false, true},
		Rows:    rows,
	}
}

// CityCategorySales is the revenue shipped to one city for one product category.
type CityCategorySales struct {
	City         string          `json:"city"`
	Category     string          `json:"category"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// CitySalesReport is the response of the yearly-sales-by-city-and-category report.
// TopCities is ranked by revenue; SalesData only holds rows for those cities.
type CitySalesReport struct {
	Year            Year                `json:"year"`
	ExecutionTimeMs int64               `json:"executionTimeMs"`
	TopCities       []string            `json:"topCities"`
	SalesData       []CityCategorySales `json:"salesData"`
}

// Table implements Tabular.
func (r CitySalesReport) Table() Table {
	rows := make([][]string, 0, len(r.SalesData))
	for _, s := range r.SalesData {
		rows = append(rows, []string{s.City, s.Category, s.TotalRevenue.StringFixed(2)})
	}
	return Table{
		Name:    "Sales By City",
		Headers: []string{"City", "Category", "Total Revenue"},
		Numeric: []bool{false, false, true},
		Rows:    rows,
	}
}

// TotalSalesReport is the response of the total-sales-year report.
type TotalSalesReport struct {
	Year            Year            `json:"year"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	ExecutionTimeMs int64           `json:"executionTimeMs"`
}

// Table implements Tabular.
func (r TotalSalesReport) Table() Table {
	return Table{
		Name:    "Total Sales",
		Headers: []string{"Year", "Total Sales"},
		Numeric: []bool{true, true},
		Rows:    [][]string{{r.Year.Label(), r.TotalSales.StringFixed(2)}},
	}
}
