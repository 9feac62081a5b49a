package domain

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Report amounts are numbers in JSON, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ReportName identifies a report by the path it is served on.
type ReportName string

const (
	ReportProductionCostByLocation  ReportName = "production-cost-by-location"
	ReportProductsCompletedByYear   ReportName = "products-completed-by-year"
	ReportProductionEfficiency      ReportName = "production-efficiency-by-year"
	ReportDefectiveProductsRate     ReportName = "defective-products-rate"
	ReportTopProductsProduced       ReportName = "top-10-products-produced"
	ReportSalesPercentageByCategory ReportName = "sales-percentage-by-year"
	ReportTopProductsByRevenue      ReportName = "top-products-by-revenue"
	ReportSalesByCityAndCategory    ReportName = "yearly-sales-by-city-and-category"
	ReportTotalSalesYear            ReportName = "total-sales-year"
)

// AllReports lists every report in the order it is documented.
var AllReports = []ReportName{
	ReportProductionCostByLocation,
	ReportProductsCompletedByYear,
	ReportProductionEfficiency,
	ReportDefectiveProductsRate,
	ReportTopProductsProduced,
	ReportSalesPercentageByCategory,
	ReportTopProductsByRevenue,
	ReportSalesByCityAndCategory,
	ReportTotalSalesYear,
}

// ReportFormat defines the encoding of a report response
type ReportFormat string

const (
	ReportFormatJSON  ReportFormat = "json"
	ReportFormatCSV   ReportFormat = "csv"
	ReportFormatExcel ReportFormat = "xlsx"
)

// Table is a flat, exportable view of a report. Numeric marks the columns
// whose cells hold numbers; every other column is text.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
	Numeric []bool
}

// IsNumeric reports whether column col holds numbers
func (t Table) IsNumeric(col int) bool {
	return col >= 0 && col < len(t.Numeric) && t.Numeric[col]
}

// Tabular is implemented by every report that can be exported.
type Tabular interface {
	Table() Table
}

// TopN is the row limit applied by the ranking reports.
const TopN = 10
