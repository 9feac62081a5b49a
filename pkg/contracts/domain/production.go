package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// LocationCost is the summed routing cost of one assembly location.
type LocationCost struct {
	Location            string          `json:"location"`
	TotalProductionCost decimal.Decimal `json:"totalProductionCost"`
}

// ProductionCostReport is the response of the cost-by-location report.
type ProductionCostReport struct {
	Year            Year           `json:"year"`
	ProductionCosts []LocationCost `json:"productionCosts"`
	ExecutionTimeMs int64          `json:"executionTimeMs"`
}

// Table implements Tabular.
func (r ProductionCostReport) Table() Table {
	rows := make([][]string, 0, len(r.ProductionCosts))
	for _, c := range r.ProductionCosts {
		rows = append(rows, []string{c.Location, c.TotalProductionCost.StringFixed(2)})
	}
	return Table{
		Name:    "Production Cost",
		Headers: []string{"Location", "Total Production Cost"},
		Numeric: []bool{false, true},
		Rows:    rows,
	}
}

// CompletedProducts is the quantity finished in one calendar year.
type CompletedProducts struct {
	Year                   int   `json:"year"`
	TotalCompletedProducts int64 `json:"totalCompletedProducts"`
}

// CompletedProductsReport lists completed quantities by year, ascending.
type CompletedProductsReport []CompletedProducts

// Table implements Tabular.
func (r CompletedProductsReport) Table() Table {
	rows := make([][]string, 0, len(r))
	for _, c := range r {
		rows = append(rows, []string{strconv.Itoa(c.Year), strconv.FormatInt(c.TotalCompletedProducts, 10)})
	}
	return Table{
		Name:    "Completed Products",
		Headers: []string{"Year", "Total Completed Products"},
		Numeric: []bool{true, true},
		Rows:    rows,
	}
}

// ProductionEfficiency compares actual and planned work order durations, in days.
type ProductionEfficiency struct {
	Year                   int     `json:"year"`
	AverageActualDuration  float64 `json:"averageActualDuration"`
	AveragePlannedDuration float64 `json:"averagePlannedDuration"`
}

// ProductionEfficiencyReport lists efficiency figures by year, ascending.
type ProductionEfficiencyReport []ProductionEfficiency

// Table implements Tabular.
func (r ProductionEfficiencyReport) Table() Table {
	rows := make([][]string, 0, len(r))
	for _, e := range r {
		rows = append(rows, []string{
			strconv.Itoa(e.Year),
			formatFloat(e.AverageActualDuration),
			formatFloat(e.AveragePlannedDuration),
		})
	}
	return Table{
		Name:    "Production Efficiency",
		Headers: []string{"Year", "Average Actual Duration", "Average Planned Duration"},
		Numeric: []bool{true, true, true},
		Rows:    rows,
	}
}

// DefectRate is the share of scrapped quantity among the work orders started in a year.
type DefectRate struct {
	Year                    int     `json:"year"`
	TotalProducts           int64   `json:"totalProducts"`
	DefectiveProducts       int64   `json:"defectiveProducts"`
	DefectiveRatePercentage float64 `json:"defectiveRatePercentage"`
}

// NewDefectRate derives the percentage from the two quantities.
func NewDefectRate(year int, total, defective int64) DefectRate {
	return DefectRate{
		Year:                    year,
		TotalProducts:           total,
		DefectiveProducts:       defective,
		DefectiveRatePercentage: RatePercentage(defective, total),
	}
}

// DefectRateReport lists defect rates by year, ascending.
type DefectRateReport []DefectRate

// Table implements Tabular.
func (r DefectRateReport) Table() Table {
	rows := make([][]string, 0, len(r))
	for _, d := range r {
		rows = append(rows, []string{
			strconv.Itoa(d.Year),
			strconv.FormatInt(d.TotalProducts, 10),
			strconv.FormatInt(d.DefectiveProducts, 10),
			formatFloat(d.DefectiveRatePercentage),
		})
	}
	return Table{
		Name:    "Defective Products",
		Headers: []string{"Year", "Total Products", "Defective Products", "Defective Rate %"},
		Numeric: []bool{true, true, true, true},
		Rows:    rows,
	}
}

// ProducedProduct is the total quantity ordered for one product.
type ProducedProduct struct {
	Name          string `json:"name"`
	ProductNumber string `json:"productNumber"`
	TotalProduced int64  `json:"totalProduced"`
}

// TopProducedReport is the response of the top-10-products-produced report.
// Year carries the year as text, or AllYearsLabel.
type TopProducedReport struct {
	Year            string            `json:"year"`
	ExecutionTimeMs int64             `json:"executionTimeMs"`
	TopProducts     []ProducedProduct `json:"topProducts"`
}

// Table implements Tabular.
func (r TopProducedReport) Table() Table {
	rows := make([][]string, 0, len(r.TopProducts))
	for _, p := range r.TopProducts {
		rows = append(rows, []string{p.Name, p.ProductNumber, strconv.FormatInt(p.TotalProduced, 10)})
	}
	return Table{
		Name:    "Top Products Produced",
		Headers: []string{"Name", "Product Number", "Total Produced"},
		Numeric: []bool{false, false, true},
		Rows:    rows,
	}
}
