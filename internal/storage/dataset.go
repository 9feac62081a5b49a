package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// TimeLayout is the text layout of every date column.
const TimeLayout = "2006-01-02 15:04:05"

type Location struct {
	ID   int64
	Name string
}

type Category struct {
	ID   int64
	Name string
}

type Subcategory struct {
	ID         int64
	CategoryID int64
	Name       string
}

// Product without a subcategory has SubcategoryID 0.
type Product struct {
	ID            int64
	Name          string
	Number        string
	SubcategoryID int64
}

// WorkOrder is a manufacturing job. A nil ScrapReasonID means nothing was scrapped.
type WorkOrder struct {
	ID            int64
	ProductID     int64
	OrderQty      int64
	StartDate     *time.Time
	EndDate       *time.Time
	DueDate       time.Time
	ScrapReasonID *int64
}

// Routing is one operation step of a work order. A nil ActualCost is stored as NULL.
type Routing struct {
	WorkOrderID int64
	Sequence    int
	LocationID  int64
	ActualCost  *float64
}

type Address struct {
	ID   int64
	City string
}

type SalesOrder struct {
	ID              int64
	OrderDate       time.Time
	ShipToAddressID int64
	TotalDue        float64
}

type SalesOrderLine struct {
	ID           int64
	SalesOrderID int64
	ProductID    int64
	OrderQty     int64
	LineTotal    float64
}

// Dataset is a complete set of rows that can be loaded into an empty schema.
type Dataset struct {
	Locations     []Location
	Categories    []Category
	Subcategories []Subcategory
	Products      []Product
	WorkOrders    []WorkOrder
	Routings      []Routing
	Addresses     []Address
	SalesOrders   []SalesOrder
	Lines         []SalesOrderLine
}

// Rows returns the number of rows across all tables.
func (d *Dataset) Rows() int {
	return len(d.Locations) + len(d.Categories) + len(d.Subcategories) + len(d.Products) +
		len(d.WorkOrders) + len(d.Routings) + len(d.Addresses) + len(d.SalesOrders) + len(d.Lines)
}

// Load inserts the dataset in a single transaction, parents before children.
func Load(ctx context.Context, db *sql.DB, d *Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin load: %w", err)
	}
	defer tx.Rollback()

	steps := []struct {
		table string
		stmt  string
		n     int
		args  func(i int) []any
	}{
		{"Locations", `INSERT INTO Locations (LocationID, Name) VALUES (?, ?)`, len(d.Locations),
			func(i int) []any { l := d.Locations[i]; return []any{l.ID, l.Name} }},
		{"ProductCategories", `INSERT INTO ProductCategories (ProductCategoryID, Name) VALUES (?, ?)`, len(d.Categories),
			func(i int) []any { c := d.Categories[i]; return []any{c.ID, c.Name} }},
		{"ProductSubcategories", `INSERT INTO ProductSubcategories (ProductSubcategoryID, ProductCategoryID, Name) VALUES (?, ?, ?)`, len(d.Subcategories),
			func(i int) []any { s := d.Subcategories[i]; return []any{s.ID, s.CategoryID, s.Name} }},
		{"Products", `INSERT INTO Products (ProductID, Name, ProductNumber, ProductSubcategoryID) VALUES (?, ?, ?, ?)`, len(d.Products),
			func(i int) []any {
				p := d.Products[i]
				return []any{p.ID, p.Name, p.Number, nullableID(p.SubcategoryID)}
			}},
		{"WorkOrders", `INSERT INTO WorkOrders (WorkOrderID, ProductID, OrderQty, StartDate, EndDate, DueDate, ScrapReasonID) VALUES (?, ?, ?, ?, ?, ?, ?)`, len(d.WorkOrders),
			func(i int) []any {
				w := d.WorkOrders[i]
				var scrap any
				if w.ScrapReasonID != nil {
					scrap = *w.ScrapReasonID
				}
				return []any{w.ID, w.ProductID, w.OrderQty, nullableTime(w.StartDate), nullableTime(w.EndDate), w.DueDate.Format(TimeLayout), scrap}
			}},
		{"WorkOrderRoutings", `INSERT INTO WorkOrderRoutings (WorkOrderID, OperationSequence, LocationID, ActualCost) VALUES (?, ?, ?, ?)`, len(d.Routings),
			func(i int) []any {
				r := d.Routings[i]
				var cost any
				if r.ActualCost != nil {
					cost = *r.ActualCost
				}
				return []any{r.WorkOrderID, r.Sequence, r.LocationID, cost}
			}},
		{"Addresses", `INSERT INTO Addresses (AddressID, City) VALUES (?, ?)`, len(d.Addresses),
			func(i int) []any { a := d.Addresses[i]; return []any{a.ID, a.City} }},
		{"SalesOrderHeaders", `INSERT INTO SalesOrderHeaders (SalesOrderID, OrderDate, ShipToAddressID, TotalDue) VALUES (?, ?, ?, ?)`, len(d.SalesOrders),
			func(i int) []any {
				o := d.SalesOrders[i]
				return []any{o.ID, o.OrderDate.Format(TimeLayout), o.ShipToAddressID, o.TotalDue}
			}},
		{"SalesOrderDetails", `INSERT INTO SalesOrderDetails (SalesOrderDetailID, SalesOrderID, ProductID, OrderQty, LineTotal) VALUES (?, ?, ?, ?, ?)`, len(d.Lines),
			func(i int) []any {
				l := d.Lines[i]
				return []any{l.ID, l.SalesOrderID, l.ProductID, l.OrderQty, l.LineTotal}
			}},
	}

	for _, step := range steps {
		if step.n == 0 {
			continue
		}
		stmt, err := tx.PrepareContext(ctx, step.stmt)
		if err != nil {
			return fmt.Errorf("failed to prepare insert into %s: %w", step.table, err)
		}
		for i := 0; i < step.n; i++ {
			if _, err := stmt.ExecContext(ctx, step.args(i)...); err != nil {
				stmt.Close()
				return fmt.Errorf("failed to insert row %d into %s: %w", i, step.table, err)
			}
		}
		stmt.Close()
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load: %w", err)
	}
	return nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(TimeLayout)
}

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
