package storage

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"
)

// Seed loads DemoDataset into an empty database. It returns the number of
// rows inserted, or 0 when the database already holds products.
func Seed(ctx context.Context, db *sql.DB) (int, error) {
	var existing int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Products`).Scan(&existing); err != nil {
		return 0, fmt.Errorf("failed to check existing data: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	ds := DemoDataset()
	if err := Load(ctx, db, ds); err != nil {
		return 0, err
	}
	return ds.Rows(), nil
}

var demoCities = []string{
	"Seattle", "London", "Paris", "Toronto", "Melbourne", "Berlin", "Bothell",
	"Redmond", "Portland", "Sydney", "Everett", "Renton", "Burien", "Bellevue",
}

type demoProduct struct {
	name        string
	number      string
	subcategory int64
	listPrice   float64
}

var demoProducts = []demoProduct{
	{"Mountain-200 Black, 38", "BK-M68B-38", 1, 2294.99},
	{"Mountain-500 Silver, 42", "BK-M18S-42", 1, 564.99},
	{"Road-150 Red, 62", "BK-R93R-62", 2, 3578.27},
	{"Road-650 Black, 52", "BK-R50B-52", 2, 782.99},
	{"Touring-1000 Blue, 46", "BK-T79U-46", 3, 2384.07},
	{"HL Mountain Handlebars", "HB-M918", 4, 120.27},
	{"LL Road Frame - Red, 48", "FR-R38R-48", 5, 337.22},
	{"HL Touring Frame - Yellow, 50", "FR-T98Y-50", 5, 1003.91},
	{"Long-Sleeve Logo Jersey, M", "LJ-0192-M", 6, 49.99},
	{"Classic Vest, S", "VE-C304-S", 6, 63.50},
	{"Sport-100 Helmet, Red", "HL-U509-R", 7, 34.99},
	{"Water Bottle - 30 oz.", "WB-H098", 8, 4.99},
	{"Patch Kit/8 Patches", "PK-7098", 8, 2.29},
	{"Chain", "CH-0234", 0, 20.24},
}

// DemoDataset returns a deterministic dataset spanning 2011 to 2014.
func DemoDataset() *Dataset {
	ds := &Dataset{
		Locations: []Location{
			{10, "Frame Forming"},
			{20, "Frame Welding"},
			{30, "Debur and Polish"},
			{40, "Paint"},
			{45, "Specialized Paint"},
			{50, "Subassembly"},
			{60, "Final Assembly"},
		},
		Categories: []Category{
			{1, "Bikes"},
			{2, "Components"},
			{3, "Clothing"},
			{4, "Accessories"},
		},
		Subcategories: []Subcategory{
			{1, 1, "Mountain Bikes"},
			{2, 1, "Road Bikes"},
			{3, 1, "Touring Bikes"},
			{4, 2, "Handlebars"},
			{5, 2, "Frames"},
			{6, 3, "Jerseys"},
			{7, 4, "Helmets"},
			{8, 4, "Bottles and Cages"},
		},
	}

	for i, p := range demoProducts {
		ds.Products = append(ds.Products, Product{
			ID:            int64(700 + i),
			Name:          p.name,
			Number:        p.number,
			SubcategoryID: p.subcategory,
		})
	}

	addWorkOrders(ds)
	addSalesOrders(ds)
	return ds
}

func addWorkOrders(ds *Dataset) {
	locations := ds.Locations
	for i := 0; i < 240; i++ {
		product := ds.Products[i%len(ds.Products)]
		start := time.Date(2011+i%4, time.Month(1+(i*7)%12), 1+(i*3)%28, 0, 0, 0, 0, time.UTC)
		due := start.AddDate(0, 0, 10+i%3)
		qty := int64(5 + (i*13)%40)

		wo := WorkOrder{
			ID:        int64(i + 1),
			ProductID: product.ID,
			OrderQty:  qty,
			StartDate: &start,
			DueDate:   due,
		}
		if i%37 != 5 {
			end := start.AddDate(0, 0, 3+i%9)
			wo.EndDate = &end
		}
		if i%11 == 0 {
			reason := int64(1 + i%16)
			wo.ScrapReasonID = &reason
		}
		ds.WorkOrders = append(ds.WorkOrders, wo)

		steps := 1 + i%3
		for s := 0; s < steps; s++ {
			loc := locations[(i+s*2)%len(locations)]
			cost := round2(float64(qty) * (1.5 + float64(s)) * (1 + float64(i%5)/10))
			ds.Routings = append(ds.Routings, Routing{
				WorkOrderID: wo.ID,
				Sequence:    s + 1,
				LocationID:  loc.ID,
				ActualCost:  &cost,
			})
		}
	}
}

func addSalesOrders(ds *Dataset) {
	for i, city := range demoCities {
		ds.Addresses = append(ds.Addresses, Address{ID: int64(i + 1), City: city})
	}

	lineID := int64(1)
	for i := 0; i < 400; i++ {
		order := SalesOrder{
			ID:              int64(43659 + i),
			OrderDate:       time.Date(2011+i%4, time.Month(1+(i*5)%12), 1+(i*7)%28, 0, 0, 0, 0, time.UTC),
			ShipToAddressID: ds.Addresses[(i*i+i)%len(ds.Addresses)].ID,
		}

		var subtotal float64
		lines := 1 + i%3
		for l := 0; l < lines; l++ {
			idx := (i*3 + l*5) % len(demoProducts)
			qty := int64(1 + (i+l)%4)
			total := round2(demoProducts[idx].listPrice * float64(qty))
			ds.Lines = append(ds.Lines, SalesOrderLine{
				ID:           lineID,
				SalesOrderID: order.ID,
				ProductID:    ds.Products[idx].ID,
				OrderQty:     qty,
				LineTotal:    total,
			})
			subtotal += total
			lineID++
		}
		// tax and freight
		order.TotalDue = round2(subtotal * 1.105)
		ds.SalesOrders = append(ds.SalesOrders, order)
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
