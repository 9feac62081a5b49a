// Package services implements the report layer between the HTTP handlers and
// the SQL read model.
//
// Each report runs through the same pipeline: start a stopwatch and a
// report.<name> span, run the aggregate queries, post-process (percentages,
// labels), stop the stopwatch and return the report value with its
// executionTimeMs. Failures are wrapped with the report name and returned
// without any partial data.
//
// Services depend on small store interfaces rather than on the repository
// types, so they are tested with testify mocks:
//
//	store := new(mockSalesStore)
//	store.On("TotalSales", mock.Anything, domain.YearOf(2013)).Return(total, nil)
//	svc := NewSalesReportService(store, nil, logger)
//
// HealthService backs the liveness, readiness and version endpoints and pings
// the database through the Pinger interface.
package services
