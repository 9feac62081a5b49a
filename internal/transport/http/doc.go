// Package http implements the HTTP handlers of the report service.
//
// Handlers are thin: they parse and validate the query string, call a report
// service and encode the result. Every report path is registered at the
// router root:
//
//	GET /production-cost-by-location?year=2013
//	GET /total-sales-year?year=2013&format=csv
//
// A report is returned as JSON unless format is csv or xlsx, in which case it
// is sent as an attachment named after the report and year.
//
// # Error Handling
//
// Failures are written as RFC 7807 problem documents by
// errors.ErrorHandler:
//
//	{
//	    "type": "/errors/validation",
//	    "title": "Bad Request",
//	    "status": 400,
//	    "detail": "Request validation failed",
//	    "instance": "/total-sales-year",
//	    "error_code": "VALIDATION_FAILED",
//	    "details": {"field": "year", "message": "year must be a valid integer"},
//	    "trace_id": "..."
//	}
//
// Invalid query parameters map to 400, failed report queries to 500 and
// expired request deadlines to 504.
package http
