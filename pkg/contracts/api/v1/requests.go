// Package api contains API contract definitions for the report service.
// Version v1 represents the current stable API version.
package api

import (
	"awreports/pkg/contracts/domain"
)

// ReportQuery holds the query parameters accepted by every report endpoint.
type ReportQuery struct {
	Year   *int   `json:"year,omitempty" query:"year" validate:"omitempty,min=1,max=9999"`
	Format string `json:"format,omitempty" query:"format" validate:"omitempty,oneof=json csv xlsx"`
}

// YearFilter returns the year restriction carried by the query.
func (q ReportQuery) YearFilter() domain.Year {
	return domain.YearFromPtr(q.Year)
}

// OutputFormat returns the requested encoding, defaulting to JSON.
func (q ReportQuery) OutputFormat() domain.ReportFormat {
	if q.Format == "" {
		return domain.ReportFormatJSON
	}
	return domain.ReportFormat(q.Format)
}
