package exporter

import (
	"fmt"
	"io"
	"strconv"

	"awreports/pkg/contracts/domain"
)

// Content types of the export formats
const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ContentType returns the media type written for format
func ContentType(format domain.ReportFormat) string {
	switch format {
	case domain.ReportFormatCSV:
		return ContentTypeCSV
	case domain.ReportFormatExcel:
		return ContentTypeXLSX
	default:
		return "application/json"
	}
}

// FileName returns the attachment name: the report name, the year when one
// is set, and the format extension, e.g. "total-sales-year-2013.csv".
func FileName(report domain.ReportName, year domain.Year, format domain.ReportFormat) string {
	name := string(report)
	if year.IsSet() {
		name += "-" + strconv.Itoa(year.Value())
	}
	return name + "." + string(format)
}

// ContentDisposition returns the attachment header value for FileName
func ContentDisposition(report domain.ReportName, year domain.Year, format domain.ReportFormat) string {
	return fmt.Sprintf("attachment; filename=%q", FileName(report, year, format))
}

// Write renders t in format. JSON is not a table format and is rejected.
func Write(w io.Writer, format domain.ReportFormat, t domain.Table) error {
	switch format {
	case domain.ReportFormatCSV:
		return WriteTableCSV(w, t)
	case domain.ReportFormatExcel:
		return WriteTableXLSX(w, t)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
