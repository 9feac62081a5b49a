// Package exporter renders report tables as downloadable files.
//
// Every report value implements domain.Tabular. Its Table is written either
// as RFC 4180 CSV with a UTF-8 BOM (so Excel opens it as UTF-8) or as a
// single-sheet XLSX workbook built with excelize:
//
//	t := report.Table()
//	w.Header().Set("Content-Type", exporter.ContentType(domain.ReportFormatCSV))
//	w.Header().Set("Content-Disposition",
//		exporter.ContentDisposition(domain.ReportTotalSalesYear, year, domain.ReportFormatCSV))
//	err := exporter.Write(w, domain.ReportFormatCSV, t)
package exporter
