// Package exporter writes the report artifacts for a consolidated table
// and its computed indicators.
//
// This package contains three main components:
//
// ChartExporter: Renders interactive HTML charts of receita and despesa
// bucketed by month, driven by the table's date column.
//
// ExcelExporter: Writes a two-sheet workbook holding the full consolidated
// table and the indicator summary.
//
// PDFExporter: Draws the indicator summary on a single A4 page.
//
// Example usage:
//
//	chartExp := exporter.NewChartExporter(logger)
//	err := chartExp.Export(ctx, table, "saida_relatorio")
//
//	excelExp := exporter.NewExcelExporter(logger)
//	err = excelExp.Export(ctx, table, metrics, "saida_relatorio")
//
//	pdfExp := exporter.NewPDFExporter(logger)
//	err = pdfExp.Export(ctx, metrics, "saida_relatorio")
package exporter
