package exporter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders numbers with grouped thousands for the report documents.
var printer = message.NewPrinter(language.English)

// formatMetricValue formats an indicator value with thousands separators and
// exactly 2 decimal places for consistency.
// This ensures values like 1234567.8 appear as 1,234,567.80 in the reports.
func formatMetricValue(v float64) string {
	return printer.Sprintf("%.2f", v)
}
