package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	"relatorioadmin/internal/config"
	apperrors "relatorioadmin/internal/errors"
	"relatorioadmin/pkg/contracts/domain"
)

// ExcelExporter writes the consolidated table and the indicator summary
// into a two-sheet workbook.
type ExcelExporter struct {
	logger *slog.Logger
}

// NewExcelExporter creates a new Excel exporter.
func NewExcelExporter(logger *slog.Logger) *ExcelExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelExporter{logger: logger}
}

// Export writes relatorio_administrativo.xlsx into outputDir with the full
// consolidated table on the first sheet and one Métrica/Valor row per
// indicator on the second, in computation order.
func (e *ExcelExporter) Export(ctx context.Context, df dataframe.DataFrame, metrics domain.Metrics, outputDir string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.WarnContext(ctx, "failed to close workbook",
				slog.String("error", err.Error()))
		}
	}()

	if err := writeConsolidatedSheet(f, df); err != nil {
		return apperrors.NewExportError("failed to write consolidated sheet", err)
	}
	if err := writeIndicatorsSheet(f, metrics); err != nil {
		return apperrors.NewExportError("failed to write indicators sheet", err)
	}

	path := filepath.Join(outputDir, config.ExcelReportFileName)
	if err := f.SaveAs(path); err != nil {
		return apperrors.NewExportError("failed to save workbook", err).
			WithContext("path", path)
	}

	e.logger.InfoContext(ctx, "excel report written",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("indicators", len(metrics)))

	return nil
}

// writeConsolidatedSheet renames the default sheet and fills it with the
// header row followed by every table row.
func writeConsolidatedSheet(f *excelize.File, df dataframe.DataFrame) error {
	if err := f.SetSheetName("Sheet1", config.ConsolidatedSheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	names := df.Names()
	header := make([]interface{}, len(names))
	for i, name := range names {
		header[i] = name
	}
	if err := f.SetSheetRow(config.ConsolidatedSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	columns := make([]series.Series, len(names))
	for i, name := range names {
		columns[i] = df.Col(name)
	}

	for row := 0; row < df.Nrow(); row++ {
		cells := make([]interface{}, len(columns))
		for i, col := range columns {
			cells[i] = cellValue(col, row)
		}

		anchor, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetSheetRow(config.ConsolidatedSheetName, anchor, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row+1, err)
		}
	}

	return nil
}

// cellValue extracts one cell, keeping numeric columns numeric. Missing
// values become empty cells rather than NaN text.
func cellValue(col series.Series, row int) interface{} {
	elem := col.Elem(row)
	if elem.IsNA() {
		return nil
	}
	switch col.Type() {
	case series.Int, series.Float:
		return elem.Float()
	default:
		return elem.String()
	}
}

// writeIndicatorsSheet adds the Indicadores sheet listing every computed
// indicator in order.
func writeIndicatorsSheet(f *excelize.File, metrics domain.Metrics) error {
	if _, err := f.NewSheet(config.IndicatorsSheetName); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	header := []interface{}{config.IndicatorNameHeader, config.IndicatorValueHeader}
	if err := f.SetSheetRow(config.IndicatorsSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, metric := range metrics {
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		cells := []interface{}{metric.Name, formatMetricValue(metric.Value)}
		if err := f.SetSheetRow(config.IndicatorsSheetName, anchor, &cells); err != nil {
			return fmt.Errorf("failed to write indicator %s: %w", metric.Name, err)
		}
	}

	return nil
}
