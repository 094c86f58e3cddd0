package exporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"relatorioadmin/internal/config"
	"relatorioadmin/pkg/contracts/domain"
)

// renderable is the piece of the go-echarts chart types the exporter needs.
type renderable interface {
	Render(w io.Writer) error
}

// ChartExporter renders the monthly receita and despesa charts as
// self-contained HTML files.
type ChartExporter struct {
	logger *slog.Logger
}

// NewChartExporter creates a new chart exporter.
func NewChartExporter(logger *slog.Logger) *ChartExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartExporter{logger: logger}
}

// Export writes a line chart of receita by month and a bar chart of despesa
// by month into outputDir. Each chart is produced only when its column
// exists. A table without a date column has nothing to chart over time, so
// no artifacts are written and no error is returned.
func (c *ChartExporter) Export(ctx context.Context, df dataframe.DataFrame, outputDir string) error {
	idx := domain.NewColumnIndex(df.Names())

	dateName, ok := idx.Resolve(domain.ColumnData)
	if !ok {
		c.logger.InfoContext(ctx, "no date column found, skipping chart generation")
		return nil
	}

	// One YYYY-MM label per row; rows whose date does not parse stay out
	// of the buckets but remain in every other artifact.
	labels := monthLabels(df.Col(dateName))

	if name, ok := idx.Resolve(domain.ColumnReceita); ok {
		months, totals := sumByMonth(labels, df.Col(name))
		path := filepath.Join(outputDir, config.ChartReceitaFileName)
		if err := renderLineChart(config.ChartReceitaTitle, "Receita", months, totals, path); err != nil {
			return fmt.Errorf("failed to render receita chart: %w", err)
		}
		c.logger.InfoContext(ctx, "chart written",
			slog.String("path", path),
			slog.Int("months", len(months)))
	}

	if name, ok := idx.Resolve(domain.ColumnDespesa); ok {
		months, totals := sumByMonth(labels, df.Col(name))
		path := filepath.Join(outputDir, config.ChartDespesaFileName)
		if err := renderBarChart(config.ChartDespesaTitle, "Despesa", months, totals, path); err != nil {
			return fmt.Errorf("failed to render despesa chart: %w", err)
		}
		c.logger.InfoContext(ctx, "chart written",
			slog.String("path", path),
			slog.Int("months", len(months)))
	}

	return nil
}

// monthLabels derives a YYYY-MM label for every row of the date column.
// Cells that do not parse with any accepted layout get an empty label.
func monthLabels(col series.Series) []string {
	labels := make([]string, col.Len())
	for i := 0; i < col.Len(); i++ {
		elem := col.Elem(i)
		if elem.IsNA() {
			continue
		}
		raw := strings.TrimSpace(elem.String())
		if raw == "" {
			continue
		}
		for _, layout := range config.DateLayouts {
			if ts, err := time.Parse(layout, raw); err == nil {
				labels[i] = ts.Format("2006-01")
				break
			}
		}
	}
	return labels
}

// sumByMonth totals the column per month label and returns the labels in
// ascending order. Missing or non-numeric cells contribute zero, so a month
// whose rows carry no numbers still shows up with a zero total.
func sumByMonth(labels []string, col series.Series) ([]string, map[string]float64) {
	values := col.Float()
	totals := make(map[string]float64)
	for i, label := range labels {
		if label == "" {
			continue
		}
		if _, ok := totals[label]; !ok {
			totals[label] = 0
		}
		if i < len(values) && !math.IsNaN(values[i]) {
			totals[label] += values[i]
		}
	}

	months := make([]string, 0, len(totals))
	for label := range totals {
		months = append(months, label)
	}
	sort.Strings(months)

	return months, totals
}

func renderLineChart(title, seriesName string, months []string, totals map[string]float64, path string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.LineData, 0, len(months))
	for _, month := range months {
		data = append(data, opts.LineData{Value: totals[month]})
	}
	line.SetXAxis(months).AddSeries(seriesName, data)

	return renderChart(line, path)
}

func renderBarChart(title, seriesName string, months []string, totals map[string]float64, path string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.BarData, 0, len(months))
	for _, month := range months {
		data = append(data, opts.BarData{Value: totals[month]})
	}
	bar.SetXAxis(months).AddSeries(seriesName, data)

	return renderChart(bar, path)
}

// renderChart writes the chart HTML, guaranteeing the file handle is closed
// even when rendering fails partway.
func renderChart(chart renderable, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer file.Close()

	return chart.Render(file)
}
