package app

import (
	"context"
	"fmt"
	"log/slog"

	"relatorioadmin/internal/config"
	"relatorioadmin/internal/dataprocessing"
	"relatorioadmin/internal/exporter"
	"relatorioadmin/internal/files"
	"relatorioadmin/internal/validation"
)

// App holds the wired pipeline components.
type App struct {
	config        *config.Config
	logger        *slog.Logger
	validator     *validation.FileValidator
	loader        *dataprocessing.Loader
	engine        *dataprocessing.Engine
	chartExporter *exporter.ChartExporter
	excelExporter *exporter.ExcelExporter
	pdfExporter   *exporter.PDFExporter
}

// New creates a new application instance with dependency injection.
func New(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}

	return &App{
		config:    cfg,
		logger:    logger,
		validator: validation.NewFileValidator(logger),
		loader: dataprocessing.NewLoader(logger, files.NewDiscovery(""), dataprocessing.LoaderOptions{
			Encoding:  cfg.Input.Encoding,
			Delimiter: cfg.Input.DelimiterRune(),
		}),
		engine:        dataprocessing.NewEngine(logger),
		chartExporter: exporter.NewChartExporter(logger),
		excelExporter: exporter.NewExcelExporter(logger),
		pdfExporter:   exporter.NewPDFExporter(logger),
	}
}

// Run executes the report pipeline over inputDir, writing every artifact
// into outputDir. An empty outputDir falls back to the configured default.
// The first failing stage aborts the remainder and its error is returned.
func (a *App) Run(ctx context.Context, inputDir, outputDir string) error {
	if outputDir == "" {
		outputDir = a.config.Report.OutputDir
	}

	a.logger.InfoContext(ctx, "report run starting",
		slog.String("input_dir", inputDir),
		slog.String("output_dir", outputDir))

	if err := a.validator.ValidateInputDirectory(inputDir); err != nil {
		return err
	}
	if err := a.validator.ValidateOutputDirectory(outputDir); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "consolidating input files")
	df, err := a.loader.Load(ctx, inputDir)
	if err != nil {
		return fmt.Errorf("load input files: %w", err)
	}

	a.logger.InfoContext(ctx, "computing indicators")
	metrics, err := a.engine.Compute(ctx, df)
	if err != nil {
		return fmt.Errorf("compute indicators: %w", err)
	}

	a.logger.InfoContext(ctx, "rendering charts")
	if err := a.chartExporter.Export(ctx, df, outputDir); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	a.logger.InfoContext(ctx, "writing spreadsheet report")
	if err := a.excelExporter.Export(ctx, df, metrics, outputDir); err != nil {
		return fmt.Errorf("write spreadsheet report: %w", err)
	}

	a.logger.InfoContext(ctx, "writing pdf report")
	if err := a.pdfExporter.Export(ctx, metrics, outputDir); err != nil {
		return fmt.Errorf("write pdf report: %w", err)
	}

	a.logger.InfoContext(ctx, "report run finished",
		slog.Int("rows", df.Nrow()),
		slog.Int("indicators", len(metrics)),
		slog.String("output_dir", outputDir))

	return nil
}
