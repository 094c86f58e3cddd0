package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"relatorioadmin/internal/app"
	"relatorioadmin/internal/config"
	"relatorioadmin/internal/infrastructure"
	"relatorioadmin/pkg/contracts"
)

func main() {
	// .env is optional; deployed environments set variables directly
	_ = godotenv.Load()

	var inputDir, outputDir string
	var showVersion bool
	flag.StringVar(&inputDir, "input", "", "directory holding the CSV and spreadsheet files to consolidate")
	flag.StringVar(&inputDir, "i", "", "shorthand for -input")
	flag.StringVar(&outputDir, "output", "", "directory for the generated artifacts (defaults to "+config.DefaultOutputDirName+")")
	flag.StringVar(&outputDir, "o", "", "shorthand for -output")
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	if inputDir == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -input <dir> [-output <dir>]\n", config.AppName)
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())

	logger.InfoContext(ctx, "starting report generation",
		slog.String("app", config.AppName),
		slog.String("version", contracts.Version),
		slog.String("input_dir", inputDir),
		slog.String("output_dir", outputDir))

	application := app.New(cfg, logger)
	if err := application.Run(ctx, inputDir, outputDir); err != nil {
		logger.ErrorContext(ctx, "report generation failed",
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "relatorio: %v\n", err)
		infrastructure.CloseLogFile()
		os.Exit(1)
	}

	logger.InfoContext(ctx, "report generation completed")
}
