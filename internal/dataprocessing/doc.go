// Package dataprocessing provides the ingestion and indicator calculation
// core of the administrative reporting pipeline. It consolidates a directory
// of heterogeneous tabular files into a single dataset and derives the fixed
// set of business indicators from it.
//
// # Architecture
//
// The package is organized into two main components:
//
// 1. Loader: Discovers and parses CSV, XLSX and XLS files, stamps each row
// with its source file and concatenates everything into one dataframe.
// 2. Engine: Computes the business indicators from the consolidated
// dataframe using the recognized column vocabulary.
//
// # Usage
//
// Basic loading example:
//
//	loader := dataprocessing.NewLoader(logger, discovery, dataprocessing.LoaderOptions{})
//	df, err := loader.Load(ctx, "relatorios_brutos")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Computing indicators:
//
//	engine := dataprocessing.NewEngine(logger)
//	metrics, err := engine.Compute(ctx, df)
//
// # Data Flow
//
// The typical data flow through this package:
//
//	Input Directory → Loader → Consolidated DataFrame → Engine → Metrics
//
// # Error Handling
//
// Failures of individual files are logged and skipped so one bad report
// never aborts the batch. Two sentinel errors mark fatal conditions:
// ErrNoInputFiles when the directory holds nothing recognizable and
// ErrNoLoadableData when every recognized file failed to parse.
package dataprocessing
