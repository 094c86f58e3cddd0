// Package app wires the report pipeline together and runs it end to end.
// It handles the orchestration of all major components from input
// validation through artifact generation.
//
// # Architecture
//
// The app package follows a dependency injection pattern where all
// collaborators are wired together at construction. This ensures loose
// coupling and testability.
//
// # Pipeline
//
// A run executes the stages in a fixed sequence:
//
//	1. Validate the input directory and ensure the output directory
//	2. Consolidate every recognized file into one table
//	3. Compute the business indicators from the table
//	4. Render the monthly receita and despesa charts
//	5. Write the spreadsheet report
//	6. Write the PDF summary
//
// The first failing stage aborts the remainder; per-file parse problems
// inside stage 2 are warnings, not failures.
//
// # Usage
//
// The main entry point is typically:
//
//	application := app.New(cfg, logger)
//	if err := application.Run(ctx, inputDir, outputDir); err != nil {
//	    // print and exit non-zero
//	}
//
// # Error Handling
//
// All pipeline errors are returned to the caller for proper handling.
// The app does not call os.Exit() directly, allowing the main function
// to control the exit process.
package app
