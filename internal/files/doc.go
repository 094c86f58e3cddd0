// Package files provides file system discovery utilities for the
// administrative reporting pipeline.
//
// Discovery locates the tabular files (CSV and spreadsheets) inside an
// input directory, skipping subdirectories and Excel lock files. Results
// come back in file-name order so a directory always yields the same
// consolidation order.
//
// Example usage:
//
//	discovery := files.NewDiscovery(".")
//	tabular, err := discovery.FindTabularFiles("relatorios_brutos")
package files
