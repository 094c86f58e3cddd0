// Package config provides centralized configuration management for the
// administrative reporting pipeline. It handles loading configuration from
// multiple sources, validation, and provides a type-safe API for accessing
// configuration values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (config.yaml)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern RELATORIO_* for namespacing:
//
//	RELATORIO_LOGGING_LEVEL=debug
//	RELATORIO_LOGGING_FORMAT=json
//	RELATORIO_INPUT_ENCODING=windows-1252
//	RELATORIO_INPUT_DELIMITER=;
//	RELATORIO_REPORT_OUTPUT_DIR=saida_relatorio
//
// # Validation
//
// All configuration is validated at load time with struct tags, ensuring
// values are within their accepted sets before the pipeline starts.
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
