package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig controls how source files are read
type InputConfig struct {
	// Encoding applies to CSV files only; spreadsheets carry their own.
	Encoding  string `yaml:"encoding" envconfig:"ENCODING" validate:"oneof=utf-8 windows-1252 latin-1"`
	Delimiter string `yaml:"delimiter" envconfig:"DELIMITER" validate:"required,len=1"`
}

// DelimiterRune returns the CSV delimiter as a rune. Validation guarantees
// the configured string holds exactly one.
func (c InputConfig) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}

// ReportConfig controls where and how artifacts are written
type ReportConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required"`
}

// Load loads configuration from defaults, an optional config file and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	cfg := Default()

	// Overlay from config file if one exists
	if configFile := getConfigFilePath(); configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		mergeConfigs(cfg, fileConfig)
	}

	// Environment variables win over everything
	if err := envconfig.Process("RELATORIO", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays non-empty file values onto the current config
func mergeConfigs(cfg, fileConfig *Config) {
	if fileConfig.Input.Encoding != "" {
		cfg.Input.Encoding = fileConfig.Input.Encoding
	}
	if fileConfig.Input.Delimiter != "" {
		cfg.Input.Delimiter = fileConfig.Input.Delimiter
	}
	if fileConfig.Report.OutputDir != "" {
		cfg.Report.OutputDir = fileConfig.Report.OutputDir
	}
	if fileConfig.Logging.Level != "" {
		cfg.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Format != "" {
		cfg.Logging.Format = fileConfig.Logging.Format
	}
	if fileConfig.Logging.Output != "" {
		cfg.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" {
		cfg.Logging.FilePath = fileConfig.Logging.FilePath
	}
}

// validate validates the configuration
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				return fmt.Errorf("invalid value for %s: failed %q check", fieldErr.Namespace(), fieldErr.Tag())
			}
		}
		return err
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use defaults and env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Encoding:  DefaultEncoding,
			Delimiter: DefaultCSVDelimiter,
		},
		Report: ReportConfig{
			OutputDir: DefaultOutputDirName,
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogFile,
		},
	}
}
