package config

import (
	"os"
	"path/filepath"
	"strconv"

	"claimstats/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths  PathConfig
	Render RenderConfig
	Log    LogConfig
}

// PathConfig holds file system locations for inputs and outputs
type PathConfig struct {
	Root        string
	DataDir     string
	FiguresDir  string
	OutputDir   string
	ClaimsFile  string // relative to DataDir unless absolute
	RevenueFile string // relative to DataDir unless absolute
}

// RenderConfig holds figure rendering settings
type RenderConfig struct {
	DPI int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// ClaimsPath returns the resolved claims input path
func (p PathConfig) ClaimsPath() string {
	return resolve(p.DataDir, p.ClaimsFile)
}

// RevenuePath returns the resolved revenue input path
func (p PathConfig) RevenuePath() string {
	return resolve(p.DataDir, p.RevenueFile)
}

func resolve(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// Load reads configuration from environment variables and validates it.
// With no variables set the defaults reproduce the fixed report layout:
// ./data in, ./figures and ./outputs out.
func Load() (*Config, error) {
	config := &Config{
		Paths:  loadPathConfig(),
		Render: loadRenderConfig(),
		Log:    LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadPathConfig() PathConfig {
	root := getEnvOrDefault("REPORT_ROOT", ".")
	return PathConfig{
		Root:        root,
		DataDir:     getEnvOrDefault("DATA_DIR", filepath.Join(root, "data")),
		FiguresDir:  getEnvOrDefault("FIGURES_DIR", filepath.Join(root, "figures")),
		OutputDir:   getEnvOrDefault("OUTPUT_DIR", filepath.Join(root, "outputs")),
		ClaimsFile:  getEnvOrDefault("CLAIMS_FILE", "claims.csv"),
		RevenueFile: getEnvOrDefault("REVENUE_FILE", "revenue_monthly.csv"),
	}
}

func loadRenderConfig() RenderConfig {
	return RenderConfig{
		DPI: getEnvIntOrDefault("FIGURE_DPI", 160),
	}
}

func validateConfig(config *Config) error {
	if config.Paths.ClaimsFile == "" {
		return errors.ConfigInvalid("claims file is required")
	}
	if config.Paths.RevenueFile == "" {
		return errors.ConfigInvalid("revenue file is required")
	}
	if config.Paths.FiguresDir == "" || config.Paths.OutputDir == "" {
		return errors.ConfigInvalid("output directories are required")
	}
	if config.Render.DPI <= 0 {
		return errors.ConfigInvalid("FIGURE_DPI must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
