package excel

import (
	"claimstats/internal/config"
)

// SourceConfig locates the two input tables
type SourceConfig struct {
	ClaimsPath  string `json:"claims_path"`
	RevenuePath string `json:"revenue_path"`
	Sheet       string `json:"sheet"` // preferred worksheet for .xlsx inputs
}

// DefaultSheet is tried first when reading a workbook
const DefaultSheet = "Sheet1"

// SourceConfigFrom resolves input locations from the application config
func SourceConfigFrom(cfg *config.Config) SourceConfig {
	return SourceConfig{
		ClaimsPath:  cfg.Paths.ClaimsPath(),
		RevenuePath: cfg.Paths.RevenuePath(),
		Sheet:       DefaultSheet,
	}
}
