package config

import (
	"path/filepath"
	"testing"

	"claimstats/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"REPORT_ROOT", "DATA_DIR", "FIGURES_DIR", "OUTPUT_DIR", "CLAIMS_FILE", "REVENUE_FILE", "FIGURE_DPI", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(".", "data"), cfg.Paths.DataDir)
	assert.Equal(t, filepath.Join(".", "figures"), cfg.Paths.FiguresDir)
	assert.Equal(t, filepath.Join(".", "outputs"), cfg.Paths.OutputDir)
	assert.Equal(t, filepath.Join("data", "claims.csv"), cfg.Paths.ClaimsPath())
	assert.Equal(t, filepath.Join("data", "revenue_monthly.csv"), cfg.Paths.RevenuePath())
	assert.Equal(t, 160, cfg.Render.DPI)
	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestLoad_RootOverride(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	t.Setenv("REPORT_ROOT", root)
	t.Setenv("REVENUE_FILE", filepath.Join(root, "elsewhere.xlsx"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "data", "claims.csv"), cfg.Paths.ClaimsPath())
	assert.Equal(t, filepath.Join(root, "elsewhere.xlsx"), cfg.Paths.RevenuePath())
	assert.Equal(t, filepath.Join(root, "outputs"), cfg.Paths.OutputDir)
}

func TestLoad_InvalidDPI(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIGURE_DPI", "-3")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoad_UnparsableDPIFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIGURE_DPI", "high")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 160, cfg.Render.DPI)
}
