package container

import (
	"testing"

	"claimstats/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WiresReportService(t *testing.T) {
	cfg := &config.Config{
		Paths: config.PathConfig{
			DataDir:     "data",
			FiguresDir:  "figures",
			OutputDir:   "outputs",
			ClaimsFile:  "claims.csv",
			RevenueFile: "revenue_monthly.csv",
		},
		Render: config.RenderConfig{DPI: 160},
	}

	c, err := New(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, c.ReportService)
	assert.NotNil(t, c.Logger)
	assert.Equal(t, 160, c.Renderer.DPI())
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestFigureLinkDir(t *testing.T) {
	assert.Equal(t, "../figures", figureLinkDir(config.PathConfig{OutputDir: "run/outputs", FiguresDir: "run/figures"}))
	assert.Equal(t, ".", figureLinkDir(config.PathConfig{OutputDir: "out", FiguresDir: "out"}))
	assert.Equal(t, "figs", figureLinkDir(config.PathConfig{OutputDir: "out", FiguresDir: "out/figs"}))
}
