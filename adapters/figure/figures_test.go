package figure

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"

	domainStats "claimstats/domain/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeConfig(t *testing.T, data []byte) image.Config {
	t.Helper()
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")), "png signature")
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg
}

func TestRenderer_FigureSizes(t *testing.T) {
	r := NewRenderer(DefaultDPI)
	bins := []domainStats.HistogramBin{{Min: 0, Max: 400, Count: 3}, {Min: 400, Max: 800, Count: 1}}
	amounts := []float64{100, 500, 900, 2600, 5000}

	hist, err := r.ClaimHistogram(bins)
	require.NoError(t, err)
	cfg := decodeConfig(t, hist)
	assert.Equal(t, 1120, cfg.Width)
	assert.Equal(t, 640, cfg.Height)

	box, err := r.ClaimBox(amounts)
	require.NoError(t, err)
	assert.Equal(t, 960, decodeConfig(t, box).Width)

	byDept, err := r.ClaimBoxByDepartment([]string{"A", "B"}, [][]float64{{100, 500}, {900, 2600, 5000}})
	require.NoError(t, err)
	assert.Equal(t, 1280, decodeConfig(t, byDept).Width)

	scatter, err := r.AgeClaimScatter([]float64{25, 35, math.NaN(), 55, 65}, amounts)
	require.NoError(t, err)
	assert.Equal(t, 960, decodeConfig(t, scatter).Width)

	rev, err := r.RevenueHistogram(bins)
	require.NoError(t, err)
	assert.Equal(t, 1120, decodeConfig(t, rev).Width)
}

func TestRenderer_DPIScalesRaster(t *testing.T) {
	r := NewRenderer(80)
	data, err := r.ClaimBox([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 480, decodeConfig(t, data).Width)

	assert.Equal(t, DefaultDPI, NewRenderer(0).DPI())
}

func TestRenderer_SingleDepartment(t *testing.T) {
	data, err := NewRenderer(DefaultDPI).ClaimBoxByDepartment([]string{"Only"}, [][]float64{{100, 200, 300}})
	require.NoError(t, err)
	decodeConfig(t, data)
}
