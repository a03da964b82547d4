package report

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	domainReport "claimstats/domain/report"
	"claimstats/domain/run"
	domainStats "claimstats/domain/stats"
	"claimstats/internal"
	apperrors "claimstats/internal/errors"
	"claimstats/internal/testkit"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleTable = domainReport.Table{
	Header: []string{"Statistic", "Revenue"},
	Rows:   [][]string{{"count", "24.00"}, {"mean", "251234.50"}},
}

func TestFileSystemWriter_WritesIntoSeparateDirs(t *testing.T) {
	root := t.TempDir()
	figures := filepath.Join(root, "figures")
	outputs := filepath.Join(root, "nested", "outputs")
	w := NewFileSystemWriter(figures, outputs, internal.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, w.WriteTable(ctx, "revenue_descriptive_stats.csv", sampleTable))
	require.NoError(t, w.WriteText(ctx, "probability_demo.txt", "P(ClaimAmount > 2500) ≈ 0.4000\n"))
	require.NoError(t, w.WriteFigure(ctx, "hist_revenue.png", []byte("png")))
	require.NoError(t, w.WriteDocument(ctx, "summary.md", []byte("# x\n")))

	csv, err := os.ReadFile(filepath.Join(outputs, "revenue_descriptive_stats.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Statistic,Revenue\ncount,24.00\nmean,251234.50\n", string(csv))

	_, err = os.Stat(filepath.Join(figures, "hist_revenue.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outputs, "hist_revenue.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileSystemWriter_Overwrites(t *testing.T) {
	dir := t.TempDir()
	w := NewFileSystemWriter(dir, dir, internal.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, w.WriteText(ctx, "a.txt", "first and longer\n"))
	require.NoError(t, w.WriteText(ctx, "a.txt", "second\n"))

	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestFileSystemWriter_Errors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	w := NewFileSystemWriter(blocker, filepath.Join(blocker, "outputs"), internal.NewNopLogger())
	err := w.WriteText(context.Background(), "a.txt", "x")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeOutputError, apperrors.GetCode(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewFileSystemWriter(dir, dir, internal.NewNopLogger()).WriteText(ctx, "a.txt", "x"), context.Canceled)
}

func TestManifestRecorder(t *testing.T) {
	mem := testkit.NewMemoryWriter()
	rec := NewManifestRecorder(mem)
	ctx := context.Background()

	require.NoError(t, rec.WriteTable(ctx, "revenue_descriptive_stats.csv", sampleTable))
	require.NoError(t, rec.WriteText(ctx, "probability_demo.txt", "p\n"))
	require.NoError(t, rec.WriteFigure(ctx, "hist_revenue.png", []byte("png")))

	mem.FailOn = "summary.md"
	require.Error(t, rec.WriteDocument(ctx, "summary.md", []byte("x")))

	manifest, err := rec.WriteManifest(ctx)
	require.NoError(t, err)
	require.Len(t, manifest.Artifacts, 3, "failed writes are not recorded")

	entry, ok := manifest.Lookup("revenue_descriptive_stats.csv")
	require.True(t, ok)
	csv, _ := sampleTable.CSV()
	assert.Equal(t, len(csv), entry.Bytes)
	assert.Equal(t, run.ArtifactTable, entry.Kind)

	var decoded run.RunManifest
	require.NoError(t, json.Unmarshal(mem.Documents[run.ManifestName], &decoded))
	assert.Equal(t, manifest.Fingerprint, decoded.Fingerprint)
	_, listed := manifest.Lookup(run.ManifestName)
	assert.False(t, listed)
}

func sampleSummary() Summary {
	return Summary{
		Claims: domainStats.DescriptiveStats{
			Summary: domainStats.Summary{Field: "ClaimAmount", Count: 5, Mean: 1820, Median: 900, StdDev: 2043.77},
			IQR:     2100, Skewness: 1.2, Kurtosis: math.NaN(),
		},
		Revenue:       domainStats.Summary{Field: "Revenue", Count: 12, Mean: 1000},
		AgeClaimCorr:  0.5,
		Welch:         domainStats.WelchResult{T: -1.8974, PValue: 0.1077},
		Anova:         domainStats.AnovaResult{F: math.NaN(), PValue: math.NaN(), Groups: []string{"A"}},
		ChiSquare:     domainStats.ChiSquareResult{Chi2: 0.4464, PValue: 0.504, DOF: 1},
		ExpectedValue: domainStats.ExpectedValueTable{Total: decimal.NewFromInt(2460)},
		Probability:   domainStats.Probability{Field: "ClaimAmount", Threshold: 2500, Value: 0.4},
		Figures:       []string{"hist_claim_amounts.png"},
		Tables:        []string{"correlation_matrix.csv"},
		FigureLinkDir: "../figures",
	}
}

func TestSummary_Markdown(t *testing.T) {
	md := string(sampleSummary().Markdown())

	assert.True(t, strings.HasPrefix(md, "# Claims Statistical Report\n"))
	assert.Contains(t, md, "- Expected claim cost: 2460.00\n")
	assert.Contains(t, md, "- P(ClaimAmount > 2500): 0.4000\n")
	assert.Contains(t, md, "| One-way ANOVA (1 departments) | F = NaN | NaN |")
	assert.Contains(t, md, "[hist_claim_amounts.png](../figures/hist_claim_amounts.png)")
	assert.Contains(t, md, "kurtosis: NaN")
	assert.Equal(t, md, string(sampleSummary().Markdown()))
}

func TestRenderHTML(t *testing.T) {
	page := string(RenderHTML(sampleSummary().Markdown()))

	assert.Contains(t, page, "<title>Claims Statistical Report</title>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, `href="../figures/hist_claim_amounts.png"`)
	assert.Contains(t, page, "<h2")
}
