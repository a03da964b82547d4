package hypothesis

import (
	"math"
	"sort"

	"claimstats/domain/report"
	domainStats "claimstats/domain/stats"
)

// ChiSquareIndependence tests whether two categorical columns are independent
type ChiSquareIndependence struct {
	distributions *StatisticalDistributions
}

// NewChiSquareIndependence creates a new chi-square independence test
func NewChiSquareIndependence() *ChiSquareIndependence {
	return &ChiSquareIndependence{distributions: NewDistributions()}
}

// Name returns the test name
func (c *ChiSquareIndependence) Name() string {
	return "chi_square_independence"
}

// Description returns a human-readable description
func (c *ChiSquareIndependence) Description() string {
	return "Pearson chi-square test on a contingency table of two categorical columns"
}

// Run cross-tabulates rows against cols and tests independence. Pairs with a
// NaN on either side are dropped. A 2x2 table gets the Yates continuity
// correction; a table with zero degrees of freedom reports chi2=0, p=1.
func (c *ChiSquareIndependence) Run(rowLabel string, rows []float64, colLabel string, cols []float64) domainStats.ChiSquareResult {
	rowKeys, colKeys, observed := crosstab(rows, cols)
	r, k := len(rowKeys), len(colKeys)

	result := domainStats.ChiSquareResult{
		RowLabel: rowLabel,
		ColLabel: colLabel,
		RowKeys:  formatKeys(rowKeys),
		ColKeys:  formatKeys(colKeys),
		Observed: observed,
		Expected: expectedFrequencies(observed, r, k),
	}

	dof := 0
	if r > 0 && k > 0 {
		dof = (r - 1) * (k - 1)
	}
	result.DOF = dof
	if dof == 0 {
		result.Chi2 = 0
		result.PValue = 1
		return result
	}

	result.Yates = dof == 1
	chi2 := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			obs := float64(observed[i][j])
			exp := result.Expected[i][j]
			if result.Yates {
				// move each observed count toward its expectation by at most 0.5
				diff := exp - obs
				obs += math.Copysign(math.Min(0.5, math.Abs(diff)), diff)
			}
			chi2 += (obs - exp) * (obs - exp) / exp
		}
	}

	result.Chi2 = chi2
	result.PValue = c.distributions.ChiSquarePValue(chi2, float64(dof))
	return result
}

func crosstab(rows, cols []float64) ([]float64, []float64, [][]int) {
	n := len(rows)
	if len(cols) < n {
		n = len(cols)
	}

	rowSet := map[float64]struct{}{}
	colSet := map[float64]struct{}{}
	for i := 0; i < n; i++ {
		if math.IsNaN(rows[i]) || math.IsNaN(cols[i]) {
			continue
		}
		rowSet[rows[i]] = struct{}{}
		colSet[cols[i]] = struct{}{}
	}
	rowKeys := sortedKeys(rowSet)
	colKeys := sortedKeys(colSet)

	rowIndex := indexOf(rowKeys)
	colIndex := indexOf(colKeys)
	observed := make([][]int, len(rowKeys))
	for i := range observed {
		observed[i] = make([]int, len(colKeys))
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(rows[i]) || math.IsNaN(cols[i]) {
			continue
		}
		observed[rowIndex[rows[i]]][colIndex[cols[i]]]++
	}
	return rowKeys, colKeys, observed
}

// expected[i][j] = rowTotal[i] * colTotal[j] / grandTotal
func expectedFrequencies(observed [][]int, r, k int) [][]float64 {
	rowTotals := make([]float64, r)
	colTotals := make([]float64, k)
	grand := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			v := float64(observed[i][j])
			rowTotals[i] += v
			colTotals[j] += v
			grand += v
		}
	}

	expected := make([][]float64, r)
	for i := 0; i < r; i++ {
		expected[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			expected[i][j] = rowTotals[i] * colTotals[j] / grand
		}
	}
	return expected
}

func sortedKeys(set map[float64]struct{}) []float64 {
	keys := make([]float64, 0, len(set))
	for v := range set {
		keys = append(keys, v)
	}
	sort.Float64s(keys)
	return keys
}

func indexOf(keys []float64) map[float64]int {
	idx := make(map[float64]int, len(keys))
	for i, v := range keys {
		idx[v] = i
	}
	return idx
}

func formatKeys(keys []float64) []string {
	out := make([]string, len(keys))
	for i, v := range keys {
		out[i] = report.Full(v)
	}
	return out
}
