package analysis

import (
	"math"
	"sort"

	domainStats "claimstats/domain/stats"

	"github.com/montanaflynn/stats"
)

// Summarize computes count, mean, sample standard deviation, min, quartiles
// and max. Statistics that are undefined for the input (empty slice, a
// single value for std) come back as NaN. Missing values are skipped.
func Summarize(field string, data []float64) domainStats.Summary {
	data = dropMissing(data)
	mean, err := stats.Mean(data)
	if err != nil {
		mean = math.NaN()
	}
	stdDev, err := stats.StandardDeviationSample(data)
	if err != nil || len(data) < 2 {
		stdDev = math.NaN()
	}
	min, err := stats.Min(data)
	if err != nil {
		min = math.NaN()
	}
	max, err := stats.Max(data)
	if err != nil {
		max = math.NaN()
	}
	median, err := stats.Median(data)
	if err != nil {
		median = math.NaN()
	}

	sorted := sortedCopy(data)
	return domainStats.Summary{
		Field:  field,
		Count:  len(data),
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Q1:     Quantile(sorted, 0.25),
		Median: median,
		Q3:     Quantile(sorted, 0.75),
		Max:    max,
	}
}

// Describe computes the full descriptive record: Summarize plus IQR,
// skewness and excess kurtosis. Zero variance leaves skewness and kurtosis
// NaN.
func Describe(field string, data []float64) domainStats.DescriptiveStats {
	data = dropMissing(data)
	s := Summarize(field, data)
	return domainStats.DescriptiveStats{
		Summary:  s,
		IQR:      s.Q3 - s.Q1,
		Skewness: Skewness(data),
		Kurtosis: ExcessKurtosis(data),
	}
}

// Quantile returns the p-quantile of sorted data using linear interpolation
// between closest ranks (h = (n-1)p).
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Skewness is the adjusted Fisher-Pearson coefficient G1. NaN for fewer
// than 3 values.
func Skewness(data []float64) float64 {
	n := float64(len(data))
	if n < 3 {
		return math.NaN()
	}
	m2, m3, _ := centralMoments(data)
	g1 := m3 / math.Pow(m2, 1.5)
	return math.Sqrt(n*(n-1)) / (n - 2) * g1
}

// ExcessKurtosis is the bias-corrected excess kurtosis G2 (normal = 0). NaN
// for fewer than 4 values.
func ExcessKurtosis(data []float64) float64 {
	n := float64(len(data))
	if n < 4 {
		return math.NaN()
	}
	m2, _, m4 := centralMoments(data)
	g2 := m4/(m2*m2) - 3
	return (n - 1) / ((n - 2) * (n - 3)) * ((n+1)*g2 + 6)
}

// centralMoments returns the population central moments m2, m3, m4
func centralMoments(data []float64) (m2, m3, m4 float64) {
	mean, _ := stats.Mean(data)
	for _, x := range data {
		d := x - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	n := float64(len(data))
	return m2 / n, m3 / n, m4 / n
}

func sortedCopy(data []float64) []float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	return sorted
}

func dropMissing(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
