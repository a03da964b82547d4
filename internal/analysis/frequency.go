package analysis

import (
	"fmt"
	"math"

	domainStats "claimstats/domain/stats"
)

// ClaimBinWidth is the fixed interval width of the claim-amount distribution
const ClaimBinWidth = 400.0

// RevenueHistogramBins is the bin count of the revenue histogram
const RevenueHistogramBins = 12

// FrequencyDistribution bins data into fixed-width intervals starting at 0.
// Edges run 0, width, 2*width, ... up to the first multiple of width
// strictly greater than the maximum. Bins are right-closed and the lowest
// bin also holds 0. Values outside [0, last edge] and NaN are not counted.
func FrequencyDistribution(field string, data []float64, width float64) domainStats.FrequencyTable {
	table := domainStats.FrequencyTable{Field: field, Width: width}

	max, ok := finiteMax(data)
	if !ok || max < 0 {
		return table
	}
	nBins := int(math.Floor(max/width)) + 1

	counts := make([]int, nBins)
	total := 0
	for _, v := range data {
		if math.IsNaN(v) || v < 0 {
			continue
		}
		idx := 0
		if v > 0 {
			idx = int(math.Ceil(v/width)) - 1
		}
		if idx >= nBins {
			continue
		}
		counts[idx]++
		total++
	}

	table.Bins = make([]domainStats.FrequencyBin, nBins)
	cumulative := 0.0
	for i, c := range counts {
		lower := float64(i) * width
		upper := float64(i+1) * width
		relative := round2(float64(c) / float64(total) * 100)
		cumulative = round2(cumulative + relative)
		table.Bins[i] = domainStats.FrequencyBin{
			Lower:         lower,
			Upper:         upper,
			Label:         fmt.Sprintf("%d-%d", int64(lower), int64(upper)-1),
			Frequency:     c,
			RelativePct:   relative,
			CumulativePct: cumulative,
		}
	}
	return table
}

// EqualWidthHistogram splits [min, max] into n equal bins. Bins are
// half-open except the last, which includes max. A constant input is
// widened to [v-0.5, v+0.5].
func EqualWidthHistogram(data []float64, n int) []domainStats.HistogramBin {
	lo, hi, ok := finiteRange(data)
	if !ok || n <= 0 {
		return nil
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := make([]float64, n+1)
	step := (hi - lo) / float64(n)
	for i := range edges {
		edges[i] = lo + float64(i)*step
	}
	edges[n] = hi

	bins := make([]domainStats.HistogramBin, n)
	for i := range bins {
		bins[i] = domainStats.HistogramBin{Min: edges[i], Max: edges[i+1]}
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		idx := int((v - lo) / step)
		if idx >= n {
			idx = n - 1
		}
		// correct float drift at the edges
		if idx > 0 && v < edges[idx] {
			idx--
		} else if idx < n-1 && v >= edges[idx+1] {
			idx++
		}
		bins[idx].Count++
	}
	return bins
}

func finiteMax(data []float64) (float64, bool) {
	_, hi, ok := finiteRange(data)
	return hi, ok
}

func finiteRange(data []float64) (lo, hi float64, ok bool) {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, ok
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
