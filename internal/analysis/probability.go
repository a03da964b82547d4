package analysis

import (
	domainStats "claimstats/domain/stats"
)

// ClaimThreshold is the claim amount of the exceedance event
const ClaimThreshold = 2500.0

// ExceedanceProbability is the empirical frequency of data > threshold.
// An empty input gives NaN.
func ExceedanceProbability(field string, data []float64, threshold float64) domainStats.Probability {
	hits := 0
	for _, v := range data {
		if v > threshold {
			hits++
		}
	}
	total := len(data)
	return domainStats.Probability{
		Field:     field,
		Threshold: threshold,
		Hits:      hits,
		Total:     total,
		Value:     float64(hits) / float64(total),
	}
}
