package hypothesis

import (
	"math"

	domainStats "claimstats/domain/stats"

	"github.com/montanaflynn/stats"
)

// WelchTTest compares two group means without assuming equal variances
type WelchTTest struct {
	distributions *StatisticalDistributions
}

// NewWelchTTest creates a new Welch's t-test
func NewWelchTTest() *WelchTTest {
	return &WelchTTest{distributions: NewDistributions()}
}

// Name returns the test name
func (w *WelchTTest) Name() string {
	return "welch_ttest"
}

// Description returns a human-readable description
func (w *WelchTTest) Description() string {
	return "Two-sample difference in means with unequal variances"
}

// Run performs Welch's t-test of group1 against group2. With fewer than two
// observations in a group the variance is undefined and the result is NaN.
func (w *WelchTTest) Run(group1, group2 []float64) domainStats.WelchResult {
	n1 := float64(len(group1))
	n2 := float64(len(group2))

	mean1 := mean(group1)
	mean2 := mean(group2)
	var1 := sampleVariance(group1)
	var2 := sampleVariance(group2)

	// t = (mean1 - mean2) / sqrt(var1/n1 + var2/n2)
	se1 := var1 / n1
	se2 := var2 / n2
	tStat := (mean1 - mean2) / math.Sqrt(se1+se2)

	// Welch-Satterthwaite
	df := (se1 + se2) * (se1 + se2) / (se1*se1/(n1-1) + se2*se2/(n2-1))

	return domainStats.WelchResult{
		T:      tStat,
		DF:     df,
		PValue: w.distributions.TTestPValue(tStat, df),
		N1:     len(group1),
		N2:     len(group2),
		Mean1:  mean1,
		Mean2:  mean2,
	}
}

func mean(data []float64) float64 {
	m, err := stats.Mean(data)
	if err != nil {
		return math.NaN()
	}
	return m
}

func sampleVariance(data []float64) float64 {
	if len(data) < 2 {
		return math.NaN()
	}
	v, err := stats.SampleVariance(data)
	if err != nil {
		return math.NaN()
	}
	return v
}
