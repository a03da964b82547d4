package hypothesis

import (
	"math"

	domainStats "claimstats/domain/stats"
)

// OneWayANOVA tests equality of means across groups
type OneWayANOVA struct {
	distributions *StatisticalDistributions
}

// NewOneWayANOVA creates a new one-way ANOVA
func NewOneWayANOVA() *OneWayANOVA {
	return &OneWayANOVA{distributions: NewDistributions()}
}

// Name returns the test name
func (a *OneWayANOVA) Name() string {
	return "one_way_anova"
}

// Description returns a human-readable description
func (a *OneWayANOVA) Description() string {
	return "F-test for equality of group means"
}

// Run computes F = (SSB/(k-1)) / (SSW/(N-k)) over the given groups. A
// single group, or as many groups as observations, leaves F and p NaN.
func (a *OneWayANOVA) Run(names []string, groups [][]float64) domainStats.AnovaResult {
	k := len(groups)
	total := 0
	grandSum := 0.0
	for _, g := range groups {
		total += len(g)
		for _, v := range g {
			grandSum += v
		}
	}
	grandMean := grandSum / float64(total)

	ssBetween, ssWithin := 0.0, 0.0
	for _, g := range groups {
		m := mean(g)
		d := m - grandMean
		ssBetween += float64(len(g)) * d * d
		for _, v := range g {
			ssWithin += (v - m) * (v - m)
		}
	}

	dfBetween := k - 1
	dfWithin := total - k
	fStat := (ssBetween / float64(dfBetween)) / (ssWithin / float64(dfWithin))
	if dfBetween <= 0 || dfWithin <= 0 {
		fStat = math.NaN()
	}

	return domainStats.AnovaResult{
		F:         fStat,
		PValue:    a.distributions.FTestPValue(fStat, float64(dfBetween), float64(dfWithin)),
		DFBetween: dfBetween,
		DFWithin:  dfWithin,
		Groups:    names,
	}
}
