package hypothesis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// StatisticalDistributions provides the reference distributions behind the
// report's p-values. Undefined inputs (NaN statistic, non-positive degrees
// of freedom) yield NaN instead of an error; an infinite statistic yields 0.
type StatisticalDistributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *StatisticalDistributions {
	return &StatisticalDistributions{}
}

// TTestPValue computes the two-sided p-value of a t statistic. df may be
// fractional (Welch-Satterthwaite).
func (sd *StatisticalDistributions) TTestPValue(tStatistic, df float64) float64 {
	if math.IsNaN(tStatistic) || !(df > 0) || math.IsInf(df, 0) {
		return math.NaN()
	}
	if math.IsInf(tStatistic, 0) {
		return 0
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * tDist.Survival(math.Abs(tStatistic))
	return math.Min(p, 1)
}

// FTestPValue computes the upper-tail p-value of an F statistic
func (sd *StatisticalDistributions) FTestPValue(fStatistic, df1, df2 float64) float64 {
	if math.IsNaN(fStatistic) || !(df1 > 0) || !(df2 > 0) {
		return math.NaN()
	}
	if math.IsInf(fStatistic, 1) {
		return 0
	}
	if fStatistic <= 0 {
		return 1
	}

	fDist := distuv.F{D1: df1, D2: df2}
	return fDist.Survival(fStatistic)
}

// ChiSquarePValue computes the upper-tail p-value of a chi-square statistic
func (sd *StatisticalDistributions) ChiSquarePValue(chiSquare, df float64) float64 {
	if math.IsNaN(chiSquare) || !(df > 0) {
		return math.NaN()
	}
	if math.IsInf(chiSquare, 1) {
		return 0
	}
	if chiSquare <= 0 {
		return 1
	}

	chiDist := distuv.ChiSquared{K: df}
	return chiDist.Survival(chiSquare)
}
