package analysis

import (
	"math"

	"claimstats/domain/dataset"
	domainStats "claimstats/domain/stats"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// AssociationFields is the fixed field order of both association matrices
var AssociationFields = []string{dataset.ColAge, dataset.ColClaimAmount, dataset.ColIsSmoker, dataset.ColDenied}

// Association computes the Pearson correlation matrix and the sample
// covariance matrix over AssociationFields. Rows with a NaN in either field
// of a pair are dropped for that pair only.
func Association(claims *dataset.ClaimsTable) (corr, cov domainStats.Matrix) {
	columns := make([][]float64, len(AssociationFields))
	for i, f := range AssociationFields {
		columns[i], _ = claims.NumericColumn(f)
	}

	n := len(AssociationFields)
	corrValues := mat.NewSymDense(n, nil)
	covValues := mat.NewSymDense(n, nil)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			x, y := pairwiseComplete(columns[i], columns[j])
			covValues.SetSym(i, j, stat.Covariance(x, y, nil))

			if i == j {
				corrValues.SetSym(i, j, unitOrNaN(stat.Variance(x, nil)))
				continue
			}
			corrValues.SetSym(i, j, stat.Correlation(x, y, nil))
		}
	}

	corr = domainStats.Matrix{Kind: "correlation", Fields: AssociationFields, Values: corrValues}
	cov = domainStats.Matrix{Kind: "covariance", Fields: AssociationFields, Values: covValues}
	return corr, cov
}

// pairwiseComplete keeps the positions where both x and y are present
func pairwiseComplete(x, y []float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// unitOrNaN is the correlation of a field with itself: 1 unless the field
// is constant (or too short to have a variance).
func unitOrNaN(variance float64) float64 {
	if math.IsNaN(variance) || variance == 0 {
		return math.NaN()
	}
	return 1
}
