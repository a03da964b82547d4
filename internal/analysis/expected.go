package analysis

import (
	domainStats "claimstats/domain/stats"

	"github.com/shopspring/decimal"
)

// ClaimCategory is one row of the expected-cost probability table
type ClaimCategory struct {
	Type    string
	Prob    decimal.Decimal
	AvgCost decimal.Decimal
}

// DefaultClaimCategories is the fixed probability table of the report.
// Probabilities are not checked to sum to 1.
var DefaultClaimCategories = []ClaimCategory{
	{Type: "Routine", Prob: decimal.RequireFromString("0.62"), AvgCost: decimal.NewFromInt(1000)},
	{Type: "Specialist", Prob: decimal.RequireFromString("0.28"), AvgCost: decimal.NewFromInt(3000)},
	{Type: "Emergency", Prob: decimal.RequireFromString("0.10"), AvgCost: decimal.NewFromInt(10000)},
}

// ExpectedValue computes prob*cost per category and the exact sum
func ExpectedValue(categories []ClaimCategory) domainStats.ExpectedValueTable {
	table := domainStats.ExpectedValueTable{
		Rows:  make([]domainStats.ExpectedValueRow, len(categories)),
		Total: decimal.Zero,
	}
	for i, c := range categories {
		contribution := c.Prob.Mul(c.AvgCost)
		table.Rows[i] = domainStats.ExpectedValueRow{
			Type:         c.Type,
			Prob:         c.Prob,
			AvgCost:      c.AvgCost,
			Contribution: contribution,
		}
		table.Total = table.Total.Add(contribution)
	}
	return table
}
