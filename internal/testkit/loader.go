package testkit

import (
	"context"

	"claimstats/domain/dataset"
)

// StaticLoader is a TableLoader serving fixed tables
type StaticLoader struct {
	Claims  *dataset.ClaimsTable
	Revenue *dataset.RevenueTable
	Err     error
}

// NewGeneratedLoader serves tables drawn with the default generator config
func NewGeneratedLoader() *StaticLoader {
	gen := NewClaimsDataGenerator(DefaultClaimsConfig())
	return &StaticLoader{Claims: gen.GenerateClaims(), Revenue: gen.GenerateRevenue()}
}

// LoadClaims returns the fixed claims table
func (l *StaticLoader) LoadClaims(ctx context.Context) (*dataset.ClaimsTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Claims, nil
}

// LoadRevenue returns the fixed revenue table
func (l *StaticLoader) LoadRevenue(ctx context.Context) (*dataset.RevenueTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Revenue, nil
}
