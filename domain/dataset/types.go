package dataset

import (
	"fmt"
	"sort"
	"time"

	"claimstats/domain/core"
)

// Column names of the claims input
const (
	ColClaimAmount = "ClaimAmount"
	ColAge         = "Age"
	ColIsSmoker    = "IsSmoker"
	ColDenied      = "Denied"
	ColDepartment  = "Department"
)

// Column names of the revenue input
const (
	ColMonth   = "Month"
	ColRevenue = "Revenue"
)

// ClaimsColumns lists the claims schema in file order
var ClaimsColumns = []string{ColClaimAmount, ColAge, ColIsSmoker, ColDenied, ColDepartment}

// RevenueColumns lists the revenue schema in file order
var RevenueColumns = []string{ColMonth, ColRevenue}

// ClaimsTable holds one row per insurance claim as parallel columns.
// Binary columns carry 0/1; missing numeric cells are NaN.
type ClaimsTable struct {
	ClaimAmount []float64
	Age         []float64
	IsSmoker    []float64
	Denied      []float64
	Department  []string
}

// NewClaimsTable builds a claims table, rejecting columns of unequal length
func NewClaimsTable(amount, age, smoker, denied []float64, department []string) (*ClaimsTable, error) {
	n := len(amount)
	for name, l := range map[string]int{
		ColAge:        len(age),
		ColIsSmoker:   len(smoker),
		ColDenied:     len(denied),
		ColDepartment: len(department),
	} {
		if l != n {
			return nil, fmt.Errorf("%w: %s has %d rows, %s has %d", core.ErrColumnLength, ColClaimAmount, n, name, l)
		}
	}
	return &ClaimsTable{
		ClaimAmount: amount,
		Age:         age,
		IsSmoker:    smoker,
		Denied:      denied,
		Department:  department,
	}, nil
}

// Len returns the number of claims
func (t *ClaimsTable) Len() int {
	return len(t.ClaimAmount)
}

// Departments returns the distinct department names in ascending order
func (t *ClaimsTable) Departments() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, d := range t.Department {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		names = append(names, d)
	}
	sort.Strings(names)
	return names
}

// AmountsByDepartment returns claim amounts grouped per department, in the
// order of Departments()
func (t *ClaimsTable) AmountsByDepartment() (names []string, groups [][]float64) {
	names = t.Departments()
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}
	groups = make([][]float64, len(names))
	for i, d := range t.Department {
		g := index[d]
		groups[g] = append(groups[g], t.ClaimAmount[i])
	}
	return names, groups
}

// AmountsWhere returns the claim amounts of rows whose flag column equals value
func (t *ClaimsTable) AmountsWhere(flag []float64, value float64) []float64 {
	out := make([]float64, 0)
	for i, f := range flag {
		if f == value {
			out = append(out, t.ClaimAmount[i])
		}
	}
	return out
}

// NumericColumn returns the numeric column with the given name
func (t *ClaimsTable) NumericColumn(name string) ([]float64, bool) {
	switch name {
	case ColClaimAmount:
		return t.ClaimAmount, true
	case ColAge:
		return t.Age, true
	case ColIsSmoker:
		return t.IsSmoker, true
	case ColDenied:
		return t.Denied, true
	}
	return nil, false
}

// RevenueTable holds one row per calendar month
type RevenueTable struct {
	Month   []time.Time
	Revenue []float64
}

// NewRevenueTable builds a revenue table, rejecting columns of unequal length
func NewRevenueTable(month []time.Time, revenue []float64) (*RevenueTable, error) {
	if len(month) != len(revenue) {
		return nil, fmt.Errorf("%w: %s has %d rows, %s has %d", core.ErrColumnLength, ColMonth, len(month), ColRevenue, len(revenue))
	}
	return &RevenueTable{Month: month, Revenue: revenue}, nil
}

// Len returns the number of months
func (t *RevenueTable) Len() int {
	return len(t.Revenue)
}
