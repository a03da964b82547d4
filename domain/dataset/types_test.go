package dataset

import (
	"testing"
	"time"

	"claimstats/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClaims(t *testing.T) *ClaimsTable {
	t.Helper()
	tbl, err := NewClaimsTable(
		[]float64{100, 500, 900, 2600, 5000},
		[]float64{30, 41, 52, 63, 70},
		[]float64{0, 1, 0, 1, 1},
		[]float64{0, 0, 1, 0, 1},
		[]string{"Ortho", "Cardio", "Ortho", "ER", "Cardio"},
	)
	require.NoError(t, err)
	return tbl
}

func TestNewClaimsTable_LengthMismatch(t *testing.T) {
	_, err := NewClaimsTable([]float64{1, 2}, []float64{1}, []float64{0, 1}, []float64{0, 1}, []string{"a", "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrColumnLength)
}

func TestClaimsTable_Departments(t *testing.T) {
	tbl := sampleClaims(t)
	assert.Equal(t, []string{"Cardio", "ER", "Ortho"}, tbl.Departments())

	names, groups := tbl.AmountsByDepartment()
	assert.Equal(t, []string{"Cardio", "ER", "Ortho"}, names)
	assert.Equal(t, [][]float64{{500, 5000}, {2600}, {100, 900}}, groups)
}

func TestClaimsTable_AmountsWhere(t *testing.T) {
	tbl := sampleClaims(t)
	assert.Equal(t, []float64{500, 2600, 5000}, tbl.AmountsWhere(tbl.IsSmoker, 1))
	assert.Equal(t, []float64{100, 900}, tbl.AmountsWhere(tbl.IsSmoker, 0))
	assert.Empty(t, tbl.AmountsWhere(tbl.IsSmoker, 7))
}

func TestClaimsTable_NumericColumn(t *testing.T) {
	tbl := sampleClaims(t)
	col, ok := tbl.NumericColumn(ColAge)
	require.True(t, ok)
	assert.Equal(t, tbl.Age, col)

	_, ok = tbl.NumericColumn(ColDepartment)
	assert.False(t, ok)
}

func TestNewRevenueTable(t *testing.T) {
	m := []time.Time{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	tbl, err := NewRevenueTable(m, []float64{1200})
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())

	_, err = NewRevenueTable(m, []float64{1, 2})
	assert.ErrorIs(t, err, core.ErrColumnLength)
}
