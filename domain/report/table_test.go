package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Column(t *testing.T) {
	tbl := Table{
		Header: []string{"Range", "Frequency"},
		Rows:   [][]string{{"0-399", "3"}, {"400-799", "1"}},
	}
	assert.Equal(t, 2, tbl.Width())
	assert.Equal(t, []string{"3", "1"}, tbl.Column("Frequency"))
	assert.Nil(t, tbl.Column("Missing"))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "2460.00", Fixed(2460, 2))
	assert.Equal(t, "0.4000", Fixed(0.4, 4))
	assert.Equal(t, "NaN", Fixed(math.NaN(), 2))
	assert.Equal(t, "0.1", Full(0.1))
	assert.Equal(t, "1", Full(1))
}

func TestTable_CSV(t *testing.T) {
	tbl := Table{
		Header: []string{"", "Age", "ClaimAmount"},
		Rows:   [][]string{{"Age", "1", "0.5"}, {"ClaimAmount", "0.5", "1"}},
	}
	data, err := tbl.CSV()
	assert.NoError(t, err)
	assert.Equal(t, ",Age,ClaimAmount\nAge,1,0.5\nClaimAmount,0.5,1\n", string(data))

	quoted, err := Table{Header: []string{"Type"}, Rows: [][]string{{"a,b"}}}.CSV()
	assert.NoError(t, err)
	assert.Equal(t, "Type\n\"a,b\"\n", string(quoted))
}
