package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// Table is the write format of every tabular artifact: one header row
// followed by data rows of the same width.
type Table struct {
	Header []string
	Rows   [][]string
}

// Width returns the number of columns
func (t Table) Width() int {
	return len(t.Header)
}

// Column returns the cells of the named column, or nil when absent
func (t Table) Column(name string) []string {
	idx := -1
	for i, h := range t.Header {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		if idx < len(r) {
			out[i] = r[idx]
		}
	}
	return out
}

// CSV encodes the header and rows as comma-separated values with LF line
// endings.
func (t Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Fixed formats v with the given number of decimals. NaN and infinities
// are written as NaN, +Inf and -Inf.
func Fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Full formats v with the shortest representation that round-trips
func Full(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
