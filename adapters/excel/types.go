package excel

// RawTable is a delimited or spreadsheet table as trimmed strings
type RawTable struct {
	Headers []string   // Column headers
	Rows    [][]string // Data rows, padded to len(Headers)
}

// Records returns the header followed by the data rows, the shape gota's
// dataframe.LoadRecords expects.
func (t *RawTable) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Headers)
	return append(records, t.Rows...)
}

// HasColumn reports whether the header contains name
func (t *RawTable) HasColumn(name string) bool {
	return t.columnIndex(name) >= 0
}

func (t *RawTable) columnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}
