package stats

import (
	"fmt"
	"strconv"
	"strings"

	"claimstats/domain/report"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/mat"
)

// ============================================================================
// DESCRIPTIVE STATISTICS
// ============================================================================

// Summary is the narrow descriptive record: count, location and spread
type Summary struct {
	Field  string  `json:"field"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"` // sample standard deviation (n-1)
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Table renders the summary in describe() order
func (s Summary) Table() report.Table {
	return report.Table{
		Header: []string{"Statistic", s.Field},
		Rows: [][]string{
			{"count", report.Fixed(float64(s.Count), 2)},
			{"mean", report.Fixed(s.Mean, 2)},
			{"std", report.Fixed(s.StdDev, 2)},
			{"min", report.Fixed(s.Min, 2)},
			{"25%", report.Fixed(s.Q1, 2)},
			{"50%", report.Fixed(s.Median, 2)},
			{"75%", report.Fixed(s.Q3, 2)},
			{"max", report.Fixed(s.Max, 2)},
		},
	}
}

// DescriptiveStats extends Summary with shape statistics
type DescriptiveStats struct {
	Summary
	IQR      float64 `json:"iqr"`
	Skewness float64 `json:"skewness"` // adjusted Fisher-Pearson G1
	Kurtosis float64 `json:"kurtosis"` // bias-corrected excess kurtosis G2
}

// Table renders every statistic rounded to two decimals
func (d DescriptiveStats) Table() report.Table {
	return report.Table{
		Header: []string{"Statistic", d.Field},
		Rows: [][]string{
			{"count", report.Fixed(float64(d.Count), 2)},
			{"mean", report.Fixed(d.Mean, 2)},
			{"std", report.Fixed(d.StdDev, 2)},
			{"min", report.Fixed(d.Min, 2)},
			{"25% (Q1)", report.Fixed(d.Q1, 2)},
			{"50% (median)", report.Fixed(d.Median, 2)},
			{"75% (Q3)", report.Fixed(d.Q3, 2)},
			{"max", report.Fixed(d.Max, 2)},
			{"IQR", report.Fixed(d.IQR, 2)},
			{"skewness", report.Fixed(d.Skewness, 2)},
			{"kurtosis", report.Fixed(d.Kurtosis, 2)},
		},
	}
}

// ============================================================================
// FREQUENCY DISTRIBUTION
// ============================================================================

// FrequencyBin is one interval of a frequency distribution
type FrequencyBin struct {
	Lower         float64 `json:"lower"`
	Upper         float64 `json:"upper"`
	Label         string  `json:"label"`
	Frequency     int     `json:"frequency"`
	RelativePct   float64 `json:"relative_pct"`   // rounded to 2 decimals
	CumulativePct float64 `json:"cumulative_pct"` // running sum of RelativePct, rounded
}

// FrequencyTable is an ordered fixed-width frequency distribution
type FrequencyTable struct {
	Field string         `json:"field"`
	Width float64        `json:"width"`
	Bins  []FrequencyBin `json:"bins"`
}

// Total returns the number of binned observations
func (f FrequencyTable) Total() int {
	total := 0
	for _, b := range f.Bins {
		total += b.Frequency
	}
	return total
}

// Histogram returns the bins in the shape used for plotting
func (f FrequencyTable) Histogram() []HistogramBin {
	out := make([]HistogramBin, len(f.Bins))
	for i, b := range f.Bins {
		out[i] = HistogramBin{Min: b.Lower, Max: b.Upper, Count: b.Frequency}
	}
	return out
}

// Table renders Range, Frequency, Relative % and Cumulative %
func (f FrequencyTable) Table() report.Table {
	rows := make([][]string, len(f.Bins))
	for i, b := range f.Bins {
		rows[i] = []string{
			b.Label,
			strconv.Itoa(b.Frequency),
			report.Fixed(b.RelativePct, 2),
			report.Fixed(b.CumulativePct, 2),
		}
	}
	return report.Table{
		Header: []string{"Range", "Frequency", "Relative %", "Cumulative %"},
		Rows:   rows,
	}
}

// HistogramBin is a plotted histogram bar covering [Min, Max]
type HistogramBin struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// ============================================================================
// ASSOCIATION
// ============================================================================

// Matrix is a symmetric matrix indexed by field name in a fixed order
type Matrix struct {
	Kind   string        `json:"kind"` // "correlation" or "covariance"
	Fields []string      `json:"fields"`
	Values *mat.SymDense `json:"-"`
}

// At returns the entry for the named pair
func (m Matrix) At(row, col string) float64 {
	return m.Values.At(m.index(row), m.index(col))
}

func (m Matrix) index(field string) int {
	for i, f := range m.Fields {
		if f == field {
			return i
		}
	}
	panic(fmt.Sprintf("stats: unknown field %q in %s matrix", field, m.Kind))
}

// Table renders the matrix with an empty corner cell, full precision
func (m Matrix) Table() report.Table {
	header := append([]string{""}, m.Fields...)
	rows := make([][]string, len(m.Fields))
	for i, f := range m.Fields {
		row := make([]string, 0, len(m.Fields)+1)
		row = append(row, f)
		for j := range m.Fields {
			row = append(row, report.Full(m.Values.At(i, j)))
		}
		rows[i] = row
	}
	return report.Table{Header: header, Rows: rows}
}

// ============================================================================
// HYPOTHESIS TESTS
// ============================================================================

// WelchResult is the outcome of a two-sample unequal-variance t-test
type WelchResult struct {
	T      float64 `json:"t"`
	DF     float64 `json:"df"`
	PValue float64 `json:"p_value"`
	N1     int     `json:"n1"`
	N2     int     `json:"n2"`
	Mean1  float64 `json:"mean1"`
	Mean2  float64 `json:"mean2"`
}

// Text renders the one-line report
func (w WelchResult) Text() string {
	return fmt.Sprintf("Welch t-test: t=%.4f, p=%.6f\n", w.T, w.PValue)
}

// AnovaResult is the outcome of a one-way ANOVA
type AnovaResult struct {
	F         float64  `json:"f"`
	PValue    float64  `json:"p_value"`
	DFBetween int      `json:"df_between"`
	DFWithin  int      `json:"df_within"`
	Groups    []string `json:"groups"`
}

// Text renders the one-line report
func (a AnovaResult) Text() string {
	return fmt.Sprintf("ANOVA: F=%.4f, p=%.6f\n", a.F, a.PValue)
}

// ChiSquareResult is the outcome of a chi-square independence test
type ChiSquareResult struct {
	Chi2     float64     `json:"chi2"`
	PValue   float64     `json:"p_value"`
	DOF      int         `json:"dof"`
	Yates    bool        `json:"yates"` // continuity correction applied
	RowLabel string      `json:"row_label"`
	ColLabel string      `json:"col_label"`
	RowKeys  []string    `json:"row_keys"`
	ColKeys  []string    `json:"col_keys"`
	Observed [][]int     `json:"observed"`
	Expected [][]float64 `json:"expected"`
}

// Text renders the result line followed by the observed and expected tables
func (c ChiSquareResult) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Chi-square: chi2=%.4f, p=%.6f, dof=%d\n", c.Chi2, c.PValue, c.DOF)

	observed := make([][]string, len(c.RowKeys))
	expected := make([][]string, len(c.RowKeys))
	for i, rk := range c.RowKeys {
		observed[i] = []string{rk}
		expected[i] = []string{rk}
		for j := range c.ColKeys {
			observed[i] = append(observed[i], strconv.Itoa(c.Observed[i][j]))
			expected[i] = append(expected[i], report.Fixed(c.Expected[i][j], 4))
		}
	}

	b.WriteString("Observed:\n")
	c.renderTable(&b, observed)
	b.WriteString("\nExpected:\n")
	c.renderTable(&b, expected)
	return b.String()
}

func (c ChiSquareResult) renderTable(b *strings.Builder, rows [][]string) {
	tw := tablewriter.NewWriter(b)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader(append([]string{c.RowLabel + " \\ " + c.ColLabel}, c.ColKeys...))
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.AppendBulk(rows)
	tw.Render()
}

// ============================================================================
// EXPECTED VALUE AND PROBABILITY
// ============================================================================

// ExpectedValueRow is one claim category of the expected-value table
type ExpectedValueRow struct {
	Type         string          `json:"type"`
	Prob         decimal.Decimal `json:"prob"`
	AvgCost      decimal.Decimal `json:"avg_cost"`
	Contribution decimal.Decimal `json:"contribution"`
}

// ExpectedValueTable holds per-category contributions and their sum
type ExpectedValueTable struct {
	Rows  []ExpectedValueRow `json:"rows"`
	Total decimal.Decimal    `json:"total"`
}

// Table renders Type, Prob, AvgCost and Contribution
func (e ExpectedValueTable) Table() report.Table {
	rows := make([][]string, len(e.Rows))
	for i, r := range e.Rows {
		rows[i] = []string{r.Type, r.Prob.StringFixed(2), r.AvgCost.StringFixed(2), r.Contribution.StringFixed(2)}
	}
	return report.Table{
		Header: []string{"Type", "Prob", "AvgCost", "Contribution"},
		Rows:   rows,
	}
}

// Text renders the scalar result line
func (e ExpectedValueTable) Text() string {
	return fmt.Sprintf("Expected Claim Cost = %s\n", e.Total.StringFixed(2))
}

// Probability is an empirical exceedance probability P(field > threshold)
type Probability struct {
	Field     string  `json:"field"`
	Threshold float64 `json:"threshold"`
	Hits      int     `json:"hits"`
	Total     int     `json:"total"`
	Value     float64 `json:"value"`
}

// Text renders the scalar result line
func (p Probability) Text() string {
	return fmt.Sprintf("P(%s > %s) ≈ %.4f\n", p.Field, report.Full(p.Threshold), p.Value)
}
