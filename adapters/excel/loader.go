package excel

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"claimstats/domain/core"
	"claimstats/domain/dataset"
	"claimstats/internal"
	"claimstats/internal/errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// monthLayouts are tried in order when parsing the Month column
var monthLayouts = []string{
	"2006-01-02",
	"2006-01",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

var claimsTypes = map[string]series.Type{
	dataset.ColClaimAmount: series.Float,
	dataset.ColAge:         series.Float,
	dataset.ColIsSmoker:    series.Float,
	dataset.ColDenied:      series.Float,
	dataset.ColDepartment:  series.String,
}

var revenueTypes = map[string]series.Type{
	dataset.ColMonth:   series.String,
	dataset.ColRevenue: series.Float,
}

// Loader reads the claims and revenue inputs into typed tables
type Loader struct {
	config SourceConfig
	logger *internal.Logger
}

// NewLoader creates a loader for the configured input files
func NewLoader(config SourceConfig, logger *internal.Logger) *Loader {
	return &Loader{config: config, logger: logger}
}

// LoadClaims reads the claims table. Empty numeric cells become NaN.
func (l *Loader) LoadClaims(ctx context.Context) (*dataset.ClaimsTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	df, err := l.readFrame(l.config.ClaimsPath, "claims", dataset.ClaimsColumns, claimsTypes)
	if err != nil {
		return nil, err
	}

	claims, err := dataset.NewClaimsTable(
		df.Col(dataset.ColClaimAmount).Float(),
		df.Col(dataset.ColAge).Float(),
		df.Col(dataset.ColIsSmoker).Float(),
		df.Col(dataset.ColDenied).Float(),
		df.Col(dataset.ColDepartment).Records(),
	)
	if err != nil {
		return nil, errors.InputError("claims table", err)
	}

	l.logger.Info("Loaded %d claims from %s", claims.Len(), l.config.ClaimsPath)
	return claims, nil
}

// LoadRevenue reads the monthly revenue table
func (l *Loader) LoadRevenue(ctx context.Context) (*dataset.RevenueTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	df, err := l.readFrame(l.config.RevenuePath, "revenue", dataset.RevenueColumns, revenueTypes)
	if err != nil {
		return nil, err
	}

	rawMonths := df.Col(dataset.ColMonth).Records()
	months := make([]time.Time, len(rawMonths))
	for i, s := range rawMonths {
		m, ok := parseMonth(s)
		if !ok {
			return nil, errors.InputError("revenue table", core.NewMalformedValueError(dataset.ColMonth, i+1, s))
		}
		months[i] = m
	}

	revenue, err := dataset.NewRevenueTable(months, df.Col(dataset.ColRevenue).Float())
	if err != nil {
		return nil, errors.InputError("revenue table", err)
	}

	l.logger.Info("Loaded %d revenue months from %s", revenue.Len(), l.config.RevenuePath)
	return revenue, nil
}

// readFrame reads path, checks the required columns and numeric cells, and
// builds a typed dataframe.
func (l *Loader) readFrame(path, table string, columns []string, types map[string]series.Type) (dataframe.DataFrame, error) {
	raw, err := NewDataReader(path, l.config.Sheet, l.logger).ReadData()
	if err != nil {
		return dataframe.DataFrame{}, errors.InputError(fmt.Sprintf("cannot read %s input", table), err)
	}

	for _, col := range columns {
		if !raw.HasColumn(col) {
			return dataframe.DataFrame{}, errors.InputError(fmt.Sprintf("%s input %s", table, path), core.NewColumnMissingError(table, col))
		}
	}
	if len(raw.Rows) == 0 {
		return dataframe.DataFrame{}, errors.InputError(fmt.Sprintf("%s input %s", table, path), fmt.Errorf("%w: %s", core.ErrEmptyTable, table))
	}

	for _, col := range columns {
		if types[col] != series.Float {
			continue
		}
		if err := normalizeNumeric(raw, col); err != nil {
			return dataframe.DataFrame{}, errors.InputError(fmt.Sprintf("%s input %s", table, path), err)
		}
	}

	df := dataframe.LoadRecords(raw.Records(),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.InputError(fmt.Sprintf("cannot parse %s input", table), df.Err)
	}
	return df, nil
}

// normalizeNumeric rewrites the cells of a numeric column in place: blanks
// and NA markers become "NaN", boolean words become 0/1. Anything else that
// does not parse as a number is rejected.
func normalizeNumeric(raw *RawTable, col string) error {
	idx := raw.columnIndex(col)
	for i, row := range raw.Rows {
		cell := row[idx]
		switch strings.ToLower(cell) {
		case "", "na", "nan", "null":
			row[idx] = "NaN"
			continue
		case "true":
			row[idx] = "1"
			continue
		case "false":
			row[idx] = "0"
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return core.NewMalformedValueError(col, i+1, cell)
		}
	}
	return nil
}

func parseMonth(s string) (time.Time, bool) {
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
