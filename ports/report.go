package ports

import (
	"context"

	"claimstats/domain/dataset"
	"claimstats/domain/report"
)

// ReportWriter persists report artifacts by name. Figures go to the figure
// location, everything else to the output location. Writing a name twice
// overwrites the earlier artifact.
type ReportWriter interface {
	WriteTable(ctx context.Context, name string, table report.Table) error
	WriteText(ctx context.Context, name string, text string) error
	WriteFigure(ctx context.Context, name string, png []byte) error
	WriteDocument(ctx context.Context, name string, data []byte) error
}

// TableLoader reads the two report inputs
type TableLoader interface {
	LoadClaims(ctx context.Context) (*dataset.ClaimsTable, error)
	LoadRevenue(ctx context.Context) (*dataset.RevenueTable, error)
}
