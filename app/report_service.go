package app

import (
	"context"
	"fmt"
	"time"

	"claimstats/adapters/excel"
	"claimstats/adapters/figure"
	"claimstats/adapters/report"
	"claimstats/adapters/stats/hypothesis"
	"claimstats/domain/dataset"
	domainReport "claimstats/domain/report"
	"claimstats/domain/run"
	domainStats "claimstats/domain/stats"
	"claimstats/internal"
	"claimstats/internal/analysis"
	"claimstats/internal/errors"
	"claimstats/ports"
)

// Output artifact names
const (
	DescriptiveStatsName = "descriptive_stats_claims.csv"
	FrequencyName        = "frequency_distribution_claims.csv"
	CorrelationName      = "correlation_matrix.csv"
	CovarianceName       = "covariance_matrix.csv"
	TTestName            = "t_test_smoker_vs_nonsmoker.txt"
	AnovaName            = "anova_by_department.txt"
	ChiSquareName        = "chi_square_denied_vs_smoker.txt"
	ExpectedTableName    = "expected_value_table.csv"
	ExpectedResultName   = "expected_value_result.txt"
	ProbabilityName      = "probability_demo.txt"
	RevenueStatsName     = "revenue_descriptive_stats.csv"
	WorkbookName         = "claims_report.xlsx"
)

// ReportService runs the claims and revenue report end to end
type ReportService struct {
	loader        ports.TableLoader
	writer        ports.ReportWriter
	renderer      *figure.Renderer
	stageRunner   *StageRunner
	logger        *internal.Logger
	figureLinkDir string
}

// ReportResult describes a completed run
type ReportResult struct {
	Manifest  *run.RunManifest `json:"manifest"`
	Stages    []StageTiming    `json:"stages"`
	RuntimeMs int64            `json:"runtime_ms"`
}

// NewReportService wires the report pipeline. figureLinkDir is the figures
// location relative to the output directory, used for links in the summary.
func NewReportService(loader ports.TableLoader, writer ports.ReportWriter, renderer *figure.Renderer, logger *internal.Logger, figureLinkDir string) *ReportService {
	return &ReportService{
		loader:        loader,
		writer:        writer,
		renderer:      renderer,
		stageRunner:   NewStageRunner(logger),
		logger:        logger,
		figureLinkDir: figureLinkDir,
	}
}

// reportRun holds the state shared by the stages of one run
type reportRun struct {
	recorder *report.ManifestRecorder
	claims   *dataset.ClaimsTable
	revenue  *dataset.RevenueTable
	summary  report.Summary
	sheets   []excel.Sheet
}

// Run loads the inputs, computes every analysis and writes all artifacts.
// The first failing stage aborts the run.
func (s *ReportService) Run(ctx context.Context) (*ReportResult, error) {
	startTime := time.Now()
	r := &reportRun{
		recorder: report.NewManifestRecorder(s.writer),
		summary:  report.Summary{FigureLinkDir: s.figureLinkDir},
	}

	stages := []Stage{
		{Name: "load", Run: func(ctx context.Context) error { return s.load(ctx, r) }},
		{Name: "descriptive", Run: func(ctx context.Context) error { return s.descriptive(ctx, r) }},
		{Name: "frequency", Run: func(ctx context.Context) error { return s.frequency(ctx, r) }},
		{Name: "box_plots", Run: func(ctx context.Context) error { return s.boxPlots(ctx, r) }},
		{Name: "association", Run: func(ctx context.Context) error { return s.association(ctx, r) }},
		{Name: "hypothesis", Run: func(ctx context.Context) error { return s.hypothesisTests(ctx, r) }},
		{Name: "expected_value", Run: func(ctx context.Context) error { return s.expectedValue(ctx, r) }},
		{Name: "probability", Run: func(ctx context.Context) error { return s.probability(ctx, r) }},
		{Name: "revenue", Run: func(ctx context.Context) error { return s.revenueSummary(ctx, r) }},
		{Name: "workbook", Run: func(ctx context.Context) error { return s.workbook(ctx, r) }},
		{Name: "summary", Run: func(ctx context.Context) error { return s.writeSummary(ctx, r) }},
	}

	timings, err := s.stageRunner.Execute(ctx, stages)
	if err != nil {
		return nil, err
	}

	manifest, err := r.recorder.WriteManifest(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write manifest")
	}

	s.logger.Info("Report complete: %d artifacts, fingerprint %s", len(manifest.Artifacts), manifest.Fingerprint)
	return &ReportResult{
		Manifest:  manifest,
		Stages:    timings,
		RuntimeMs: time.Since(startTime).Milliseconds(),
	}, nil
}

func (s *ReportService) load(ctx context.Context, r *reportRun) error {
	claims, err := s.loader.LoadClaims(ctx)
	if err != nil {
		return err
	}
	revenue, err := s.loader.LoadRevenue(ctx)
	if err != nil {
		return err
	}
	r.claims, r.revenue = claims, revenue
	return nil
}

func (s *ReportService) descriptive(ctx context.Context, r *reportRun) error {
	desc := analysis.Describe(dataset.ColClaimAmount, r.claims.ClaimAmount)
	r.summary.Claims = desc
	return s.writeTable(ctx, r, DescriptiveStatsName, desc.Table())
}

func (s *ReportService) frequency(ctx context.Context, r *reportRun) error {
	freq := analysis.FrequencyDistribution(dataset.ColClaimAmount, r.claims.ClaimAmount, analysis.ClaimBinWidth)
	r.summary.MaxFrequencyBin = modalBin(freq)
	if err := s.writeTable(ctx, r, FrequencyName, freq.Table()); err != nil {
		return err
	}

	png, err := s.renderer.ClaimHistogram(freq.Histogram())
	return s.writeFigure(ctx, r, figure.FigClaimHistogram, png, err)
}

func (s *ReportService) boxPlots(ctx context.Context, r *reportRun) error {
	png, err := s.renderer.ClaimBox(r.claims.ClaimAmount)
	if err := s.writeFigure(ctx, r, figure.FigClaimBox, png, err); err != nil {
		return err
	}

	names, groups := r.claims.AmountsByDepartment()
	png, err = s.renderer.ClaimBoxByDepartment(names, groups)
	return s.writeFigure(ctx, r, figure.FigClaimBoxByDept, png, err)
}

func (s *ReportService) association(ctx context.Context, r *reportRun) error {
	corr, cov := analysis.Association(r.claims)
	r.summary.AgeClaimCorr = corr.At(dataset.ColAge, dataset.ColClaimAmount)
	if err := s.writeTable(ctx, r, CorrelationName, corr.Table()); err != nil {
		return err
	}
	if err := s.writeTable(ctx, r, CovarianceName, cov.Table()); err != nil {
		return err
	}

	png, err := s.renderer.AgeClaimScatter(r.claims.Age, r.claims.ClaimAmount)
	return s.writeFigure(ctx, r, figure.FigAgeClaimScatter, png, err)
}

func (s *ReportService) hypothesisTests(ctx context.Context, r *reportRun) error {
	smokers := r.claims.AmountsWhere(r.claims.IsSmoker, 1)
	nonSmokers := r.claims.AmountsWhere(r.claims.IsSmoker, 0)
	welch := hypothesis.NewWelchTTest().Run(smokers, nonSmokers)
	r.summary.Welch = welch
	if err := s.writeText(ctx, r, TTestName, welch.Text()); err != nil {
		return err
	}

	names, groups := r.claims.AmountsByDepartment()
	anova := hypothesis.NewOneWayANOVA().Run(names, groups)
	r.summary.Anova = anova
	if err := s.writeText(ctx, r, AnovaName, anova.Text()); err != nil {
		return err
	}

	chi := hypothesis.NewChiSquareIndependence().Run(
		dataset.ColDenied, r.claims.Denied, dataset.ColIsSmoker, r.claims.IsSmoker)
	r.summary.ChiSquare = chi
	return s.writeText(ctx, r, ChiSquareName, chi.Text())
}

func (s *ReportService) expectedValue(ctx context.Context, r *reportRun) error {
	ev := analysis.ExpectedValue(analysis.DefaultClaimCategories)
	r.summary.ExpectedValue = ev
	if err := s.writeTable(ctx, r, ExpectedTableName, ev.Table()); err != nil {
		return err
	}
	return s.writeText(ctx, r, ExpectedResultName, ev.Text())
}

func (s *ReportService) probability(ctx context.Context, r *reportRun) error {
	p := analysis.ExceedanceProbability(dataset.ColClaimAmount, r.claims.ClaimAmount, analysis.ClaimThreshold)
	r.summary.Probability = p
	return s.writeText(ctx, r, ProbabilityName, p.Text())
}

func (s *ReportService) revenueSummary(ctx context.Context, r *reportRun) error {
	bins := analysis.EqualWidthHistogram(r.revenue.Revenue, analysis.RevenueHistogramBins)
	png, err := s.renderer.RevenueHistogram(bins)
	if err := s.writeFigure(ctx, r, figure.FigRevenueHist, png, err); err != nil {
		return err
	}

	summary := analysis.Summarize(dataset.ColRevenue, r.revenue.Revenue)
	r.summary.Revenue = summary
	return s.writeTable(ctx, r, RevenueStatsName, summary.Table())
}

func (s *ReportService) workbook(ctx context.Context, r *reportRun) error {
	data, err := excel.WriteWorkbook(r.sheets)
	if err != nil {
		return errors.OutputError("failed to build workbook", err)
	}
	return r.recorder.WriteDocument(ctx, WorkbookName, data)
}

func (s *ReportService) writeSummary(ctx context.Context, r *reportRun) error {
	md := r.summary.Markdown()
	if err := r.recorder.WriteDocument(ctx, report.SummaryMarkdownName, md); err != nil {
		return err
	}
	return r.recorder.WriteDocument(ctx, report.SummaryHTMLName, report.RenderHTML(md))
}

func (s *ReportService) writeTable(ctx context.Context, r *reportRun, name string, table domainReport.Table) error {
	if err := r.recorder.WriteTable(ctx, name, table); err != nil {
		return err
	}
	r.sheets = append(r.sheets, excel.Sheet{Name: excel.SheetName(name), Table: table})
	r.summary.Tables = append(r.summary.Tables, name)
	s.logger.Debug("Wrote table %s (%d rows)", name, len(table.Rows))
	return nil
}

func (s *ReportService) writeText(ctx context.Context, r *reportRun, name, text string) error {
	if err := r.recorder.WriteText(ctx, name, text); err != nil {
		return err
	}
	r.summary.Tables = append(r.summary.Tables, name)
	s.logger.Debug("Wrote report %s", name)
	return nil
}

// writeFigure writes a rendered figure, turning a render failure into a
// RENDER_ERROR.
func (s *ReportService) writeFigure(ctx context.Context, r *reportRun, name string, png []byte, renderErr error) error {
	if renderErr != nil {
		return errors.RenderError(name, renderErr)
	}
	if err := r.recorder.WriteFigure(ctx, name, png); err != nil {
		return err
	}
	r.summary.Figures = append(r.summary.Figures, name)
	s.logger.Debug("Wrote figure %s (%d bytes)", name, len(png))
	return nil
}

// modalBin returns the label of the most populated frequency bin
func modalBin(freq domainStats.FrequencyTable) string {
	best := -1
	label := ""
	for _, b := range freq.Bins {
		if b.Frequency > best {
			best = b.Frequency
			label = fmt.Sprintf("%s (%d claims)", b.Label, b.Frequency)
		}
	}
	return label
}
