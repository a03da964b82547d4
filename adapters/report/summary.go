package report

import (
	"fmt"
	"path"
	"strings"

	domainReport "claimstats/domain/report"
	domainStats "claimstats/domain/stats"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Summary document names
const (
	SummaryMarkdownName = "summary.md"
	SummaryHTMLName     = "summary.html"
)

// Summary collects the headline numbers of a report run
type Summary struct {
	Claims          domainStats.DescriptiveStats
	Revenue         domainStats.Summary
	AgeClaimCorr    float64
	Welch           domainStats.WelchResult
	Anova           domainStats.AnovaResult
	ChiSquare       domainStats.ChiSquareResult
	ExpectedValue   domainStats.ExpectedValueTable
	Probability     domainStats.Probability
	Tables          []string // output file names, in write order
	Figures         []string // figure file names, in write order
	FigureLinkDir   string   // figures directory relative to the summary, slash separated
	MaxFrequencyBin string
}

// Markdown renders the summary as a Markdown document
func (s Summary) Markdown() []byte {
	var b strings.Builder

	b.WriteString("# Claims Statistical Report\n\n")

	b.WriteString("## Claim amounts\n\n")
	fmt.Fprintf(&b, "- Claims: %d\n", s.Claims.Count)
	fmt.Fprintf(&b, "- Mean: %s, median: %s, std: %s\n",
		domainReport.Fixed(s.Claims.Mean, 2), domainReport.Fixed(s.Claims.Median, 2), domainReport.Fixed(s.Claims.StdDev, 2))
	fmt.Fprintf(&b, "- IQR: %s, skewness: %s, kurtosis: %s\n",
		domainReport.Fixed(s.Claims.IQR, 2), domainReport.Fixed(s.Claims.Skewness, 2), domainReport.Fixed(s.Claims.Kurtosis, 2))
	if s.MaxFrequencyBin != "" {
		fmt.Fprintf(&b, "- Most frequent range: %s\n", s.MaxFrequencyBin)
	}
	fmt.Fprintf(&b, "- Correlation of Age and ClaimAmount: %s\n\n", domainReport.Fixed(s.AgeClaimCorr, 4))

	b.WriteString("## Hypothesis tests\n\n")
	b.WriteString("| Test | Statistic | p-value |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| Welch t (smoker vs non-smoker) | t = %s | %s |\n",
		domainReport.Fixed(s.Welch.T, 4), domainReport.Fixed(s.Welch.PValue, 6))
	fmt.Fprintf(&b, "| One-way ANOVA (%d departments) | F = %s | %s |\n",
		len(s.Anova.Groups), domainReport.Fixed(s.Anova.F, 4), domainReport.Fixed(s.Anova.PValue, 6))
	fmt.Fprintf(&b, "| Chi-square (Denied x IsSmoker, dof %d) | chi2 = %s | %s |\n\n",
		s.ChiSquare.DOF, domainReport.Fixed(s.ChiSquare.Chi2, 4), domainReport.Fixed(s.ChiSquare.PValue, 6))

	b.WriteString("## Expected value and probability\n\n")
	fmt.Fprintf(&b, "- Expected claim cost: %s\n", s.ExpectedValue.Total.StringFixed(2))
	fmt.Fprintf(&b, "- P(%s > %s): %s\n\n",
		s.Probability.Field, domainReport.Full(s.Probability.Threshold), domainReport.Fixed(s.Probability.Value, 4))

	b.WriteString("## Revenue\n\n")
	fmt.Fprintf(&b, "- Months: %d\n", s.Revenue.Count)
	fmt.Fprintf(&b, "- Mean: %s, min: %s, max: %s\n\n",
		domainReport.Fixed(s.Revenue.Mean, 2), domainReport.Fixed(s.Revenue.Min, 2), domainReport.Fixed(s.Revenue.Max, 2))

	if len(s.Figures) > 0 {
		b.WriteString("## Figures\n\n")
		for _, fig := range s.Figures {
			fmt.Fprintf(&b, "- [%s](%s)\n", fig, path.Join(s.FigureLinkDir, fig))
		}
		b.WriteString("\n")
	}

	if len(s.Tables) > 0 {
		b.WriteString("## Outputs\n\n")
		for _, name := range s.Tables {
			fmt.Fprintf(&b, "- [%s](%s)\n", name, name)
		}
	}

	return []byte(b.String())
}

// RenderHTML converts a Markdown document into a complete HTML page
func RenderHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: "Claims Statistical Report",
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML(md, p, renderer)
}
