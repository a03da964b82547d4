package figure

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	domainStats "claimstats/domain/stats"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure file names
const (
	FigClaimHistogram  = "hist_claim_amounts.png"
	FigClaimBox        = "box_claim_all.png"
	FigClaimBoxByDept  = "box_claim_by_dept.png"
	FigAgeClaimScatter = "scatter_age_claim.png"
	FigRevenueHist     = "hist_revenue.png"
)

// DefaultDPI is the raster resolution of every figure
const DefaultDPI = 160

var (
	barColor  = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	boxWidth  = vg.Points(28)
	deptWidth = vg.Points(18)
)

// Size is a figure's page size
type Size struct {
	Width, Height vg.Length
}

// Figure sizes in inches
var (
	SizeWide     = Size{Width: 7 * vg.Inch, Height: 4 * vg.Inch}
	SizeStandard = Size{Width: 6 * vg.Inch, Height: 4 * vg.Inch}
	SizeBroad    = Size{Width: 8 * vg.Inch, Height: 4 * vg.Inch}
)

// Renderer draws the report figures as PNG images held in memory
type Renderer struct {
	dpi int
}

// NewRenderer creates a renderer at the given DPI, or DefaultDPI when dpi
// is not positive.
func NewRenderer(dpi int) *Renderer {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Renderer{dpi: dpi}
}

// DPI returns the raster resolution
func (r *Renderer) DPI() int {
	return r.dpi
}

// ClaimHistogram draws the claim-amount histogram over the fixed-width bins
func (r *Renderer) ClaimHistogram(bins []domainStats.HistogramBin) ([]byte, error) {
	return r.histogram("Histogram of Claim Amounts", "Claim Amount", bins, SizeWide)
}

// RevenueHistogram draws the monthly revenue histogram
func (r *Renderer) RevenueHistogram(bins []domainStats.HistogramBin) ([]byte, error) {
	return r.histogram("Histogram of Monthly Revenue", "Revenue", bins, SizeWide)
}

func (r *Renderer) histogram(title, xLabel string, bins []domainStats.HistogramBin, size Size) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Frequency"

	if len(bins) > 0 {
		hBins := make([]plotter.HistogramBin, len(bins))
		for i, b := range bins {
			hBins[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: float64(b.Count)}
		}
		h := &plotter.Histogram{
			Bins:      hBins,
			Width:     bins[len(bins)-1].Max - bins[0].Min,
			FillColor: barColor,
			LineStyle: plotter.DefaultLineStyle,
		}
		p.Add(h)
	}

	return r.render(p, size)
}

// ClaimBox draws a single horizontal box plot of all claim amounts with
// outliers shown.
func (r *Renderer) ClaimBox(amounts []float64) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Box Plot: Claim Amounts (All)"
	p.X.Label.Text = "Claim Amount"
	p.HideY()

	values := finite(amounts)
	if len(values) > 0 {
		box, err := plotter.NewBoxPlot(boxWidth, 0, values)
		if err != nil {
			return nil, err
		}
		box.Horizontal = true
		p.Add(box)
	}

	return r.render(p, SizeStandard)
}

// ClaimBoxByDepartment draws one horizontal box per department. names are
// expected in ascending order and label the Y axis bottom to top.
func (r *Renderer) ClaimBoxByDepartment(names []string, groups [][]float64) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Box Plot: Claim Amounts by Department"
	p.X.Label.Text = "Claim Amount"
	p.Y.Label.Text = "Department"

	for i, g := range groups {
		values := finite(g)
		if len(values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(deptWidth, float64(i), values)
		if err != nil {
			return nil, fmt.Errorf("department %s: %w", names[i], err)
		}
		box.Horizontal = true
		p.Add(box)
	}
	if len(names) > 0 {
		p.NominalY(names...)
	}

	return r.render(p, SizeBroad)
}

// AgeClaimScatter plots Age against ClaimAmount. Rows missing either value
// are skipped.
func (r *Renderer) AgeClaimScatter(age, amount []float64) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Scatterplot: Age vs Claim Amount"
	p.X.Label.Text = "Age"
	p.Y.Label.Text = "Claim Amount"

	pts := make(plotter.XYs, 0, len(age))
	for i := range age {
		if i >= len(amount) || !isFinite(age[i]) || !isFinite(amount[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: age[i], Y: amount[i]})
	}
	if len(pts) > 0 {
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = barColor
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
	}

	return r.render(p, SizeStandard)
}

// render draws p onto a raster canvas and encodes it as PNG
func (r *Renderer) render(p *plot.Plot, size Size) (data []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("plot panicked: %v", rec)
		}
	}()

	c := vgimg.NewWith(vgimg.UseWH(size.Width, size.Height), vgimg.UseDPI(r.dpi))
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func finite(data []float64) plotter.Values {
	out := make(plotter.Values, 0, len(data))
	for _, v := range data {
		if isFinite(v) {
			out = append(out, v)
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
