package testkit

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"claimstats/domain/dataset"
)

// ClaimsGeneratorConfig configures the synthetic claims and revenue data
type ClaimsGeneratorConfig struct {
	ClaimCount  int       `json:"claim_count"`
	MonthCount  int       `json:"month_count"`
	Departments []string  `json:"departments"`
	SmokerRate  float64   `json:"smoker_rate"`
	DenialRate  float64   `json:"denial_rate"`
	MissingAge  float64   `json:"missing_age"` // share of rows with a blank Age
	StartMonth  time.Time `json:"start_month"`
	BaseRevenue float64   `json:"base_revenue"`
	Seed        int64     `json:"seed"`
}

// DefaultClaimsConfig returns a small, fixed-seed configuration
func DefaultClaimsConfig() ClaimsGeneratorConfig {
	return ClaimsGeneratorConfig{
		ClaimCount:  200,
		MonthCount:  24,
		Departments: []string{"Cardiology", "Emergency", "Oncology", "Orthopedics"},
		SmokerRate:  0.3,
		DenialRate:  0.15,
		MissingAge:  0.02,
		StartMonth:  time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		BaseRevenue: 250000,
		Seed:        42,
	}
}

// ClaimsDataGenerator produces deterministic claims and revenue tables
type ClaimsDataGenerator struct {
	config ClaimsGeneratorConfig
	rng    *rand.Rand
}

// NewClaimsDataGenerator creates a generator seeded from config
func NewClaimsDataGenerator(config ClaimsGeneratorConfig) *ClaimsDataGenerator {
	return &ClaimsDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateClaims draws ClaimCount claims. Smokers and older patients claim
// more, and each department has its own cost level.
func (g *ClaimsDataGenerator) GenerateClaims() *dataset.ClaimsTable {
	n := g.config.ClaimCount
	amount := make([]float64, n)
	age := make([]float64, n)
	smoker := make([]float64, n)
	denied := make([]float64, n)
	dept := make([]string, n)

	for i := 0; i < n; i++ {
		d := g.rng.Intn(len(g.config.Departments))
		dept[i] = g.config.Departments[d]

		a := 18 + g.rng.Float64()*62
		age[i] = math.Round(a)
		if g.rng.Float64() < g.config.MissingAge {
			age[i] = math.NaN()
		}

		if g.rng.Float64() < g.config.SmokerRate {
			smoker[i] = 1
		}
		if g.rng.Float64() < g.config.DenialRate+0.1*smoker[i] {
			denied[i] = 1
		}

		// log-normal cost with department, age and smoker effects
		mu := 6.8 + 0.15*float64(d) + 0.01*(a-18) + 0.35*smoker[i]
		amount[i] = math.Round(math.Exp(mu+0.6*g.rng.NormFloat64())*100) / 100
	}

	claims, err := dataset.NewClaimsTable(amount, age, smoker, denied, dept)
	if err != nil {
		panic(err) // columns are built with equal length above
	}
	return claims
}

// GenerateRevenue draws MonthCount months of revenue with a mild trend and
// seasonality.
func (g *ClaimsDataGenerator) GenerateRevenue() *dataset.RevenueTable {
	n := g.config.MonthCount
	months := make([]time.Time, n)
	revenue := make([]float64, n)

	for i := 0; i < n; i++ {
		months[i] = g.config.StartMonth.AddDate(0, i, 0)
		season := 1 + 0.08*math.Sin(2*math.Pi*float64(i)/12)
		trend := 1 + 0.01*float64(i)
		noise := 1 + 0.05*g.rng.NormFloat64()
		revenue[i] = math.Round(g.config.BaseRevenue*season*trend*noise*100) / 100
	}

	revenueTable, err := dataset.NewRevenueTable(months, revenue)
	if err != nil {
		panic(err)
	}
	return revenueTable
}

// ClaimsCSV encodes a claims table in the input file format. NaN cells are
// written blank.
func ClaimsCSV(t *dataset.ClaimsTable) string {
	var b strings.Builder
	b.WriteString(strings.Join(dataset.ClaimsColumns, ",") + "\n")
	for i := 0; i < t.Len(); i++ {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s\n",
			cell(t.ClaimAmount[i]), cell(t.Age[i]), cell(t.IsSmoker[i]), cell(t.Denied[i]), t.Department[i])
	}
	return b.String()
}

// RevenueCSV encodes a revenue table in the input file format
func RevenueCSV(t *dataset.RevenueTable) string {
	var b strings.Builder
	b.WriteString(strings.Join(dataset.RevenueColumns, ",") + "\n")
	for i := 0; i < t.Len(); i++ {
		fmt.Fprintf(&b, "%s,%s\n", t.Month[i].Format("2006-01-02"), cell(t.Revenue[i]))
	}
	return b.String()
}

func cell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
