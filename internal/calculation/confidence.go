package calculation

import (
	"strings"

	"github.com/rdcc/credit-calculator/internal/domain"
)

// ConfidenceScorer rates how much to trust a result given how complete the
// input was. Pluggable so the heuristic can be swapped without touching the
// engine.
type ConfidenceScorer interface {
	Score(in NormalizedInput, company domain.CompanyProfile) string
}

// CompletenessScorer is the default heuristic: fully itemized input with no
// substituted defaults scores high; estimation methods and substitutions
// each pull the score down one level.
type CompletenessScorer struct{}

func (CompletenessScorer) Score(in NormalizedInput, company domain.CompanyProfile) string {
	downgrades := 0
	if in.WageMethod == domain.WageMethodAggregate {
		downgrades++
	}
	if len(in.Notes) > 0 {
		downgrades++
	}
	if !company.IsFirstTimeFiler && len(company.PriorYearQREs) == 0 {
		downgrades++
	}

	switch {
	case downgrades == 0:
		return domain.ConfidenceHigh
	case downgrades == 1:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// InsightsProvider supplies per-industry context strings. A lookup, not a
// formula: the figures are curated knowledge-base content.
type InsightsProvider interface {
	Insights(industry string) []string
}

// StaticInsights is the built-in industry knowledge base.
type StaticInsights struct {
	byIndustry map[string][]string
}

// NewStaticInsights creates the default knowledge base.
func NewStaticInsights() *StaticInsights {
	return &StaticInsights{byIndustry: map[string][]string{
		"software": {
			"Software companies typically qualify 60-80% of engineering payroll as QREs.",
			"Cloud computing costs used for development and testing environments are commonly claimed.",
		},
		"biotech": {
			"Biotech filers typically qualify 70-90% of lab payroll and the majority of supply spend.",
			"Clinical-stage companies are frequent payroll-offset electors given pre-revenue status.",
		},
		"manufacturing": {
			"Manufacturers typically qualify 10-30% of engineering payroll tied to process improvement.",
			"Prototype material costs are a commonly overlooked supply QRE.",
		},
		"hardware": {
			"Hardware companies typically qualify 40-60% of engineering payroll as QREs.",
			"Prototype fabrication and first-article testing costs are commonly claimed supplies.",
		},
	}}
}

// Insights returns the knowledge-base strings for an industry, or nil when
// the industry is unknown or empty.
func (si *StaticInsights) Insights(industry string) []string {
	return si.byIndustry[strings.ToLower(strings.TrimSpace(industry))]
}
