package calculation

import (
	"fmt"

	"github.com/rdcc/credit-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// YearRules holds the statutory facts for one tax year. Informational only:
// nothing here ever adjusts the credit amount.
type YearRules struct {
	TaxYear              int
	PayrollTaxCap        decimal.Decimal
	DeductionPercentage  decimal.Decimal
	AmortizationRequired bool
	DomesticAmortYears   int
	ForeignAmortYears    int
}

// LegislativeContextProvider attaches tax-year statutory facts and advisories.
// The rule table is immutable and versioned by tax year.
type LegislativeContextProvider struct {
	rules      map[int]YearRules
	latestYear int
}

// NewLegislativeContextProvider creates a provider with the 2022-2025 rules.
// §174 capitalization (5-year domestic, 15-year foreign) applies throughout;
// the deduction percentage is the year-one deductible share of domestic R&D
// costs under the half-year convention.
func NewLegislativeContextProvider() *LegislativeContextProvider {
	p := &LegislativeContextProvider{rules: make(map[int]YearRules)}
	for year := 2022; year <= 2025; year++ {
		p.rules[year] = YearRules{
			TaxYear:              year,
			PayrollTaxCap:        decimal.NewFromInt(500_000),
			DeductionPercentage:  decimal.NewFromInt(10),
			AmortizationRequired: true,
			DomesticAmortYears:   5,
			ForeignAmortYears:    15,
		}
		p.latestYear = year
	}
	return p
}

// Context returns the legislative context for a tax year. An unknown year
// falls back to the latest known year's rules and returns a non-empty
// assumption note; it never fails. payrollOffsetApplies adds the benefit
// alert about the offset election.
func (p *LegislativeContextProvider) Context(taxYear int, payrollOffsetApplies bool) (domain.LegislativeContext, string) {
	rules, ok := p.rules[taxYear]
	assumption := ""
	if !ok {
		rules = p.rules[p.latestYear]
		assumption = fmt.Sprintf(
			"Tax year %d is outside the supported rule table; %d statutory rules were applied instead.",
			taxYear, p.latestYear)
	}

	ctx := domain.LegislativeContext{
		TaxYear:              taxYear,
		PayrollTaxCap:        rules.PayrollTaxCap,
		DeductionPercentage:  rules.DeductionPercentage,
		AmortizationRequired: rules.AmortizationRequired,
	}

	if rules.AmortizationRequired {
		ctx.Alerts = append(ctx.Alerts, domain.Alert{
			Kind: domain.AlertWarning,
			Message: fmt.Sprintf(
				"§174 requires R&D expenses to be capitalized and amortized over %d years (%d for foreign research) instead of deducted immediately, which can significantly affect cash taxes even when the credit is claimed.",
				rules.DomesticAmortYears, rules.ForeignAmortYears),
		})
	}
	if payrollOffsetApplies {
		ctx.Alerts = append(ctx.Alerts, domain.Alert{
			Kind: domain.AlertBenefit,
			Message: fmt.Sprintf(
				"As a qualified small business you may apply up to $%s of the credit against employer payroll tax each year instead of waiting to offset income tax.",
				rules.PayrollTaxCap.StringFixed(0)),
		})
	}

	return ctx, assumption
}

// SupportedYears lists the years present in the rule table, for validation
// messages and documentation output.
func (p *LegislativeContextProvider) SupportedYears() (first, last int) {
	first = p.latestYear
	for y := range p.rules {
		if y < first {
			first = y
		}
	}
	return first, p.latestYear
}
