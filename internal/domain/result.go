package domain

import (
	"github.com/shopspring/decimal"
)

// QREBreakdown is the qualified research expense total per category.
// Total always equals the exact sum of the four categories.
type QREBreakdown struct {
	Wages            decimal.Decimal `json:"wages"`
	Contractors      decimal.Decimal `json:"contractors"`
	Supplies         decimal.Decimal `json:"supplies"`
	CloudAndSoftware decimal.Decimal `json:"cloud_and_software"`
	Total            decimal.Decimal `json:"total"`
}

// ASCResult holds the Alternative Simplified Credit computation.
type ASCResult struct {
	CreditRate          decimal.Decimal `json:"credit_rate"`
	BaseAmount          decimal.Decimal `json:"base_amount"`
	CreditAmount        decimal.Decimal `json:"credit_amount"`
	EffectiveCreditRate decimal.Decimal `json:"effective_credit_rate"`
}

// Election names for the §280C comparison.
const (
	ElectionFullCredit    = "full_credit"
	ElectionReducedCredit = "reduced_credit"
)

// CreditOption is one side of the §280C election comparison.
type CreditOption struct {
	Amount     decimal.Decimal `json:"amount"`
	Complexity string          `json:"complexity"`
	NetBenefit decimal.Decimal `json:"net_benefit"`
}

// CreditOptions compares the full and reduced §280C elections.
type CreditOptions struct {
	FullCredit     CreditOption `json:"full_credit"`
	ReducedCredit  CreditOption `json:"reduced_credit"`
	Recommendation string       `json:"recommendation"`
	Reasoning      string       `json:"reasoning"`
}

// Recommended returns the option named by Recommendation.
func (co *CreditOptions) Recommended() CreditOption {
	if co.Recommendation == ElectionFullCredit {
		return co.FullCredit
	}
	return co.ReducedCredit
}

// QuarterlyCashFlow models payroll-offset cash received per quarter.
type QuarterlyCashFlow struct {
	Q1    decimal.Decimal `json:"q1"`
	Q2    decimal.Decimal `json:"q2"`
	Q3    decimal.Decimal `json:"q3"`
	Q4    decimal.Decimal `json:"q4"`
	Total decimal.Decimal `json:"total"`
}

// AnnualCashFlow models traditional income-tax credit cash by year.
// Year 1 is the filing year; the credit first becomes usable in year 2.
type AnnualCashFlow struct {
	Year1 decimal.Decimal `json:"year_1"`
	Year2 decimal.Decimal `json:"year_2"`
	Year3 decimal.Decimal `json:"year_3"`
	Total decimal.Decimal `json:"total"`
}

// CashFlowComparison contrasts the payroll-offset election with waiting to
// apply the credit against income tax.
type CashFlowComparison struct {
	WithPayrollOffset QuarterlyCashFlow `json:"with_payroll_offset"`
	TraditionalCredit AnnualCashFlow    `json:"traditional_credit"`

	// First year in which cumulative traditional cash catches up with
	// cumulative offset cash. Nil when the offset is not available.
	YearToBreakeven *int `json:"year_to_breakeven,omitempty"`
}

// QSBAnalysis holds Qualified Small Business eligibility and the payroll
// offset cash-flow model.
type QSBAnalysis struct {
	IsEligible             bool               `json:"is_eligible"`
	CurrentYearRevenue     decimal.Decimal    `json:"current_year_revenue"`
	YearsInBusiness        int                `json:"years_in_business"`
	EligibilityReasons     []string           `json:"eligibility_reasons"`
	PayrollOffsetAvailable bool               `json:"payroll_offset_available"`
	OffsetAmount           decimal.Decimal    `json:"offset_amount"`
	QuarterlyBenefit       decimal.Decimal    `json:"quarterly_benefit"`
	CashFlowComparison     CashFlowComparison `json:"cash_flow_comparison"`
	RecommendedAction      string             `json:"recommended_action"`
}

// Alert kinds emitted by the legislative context provider.
const (
	AlertWarning = "warning"
	AlertBenefit = "benefit"
	AlertInfo    = "info"
)

// Alert is a single legislative advisory attached to a result.
type Alert struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// LegislativeContext carries the statutory facts for the tax year.
// Informational only: nothing here adjusts the credit amount.
type LegislativeContext struct {
	TaxYear              int             `json:"tax_year"`
	PayrollTaxCap        decimal.Decimal `json:"payroll_tax_cap"`
	DeductionPercentage  decimal.Decimal `json:"deduction_percentage"`
	AmortizationRequired bool            `json:"amortization_required"`
	Alerts               []Alert         `json:"alerts"`
}

// PricingTier is one bucket of the flat-fee schedule.
type PricingTier struct {
	Tier        int             `json:"tier"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	CreditRange string          `json:"credit_range"`
}

// ROIAnalysis relates the federal credit to the service fee.
type ROIAnalysis struct {
	ServiceFee  decimal.Decimal `json:"service_fee"`
	NetBenefit  decimal.Decimal `json:"net_benefit"`
	ROIMultiple string          `json:"roi_multiple"`

	// Days until the fee is recovered: 0 with the payroll offset, the
	// traditional breakeven horizon otherwise, nil when neither applies.
	PaybackDays *int `json:"payback_days,omitempty"`
}

// Confidence levels for a calculation result.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// EnhancedCalculationResult is the fully-resolved output of one engine call.
// It is a pure value: downstream consumers treat it as opaque and never
// recompute or mutate the credit figures.
type EnhancedCalculationResult struct {
	QRE                 QREBreakdown       `json:"qre"`
	ASC                 ASCResult          `json:"asc"`
	CreditOptions       CreditOptions      `json:"credit_options"`
	QSB                 QSBAnalysis        `json:"qsb"`
	Legislative         LegislativeContext `json:"legislative"`
	Pricing             PricingTier        `json:"pricing"`
	ROI                 ROIAnalysis        `json:"roi"`
	FederalCredit       decimal.Decimal    `json:"federal_credit"`
	EffectiveCreditRate decimal.Decimal    `json:"effective_credit_rate"`
	Confidence          string             `json:"confidence"`
	Warnings            []string           `json:"warnings"`
	Assumptions         []string           `json:"assumptions"`
}
