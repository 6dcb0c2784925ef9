package calculation

import (
	"fmt"

	"github.com/rdcc/credit-calculator/internal/domain"
)

// CalculationEngine orchestrates the full R&D credit pipeline: normalize,
// aggregate QREs, apply the ASC method, compare §280C elections, analyze QSB
// payroll-offset eligibility, attach legislative context, price the
// engagement and compose the result.
//
// The engine is pure: no I/O, no shared mutable state, identical input
// produces an identical result tree. Callers may invoke it concurrently and
// simply discard superseded results.
type CalculationEngine struct {
	Normalizer  *Normalizer
	QRECalc     *QREAggregator
	ASCCalc     *ASCCalculator
	Elections   *ElectionComparator
	QSBCalc     *QSBAnalyzer
	Legislative *LegislativeContextProvider
	Pricing     *PricingSchedule
	Confidence  ConfidenceScorer
	Insights    InsightsProvider
	Logger      Logger
}

// NewCalculationEngine creates an engine with the statutory defaults.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Normalizer:  NewNormalizer(),
		QRECalc:     NewQREAggregator(),
		ASCCalc:     NewASCCalculator(),
		Elections:   NewElectionComparator(),
		QSBCalc:     NewQSBAnalyzer(),
		Legislative: NewLegislativeContextProvider(),
		Pricing:     NewPricingSchedule(),
		Confidence:  CompletenessScorer{},
		Insights:    NewStaticInsights(),
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the engine. A nil logger resets to no-op.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
	if ce.Normalizer != nil {
		ce.Normalizer.Logger = ce.Logger
	}
}

// Calculate runs the full pipeline over one input snapshot. It fails only on
// invalid company facts; once input is accepted the computation is total and
// always returns a result.
func (ce *CalculationEngine) Calculate(input *domain.CalculationInput) (*domain.EnhancedCalculationResult, error) {
	if input == nil {
		return nil, fmt.Errorf("calculation input is required")
	}
	if err := validateCompany(&input.Company); err != nil {
		return nil, err
	}

	normalized := ce.Normalizer.Normalize(input.Expenses)
	qre := ce.QRECalc.Aggregate(normalized)
	ce.Logger.Debugf("QRE total $%s (wages $%s, contractors $%s, supplies $%s, cloud $%s)",
		qre.Total.StringFixed(2), qre.Wages.StringFixed(2), qre.Contractors.StringFixed(2),
		qre.Supplies.StringFixed(2), qre.CloudAndSoftware.StringFixed(2))

	asc := ce.ASCCalc.Calculate(qre.Total, input.Company.IsFirstTimeFiler, input.Company.PriorYearQREs)
	options := ce.Elections.Compare(asc.CreditAmount)
	federalCredit := options.Recommended().Amount

	qsb := ce.QSBCalc.Analyze(input.Company.GrossReceipts, input.Company.YearsInBusiness, federalCredit)
	ctx, fallbackNote := ce.Legislative.Context(input.Company.TaxYear, qsb.PayrollOffsetAvailable)

	tier := ce.Pricing.TierFor(federalCredit)
	roi := ce.Pricing.ROI(federalCredit, tier, qsb)

	result := &domain.EnhancedCalculationResult{
		QRE:                 qre,
		ASC:                 asc,
		CreditOptions:       options,
		QSB:                 qsb,
		Legislative:         ctx,
		Pricing:             tier,
		ROI:                 roi,
		FederalCredit:       federalCredit,
		EffectiveCreditRate: asc.EffectiveCreditRate,
		Confidence:          ce.Confidence.Score(normalized, input.Company),
		Warnings:            ce.collectWarnings(qre, normalized),
		Assumptions:         ce.collectAssumptions(normalized, input.Company, fallbackNote),
	}

	// A degenerate zero-QRE result must always carry at least one warning.
	if qre.Total.IsZero() && len(result.Warnings) == 0 {
		result.Warnings = append(result.Warnings,
			"No qualified research expenses were identified; the credit is zero.")
	}

	ce.Logger.Infof("federal credit $%s (%s election), confidence %s",
		federalCredit.StringFixed(2), options.Recommendation, result.Confidence)
	return result, nil
}

func (ce *CalculationEngine) collectWarnings(qre domain.QREBreakdown, in NormalizedInput) []string {
	var warnings []string
	if qre.Total.IsZero() {
		warnings = append(warnings,
			"No qualified research expenses were identified; the credit is zero.")
	}
	if qre.Contractors.GreaterThan(qre.Wages) && qre.Contractors.IsPositive() {
		warnings = append(warnings,
			"Contractor QREs exceed wage QREs; heavy reliance on contract research draws additional IRS scrutiny and is limited to 65% of cost.")
	}
	warnings = append(warnings, in.Notes...)
	return warnings
}

func (ce *CalculationEngine) collectAssumptions(in NormalizedInput, company domain.CompanyProfile, fallbackNote string) []string {
	assumptions := []string{
		fmt.Sprintf("A %s%% corporate tax rate was assumed for the §280C election comparison.",
			ce.Elections.CorporateTaxRate.Mul(decimalHundred).StringFixed(0)),
	}
	if in.WageMethod == domain.WageMethodAggregate {
		assumptions = append(assumptions,
			"Wage QREs were estimated from aggregate headcount and average salary rather than itemized payroll.")
	}
	if fallbackNote != "" {
		assumptions = append(assumptions, fallbackNote)
	}
	if ce.Insights != nil {
		assumptions = append(assumptions, ce.Insights.Insights(company.Industry)...)
	}
	return assumptions
}

// validateCompany rejects company facts the pipeline cannot safely clamp.
func validateCompany(c *domain.CompanyProfile) error {
	if c.TaxYear <= 0 {
		return fmt.Errorf("company.tax_year is required")
	}
	if c.GrossReceipts.IsNegative() {
		return fmt.Errorf("company.gross_receipts cannot be negative")
	}
	if c.YearsInBusiness < 0 {
		return fmt.Errorf("company.years_in_business cannot be negative")
	}
	if len(c.PriorYearQREs) > 3 {
		return fmt.Errorf("company.prior_year_qres accepts at most 3 years, got %d", len(c.PriorYearQREs))
	}
	for i, q := range c.PriorYearQREs {
		if q.IsNegative() {
			return fmt.Errorf("company.prior_year_qres[%d] cannot be negative", i)
		}
	}
	return nil
}
