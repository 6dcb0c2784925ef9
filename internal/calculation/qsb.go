package calculation

import (
	"fmt"

	"github.com/rdcc/credit-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// QSBAnalyzer evaluates Qualified Small Business status under IRC §41(h)
// and models the payroll-offset election's cash flow.
type QSBAnalyzer struct {
	// RevenueCeiling: gross receipts must be under $5,000,000.
	RevenueCeiling decimal.Decimal
	// MaxBusinessAge: no gross receipts more than 5 years back.
	MaxBusinessAge int
	// PayrollTaxCap: annual offset election cap, $500,000.
	PayrollTaxCap decimal.Decimal
}

// NewQSBAnalyzer creates an analyzer with the statutory QSB limits.
func NewQSBAnalyzer() *QSBAnalyzer {
	return &QSBAnalyzer{
		RevenueCeiling: decimal.NewFromInt(5_000_000),
		MaxBusinessAge: 5,
		PayrollTaxCap:  decimal.NewFromInt(500_000),
	}
}

// Analyze evaluates QSB eligibility and the payroll-offset cash flow for the
// recommended credit amount. Eligibility reasons are always populated, for
// satisfied and violated conditions alike.
func (qa *QSBAnalyzer) Analyze(grossReceipts decimal.Decimal, yearsInBusiness int, creditAmount decimal.Decimal) domain.QSBAnalysis {
	underCeiling := grossReceipts.LessThan(qa.RevenueCeiling)
	underAge := yearsInBusiness < qa.MaxBusinessAge

	analysis := domain.QSBAnalysis{
		IsEligible:         underCeiling && underAge,
		CurrentYearRevenue: grossReceipts,
		YearsInBusiness:    yearsInBusiness,
	}

	if underCeiling {
		analysis.EligibilityReasons = append(analysis.EligibilityReasons,
			fmt.Sprintf("Gross receipts of $%s are under the $%s ceiling.",
				grossReceipts.StringFixed(0), qa.RevenueCeiling.StringFixed(0)))
	} else {
		analysis.EligibilityReasons = append(analysis.EligibilityReasons,
			fmt.Sprintf("Gross receipts of $%s meet or exceed the $%s ceiling.",
				grossReceipts.StringFixed(0), qa.RevenueCeiling.StringFixed(0)))
	}
	if underAge {
		analysis.EligibilityReasons = append(analysis.EligibilityReasons,
			fmt.Sprintf("%d years in business is under the %d-year limit.",
				yearsInBusiness, qa.MaxBusinessAge))
	} else {
		analysis.EligibilityReasons = append(analysis.EligibilityReasons,
			fmt.Sprintf("%d years in business meets or exceeds the %d-year limit.",
				yearsInBusiness, qa.MaxBusinessAge))
	}

	analysis.PayrollOffsetAvailable = analysis.IsEligible
	analysis.CashFlowComparison.TraditionalCredit = traditionalCashFlow(creditAmount)

	// Breakeven compares traditional cash against the (possibly hypothetical)
	// offset election, so ineligible filers still get a payback horizon.
	offset := decimal.Min(creditAmount, qa.PayrollTaxCap)
	if creditAmount.IsPositive() {
		analysis.CashFlowComparison.YearToBreakeven = yearToBreakeven(
			analysis.CashFlowComparison.TraditionalCredit, offset)
	}

	if analysis.PayrollOffsetAvailable {
		quarterly := offset.Div(decimal.NewFromInt(4))
		analysis.OffsetAmount = offset
		analysis.QuarterlyBenefit = quarterly
		analysis.CashFlowComparison.WithPayrollOffset = domain.QuarterlyCashFlow{
			Q1: quarterly, Q2: quarterly, Q3: quarterly, Q4: quarterly,
			Total: offset,
		}
		analysis.RecommendedAction = "Elect the payroll tax offset for immediate quarterly cash flow."
	} else {
		analysis.RecommendedAction = "Apply the credit against income tax; track any unused amount as a carryforward."
	}

	return analysis
}

// traditionalCashFlow models applying the credit against income tax: nothing
// in the filing year, the full credit first usable in year 2.
func traditionalCashFlow(creditAmount decimal.Decimal) domain.AnnualCashFlow {
	return domain.AnnualCashFlow{
		Year1: decimal.Zero,
		Year2: creditAmount,
		Year3: decimal.Zero,
		Total: creditAmount,
	}
}

// yearToBreakeven finds the first year whose cumulative traditional cash
// catches up with cumulative offset cash. The offset pays out entirely in
// year 1 and holds flat after. Returns nil when the cumulative traditional
// cash never catches up within the modeled horizon.
func yearToBreakeven(traditional domain.AnnualCashFlow, offsetAmount decimal.Decimal) *int {
	years := []decimal.Decimal{traditional.Year1, traditional.Year2, traditional.Year3}
	cumTraditional := decimal.Zero
	for i, y := range years {
		cumTraditional = cumTraditional.Add(y)
		if cumTraditional.GreaterThanOrEqual(offsetAmount) {
			year := i + 1
			return &year
		}
	}
	return nil
}
