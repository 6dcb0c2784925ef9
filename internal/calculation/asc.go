package calculation

import (
	"github.com/rdcc/credit-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ASCCalculator applies the Alternative Simplified Credit method of IRC §41(c)(5).
type ASCCalculator struct {
	// StartupRate applies when the filer has no prior-year QRE history: 6%.
	StartupRate decimal.Decimal
	// StandardRate applies above the base amount with history: 14%.
	StandardRate decimal.Decimal
	// BaseFraction of the trailing three-year average QRE: 50%.
	BaseFraction decimal.Decimal
}

// NewASCCalculator creates an ASC calculator with the statutory rates.
func NewASCCalculator() *ASCCalculator {
	return &ASCCalculator{
		StartupRate:  decimal.NewFromFloat(0.06),
		StandardRate: decimal.NewFromFloat(0.14),
		BaseFraction: decimal.NewFromFloat(0.50),
	}
}

// Calculate computes the ASC credit for the current-year QRE total.
//
// A first-time filer, or a returning filer whose prior-year QREs are all zero
// or absent, gets the 6% startup rate against a zero base. Otherwise the base
// is half the trailing average and the 14% rate applies to the excess.
// total=0 is a valid zero-credit outcome, not a fault.
func (ac *ASCCalculator) Calculate(totalQRE decimal.Decimal, isFirstTimeFiler bool, priorYearQREs []decimal.Decimal) domain.ASCResult {
	hasHistory := !isFirstTimeFiler && anyPositive(priorYearQREs)

	if !hasHistory {
		credit := totalQRE.Mul(ac.StartupRate)
		return domain.ASCResult{
			CreditRate:          ac.StartupRate,
			BaseAmount:          decimal.Zero,
			CreditAmount:        credit,
			EffectiveCreditRate: effectiveRate(credit, totalQRE),
		}
	}

	base := averageDecimal(priorYearQREs).Mul(ac.BaseFraction)
	excess := decimal.Max(decimal.Zero, totalQRE.Sub(base))
	credit := excess.Mul(ac.StandardRate)
	return domain.ASCResult{
		CreditRate:          ac.StandardRate,
		BaseAmount:          base,
		CreditAmount:        credit,
		EffectiveCreditRate: effectiveRate(credit, totalQRE),
	}
}

func anyPositive(values []decimal.Decimal) bool {
	for _, v := range values {
		if v.IsPositive() {
			return true
		}
	}
	return false
}

func averageDecimal(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(values))))
}

func effectiveRate(credit, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return credit.Div(total)
}
