package calculation

import (
	"fmt"

	"github.com/rdcc/credit-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// §280C ELECTION:
//
// Full credit: the wage deduction must be reduced by the credit amount, which
// costs credit x corporate_rate in extra tax. Net benefit is therefore
// credit - credit x rate, NOT the face amount of the credit.
//
// Reduced credit under §280C(c)(3): the credit itself is cut to
// credit x (1 - rate) and no deduction adjustment is required, so the face
// amount is the net benefit.

// ElectionComparator compares the full and reduced §280C credit elections.
type ElectionComparator struct {
	CorporateTaxRate decimal.Decimal
}

// NewElectionComparator creates a comparator with the 21% corporate rate.
func NewElectionComparator() *ElectionComparator {
	return &ElectionComparator{CorporateTaxRate: decimal.NewFromFloat(0.21)}
}

// Compare evaluates both elections for a gross credit amount and marks
// exactly one recommended. Ties favor the reduced credit for its lower
// audit complexity.
func (ec *ElectionComparator) Compare(creditAmount decimal.Decimal) domain.CreditOptions {
	deductionCost := creditAmount.Mul(ec.CorporateTaxRate)

	full := domain.CreditOption{
		Amount:     creditAmount,
		Complexity: "high",
		NetBenefit: creditAmount.Sub(deductionCost),
	}
	reducedAmount := creditAmount.Sub(deductionCost)
	reduced := domain.CreditOption{
		Amount:     reducedAmount,
		Complexity: "low",
		NetBenefit: reducedAmount,
	}

	options := domain.CreditOptions{FullCredit: full, ReducedCredit: reduced}
	advantage := full.NetBenefit.Sub(reduced.NetBenefit)

	switch {
	case advantage.IsPositive():
		options.Recommendation = domain.ElectionFullCredit
		options.Reasoning = fmt.Sprintf(
			"Full credit nets $%s more after the §280C wage-deduction reduction.",
			advantage.StringFixed(2))
	case advantage.IsNegative():
		options.Recommendation = domain.ElectionReducedCredit
		options.Reasoning = fmt.Sprintf(
			"Reduced credit nets $%s more and avoids the wage-deduction addback.",
			advantage.Neg().StringFixed(2))
	default:
		options.Recommendation = domain.ElectionReducedCredit
		options.Reasoning = "Net benefit is identical under both elections; " +
			"the reduced credit avoids the wage-deduction addback and carries lower audit complexity."
	}
	return options
}
