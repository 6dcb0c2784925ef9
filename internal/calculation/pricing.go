package calculation

import (
	"fmt"

	"github.com/rdcc/credit-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// feeTier is one bucket in the flat-fee schedule. The schedule is a fixed
// lookup, deliberately not a percentage of the credit, to avoid
// contingency-fee characterization.
type feeTier struct {
	min   decimal.Decimal
	max   decimal.Decimal // exclusive; zero means unbounded
	price decimal.Decimal
	name  string
}

// PricingSchedule maps a federal credit to a flat-fee tier and ROI metrics.
type PricingSchedule struct {
	tiers []feeTier
}

// NewPricingSchedule creates the standard ascending flat-fee schedule.
func NewPricingSchedule() *PricingSchedule {
	mk := func(minK, maxK, price int64, name string) feeTier {
		t := feeTier{
			min:   decimal.NewFromInt(minK * 1000),
			price: decimal.NewFromInt(price),
			name:  name,
		}
		if maxK > 0 {
			t.max = decimal.NewFromInt(maxK * 1000)
		}
		return t
	}
	return &PricingSchedule{tiers: []feeTier{
		mk(0, 10, 500, "Starter"),
		mk(10, 20, 750, "Basic"),
		mk(20, 30, 1000, "Standard"),
		mk(30, 40, 1250, "Plus"),
		mk(40, 60, 1500, "Growth"),
		mk(60, 80, 2000, "Advanced"),
		mk(80, 100, 2500, "Premium"),
		mk(100, 0, 3000, "Enterprise"),
	}}
}

// TierFor returns the flat-fee tier for a federal credit amount.
func (ps *PricingSchedule) TierFor(federalCredit decimal.Decimal) domain.PricingTier {
	for i, t := range ps.tiers {
		if t.max.IsZero() || federalCredit.LessThan(t.max) {
			return domain.PricingTier{
				Tier:        i + 1,
				Name:        t.name,
				Price:       t.price,
				CreditRange: creditRangeLabel(t),
			}
		}
	}
	// Unreachable: the last tier is unbounded.
	last := ps.tiers[len(ps.tiers)-1]
	return domain.PricingTier{
		Tier: len(ps.tiers), Name: last.name, Price: last.price,
		CreditRange: creditRangeLabel(last),
	}
}

// ROI computes fee-relative return metrics. Payback is immediate under the
// payroll offset, follows the traditional breakeven horizon otherwise, and
// is indeterminate when no breakeven exists.
func (ps *PricingSchedule) ROI(federalCredit decimal.Decimal, tier domain.PricingTier, qsb domain.QSBAnalysis) domain.ROIAnalysis {
	roi := domain.ROIAnalysis{
		ServiceFee: tier.Price,
		NetBenefit: federalCredit.Sub(tier.Price),
	}
	multiple := decimal.Zero
	if tier.Price.IsPositive() {
		multiple = federalCredit.Div(tier.Price)
	}
	roi.ROIMultiple = multiple.Round(1).String() + "x"

	switch {
	case qsb.PayrollOffsetAvailable:
		days := 0
		roi.PaybackDays = &days
	case qsb.CashFlowComparison.YearToBreakeven != nil:
		days := *qsb.CashFlowComparison.YearToBreakeven * 365
		roi.PaybackDays = &days
	}
	return roi
}

func creditRangeLabel(t feeTier) string {
	if t.max.IsZero() {
		return fmt.Sprintf("$%sK+", t.min.Div(decimal.NewFromInt(1000)).StringFixed(0))
	}
	return fmt.Sprintf("$%sK-$%sK",
		t.min.Div(decimal.NewFromInt(1000)).StringFixed(0),
		t.max.Div(decimal.NewFromInt(1000)).StringFixed(0))
}
