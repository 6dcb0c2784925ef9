package calculation

import (
	"github.com/rdcc/credit-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// QRE CALCULATION ASSUMPTIONS:
//
// 1. Wages: benefits are loaded onto salary before the R&D time allocation,
//    i.e. salary x (1 + benefits_rate/100) x (rd_time_pct/100).
//
// 2. Contractors: IRC §41(b)(3) allows only 65% of contract research cost.
//    The limitation compounds with the R&D-time reduction: the 65% applies
//    to the time-adjusted cost, not the raw invoice amount.
//
// 3. Cloud/software: monthly costs annualize at 12x; an explicit annual
//    cost overrides the monthly figure. No statutory cap beyond allocation.

// QREAggregator computes qualified research expenses per category.
type QREAggregator struct {
	ContractorLimitation decimal.Decimal
}

// NewQREAggregator creates an aggregator with the §41 contractor limitation.
func NewQREAggregator() *QREAggregator {
	return &QREAggregator{
		ContractorLimitation: decimal.NewFromFloat(0.65),
	}
}

// Aggregate computes the QRE breakdown from a normalized expense snapshot.
// An all-zero expense set yields total=0 without error.
func (qa *QREAggregator) Aggregate(in NormalizedInput) domain.QREBreakdown {
	wages := qa.wageQRE(in.Expenses.Wages, in.WageMethod)
	contractors := qa.contractorQRE(in.Expenses.ContractorCost, in.Expenses.ContractorRDTimePct)
	supplies := qa.supplyQRE(in.Expenses.Supplies)
	cloud := qa.cloudSoftwareQRE(in.Expenses.CloudSoftware)

	return domain.QREBreakdown{
		Wages:            wages,
		Contractors:      contractors,
		Supplies:         supplies,
		CloudAndSoftware: cloud,
		Total:            wages.Add(contractors).Add(supplies).Add(cloud),
	}
}

func (qa *QREAggregator) wageQRE(w domain.WageInput, method string) decimal.Decimal {
	if method == domain.WageMethodItemized {
		total := decimal.Zero
		for _, e := range w.Employees {
			loaded := e.Salary.Mul(decimal.NewFromInt(1).Add(e.BenefitsRate.Div(decimalHundred)))
			total = total.Add(loaded.Mul(e.RDTimePct.Div(decimalHundred)))
		}
		return total
	}
	headcount := decimal.NewFromInt(int64(w.TechnicalEmployees))
	return headcount.Mul(w.AvgSalary).Mul(w.RDAllocationPct.Div(decimalHundred))
}

func (qa *QREAggregator) contractorQRE(cost, rdTimePct decimal.Decimal) decimal.Decimal {
	timeAdjusted := cost.Mul(rdTimePct.Div(decimalHundred))
	return timeAdjusted.Mul(qa.ContractorLimitation)
}

func (qa *QREAggregator) supplyQRE(items []domain.SupplyItem) decimal.Decimal {
	total := decimal.Zero
	for _, s := range items {
		total = total.Add(s.Cost.Mul(s.RDAllocationPct.Div(decimalHundred)))
	}
	return total
}

func (qa *QREAggregator) cloudSoftwareQRE(items []domain.SoftwareItem) decimal.Decimal {
	total := decimal.Zero
	for _, c := range items {
		annual := c.AnnualCost
		if annual.IsZero() {
			annual = c.MonthlyCost.Mul(decimal.NewFromInt(12))
		}
		total = total.Add(annual.Mul(c.RDAllocationPct.Div(decimalHundred)))
	}
	return total
}
