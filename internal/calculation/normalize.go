package calculation

import (
	"fmt"

	"github.com/rdcc/credit-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// NormalizedInput is one expense snapshot after reconciliation: the wage
// variant resolved to a single method, negatives clamped to zero and
// allocation percentages clamped to [0,100]. Notes record every substitution
// so confidence scoring and the result's warning list can surface them.
type NormalizedInput struct {
	Expenses   domain.ExpenseInput
	WageMethod string
	Notes      []string
}

// Normalizer reconciles itemized vs. aggregate expense entry into one shape.
type Normalizer struct {
	Logger Logger
}

// NewNormalizer creates a normalizer with a no-op logger.
func NewNormalizer() *Normalizer {
	return &Normalizer{Logger: NopLogger{}}
}

// Normalize clamps an expense snapshot and resolves the wage entry method.
// It never fails: unusable values are replaced and noted.
func (n *Normalizer) Normalize(in domain.ExpenseInput) NormalizedInput {
	out := NormalizedInput{Expenses: in}
	// Slices share backing arrays with the caller's snapshot; copy before
	// clamping so the input is never mutated.
	out.Expenses.Wages.Employees = append([]domain.EmployeeExpense(nil), in.Wages.Employees...)
	out.Expenses.Supplies = append([]domain.SupplyItem(nil), in.Supplies...)
	out.Expenses.CloudSoftware = append([]domain.SoftwareItem(nil), in.CloudSoftware...)

	out.WageMethod = resolveWageMethod(in.Wages)
	if in.Wages.Method != "" && in.Wages.Method != out.WageMethod {
		out.note("wage entry method %q did not match the data provided; using %q", in.Wages.Method, out.WageMethod)
	}
	out.Expenses.Wages.Method = out.WageMethod

	for i := range out.Expenses.Wages.Employees {
		e := &out.Expenses.Wages.Employees[i]
		e.Salary = out.clampAmount(e.Salary, fmt.Sprintf("employee %d salary", i+1))
		e.RDTimePct = out.clampPct(e.RDTimePct, fmt.Sprintf("employee %d R&D time", i+1))
		e.BenefitsRate = out.clampAmount(e.BenefitsRate, fmt.Sprintf("employee %d benefits rate", i+1))
	}
	if out.Expenses.Wages.TechnicalEmployees < 0 {
		out.note("technical employee count was negative; treated as 0")
		out.Expenses.Wages.TechnicalEmployees = 0
	}
	out.Expenses.Wages.AvgSalary = out.clampAmount(out.Expenses.Wages.AvgSalary, "average salary")
	out.Expenses.Wages.RDAllocationPct = out.clampPct(out.Expenses.Wages.RDAllocationPct, "wage R&D allocation")

	out.Expenses.ContractorCost = out.clampAmount(out.Expenses.ContractorCost, "contractor cost")
	out.Expenses.ContractorRDTimePct = out.clampPct(out.Expenses.ContractorRDTimePct, "contractor R&D time")

	for i := range out.Expenses.Supplies {
		s := &out.Expenses.Supplies[i]
		s.Cost = out.clampAmount(s.Cost, fmt.Sprintf("supply item %d cost", i+1))
		s.RDAllocationPct = out.clampPct(s.RDAllocationPct, fmt.Sprintf("supply item %d R&D allocation", i+1))
	}
	for i := range out.Expenses.CloudSoftware {
		c := &out.Expenses.CloudSoftware[i]
		c.MonthlyCost = out.clampAmount(c.MonthlyCost, fmt.Sprintf("software item %d monthly cost", i+1))
		c.AnnualCost = out.clampAmount(c.AnnualCost, fmt.Sprintf("software item %d annual cost", i+1))
		c.RDAllocationPct = out.clampPct(c.RDAllocationPct, fmt.Sprintf("software item %d R&D allocation", i+1))
	}

	if n.Logger != nil && len(out.Notes) > 0 {
		n.Logger.Debugf("normalization applied %d substitutions", len(out.Notes))
	}
	return out
}

// resolveWageMethod picks the variant once, from the data actually present.
// Itemized entries win when both are supplied.
func resolveWageMethod(w domain.WageInput) string {
	if len(w.Employees) > 0 {
		return domain.WageMethodItemized
	}
	return domain.WageMethodAggregate
}

func (ni *NormalizedInput) note(format string, args ...any) {
	ni.Notes = append(ni.Notes, fmt.Sprintf(format, args...))
}

func (ni *NormalizedInput) clampAmount(v decimal.Decimal, field string) decimal.Decimal {
	if v.IsNegative() {
		ni.note("%s was negative; treated as 0", field)
		return decimal.Zero
	}
	return v
}

func (ni *NormalizedInput) clampPct(v decimal.Decimal, field string) decimal.Decimal {
	if v.IsNegative() {
		ni.note("%s percentage was negative; treated as 0%%", field)
		return decimal.Zero
	}
	if v.GreaterThan(decimalHundred) {
		ni.note("%s percentage exceeded 100%%; capped at 100%%", field)
		return decimalHundred
	}
	return v
}

var decimalHundred = decimal.NewFromInt(100)
