package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdcc/credit-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TestWageMethodResolution tests the itemized vs. aggregate variant pick
func TestWageMethodResolution(t *testing.T) {
	normalizer := NewNormalizer()

	tests := []struct {
		name           string
		wages          domain.WageInput
		expectedMethod string
		expectNote     bool
		description    string
	}{
		{
			name: "Itemized entries resolve itemized",
			wages: domain.WageInput{
				Employees: []domain.EmployeeExpense{
					{Salary: decimal.NewFromInt(120000), RDTimePct: decimal.NewFromInt(80)},
				},
			},
			expectedMethod: domain.WageMethodItemized,
			description:    "employee list present",
		},
		{
			name: "Aggregate fields resolve aggregate",
			wages: domain.WageInput{
				TechnicalEmployees: 10,
				AvgSalary:          decimal.NewFromInt(95000),
				RDAllocationPct:    decimal.NewFromInt(100),
			},
			expectedMethod: domain.WageMethodAggregate,
			description:    "no employee list means aggregate",
		},
		{
			name: "Declared method contradicting data is corrected with a note",
			wages: domain.WageInput{
				Method: domain.WageMethodAggregate,
				Employees: []domain.EmployeeExpense{
					{Salary: decimal.NewFromInt(100000), RDTimePct: decimal.NewFromInt(50)},
				},
			},
			expectedMethod: domain.WageMethodItemized,
			expectNote:     true,
			description:    "itemized data wins and the substitution is recorded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := normalizer.Normalize(domain.ExpenseInput{Wages: tt.wages})

			assert.Equal(t, tt.expectedMethod, out.WageMethod, tt.description)
			assert.Equal(t, tt.expectedMethod, out.Expenses.Wages.Method)
			if tt.expectNote {
				assert.NotEmpty(t, out.Notes, tt.description)
			} else {
				assert.Empty(t, out.Notes, tt.description)
			}
		})
	}
}

// TestNormalizeClamping tests negative-to-zero and percentage-range clamps
func TestNormalizeClamping(t *testing.T) {
	normalizer := NewNormalizer()

	in := domain.ExpenseInput{
		Wages: domain.WageInput{
			Employees: []domain.EmployeeExpense{
				{Salary: decimal.NewFromInt(-50000), RDTimePct: decimal.NewFromInt(150), BenefitsRate: decimal.NewFromInt(20)},
			},
		},
		ContractorCost:      decimal.NewFromInt(-1000),
		ContractorRDTimePct: decimal.NewFromInt(-5),
		Supplies: []domain.SupplyItem{
			{Cost: decimal.NewFromInt(5000), RDAllocationPct: decimal.NewFromInt(120)},
		},
		CloudSoftware: []domain.SoftwareItem{
			{MonthlyCost: decimal.NewFromInt(-300), RDAllocationPct: decimal.NewFromInt(50)},
		},
	}

	out := normalizer.Normalize(in)

	employee := out.Expenses.Wages.Employees[0]
	assert.True(t, employee.Salary.IsZero(), "negative salary clamps to 0")
	assert.True(t, employee.RDTimePct.Equal(decimal.NewFromInt(100)), "R&D time caps at 100%%")
	assert.True(t, employee.BenefitsRate.Equal(decimal.NewFromInt(20)), "valid benefits rate passes through")

	assert.True(t, out.Expenses.ContractorCost.IsZero())
	assert.True(t, out.Expenses.ContractorRDTimePct.IsZero())
	assert.True(t, out.Expenses.Supplies[0].RDAllocationPct.Equal(decimal.NewFromInt(100)))
	assert.True(t, out.Expenses.CloudSoftware[0].MonthlyCost.IsZero())

	// one note per substitution: salary, rd time, contractor cost, contractor
	// pct, supply pct, software monthly cost
	assert.Len(t, out.Notes, 6)
}

// TestNormalizeNegativeHeadcount treats a negative aggregate headcount as zero
func TestNormalizeNegativeHeadcount(t *testing.T) {
	normalizer := NewNormalizer()

	out := normalizer.Normalize(domain.ExpenseInput{
		Wages: domain.WageInput{
			TechnicalEmployees: -4,
			AvgSalary:          decimal.NewFromInt(90000),
			RDAllocationPct:    decimal.NewFromInt(100),
		},
	})

	assert.Equal(t, 0, out.Expenses.Wages.TechnicalEmployees)
	assert.NotEmpty(t, out.Notes)
}

// TestNormalizeDoesNotMutateInput checks the snapshot semantics: the caller's
// input is untouched
func TestNormalizeDoesNotMutateInput(t *testing.T) {
	normalizer := NewNormalizer()

	in := domain.ExpenseInput{
		Wages: domain.WageInput{
			Employees: []domain.EmployeeExpense{
				{Salary: decimal.NewFromInt(-80000), RDTimePct: decimal.NewFromInt(150)},
			},
		},
		ContractorCost:      decimal.NewFromInt(-1000),
		ContractorRDTimePct: decimal.NewFromInt(200),
	}
	_ = normalizer.Normalize(in)

	assert.True(t, in.ContractorCost.Equal(decimal.NewFromInt(-1000)),
		"normalization works on a copy, never the caller's value")
	assert.True(t, in.ContractorRDTimePct.Equal(decimal.NewFromInt(200)))
	assert.True(t, in.Wages.Employees[0].Salary.Equal(decimal.NewFromInt(-80000)),
		"slice elements must not be clamped in place")
	assert.True(t, in.Wages.Employees[0].RDTimePct.Equal(decimal.NewFromInt(150)))
}
