package config

import (
	"fmt"
	"os"

	"github.com/rdcc/credit-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of calculation input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation input from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.CalculationInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput rejects inputs the engine cannot safely clamp, with
// field-level messages so the caller can correct them inline. Recoverable
// issues (negative line items, out-of-range percentages) are left for the
// engine's normalizer, which clamps and records a warning.
func (ip *InputParser) ValidateInput(input *domain.CalculationInput) error {
	if err := ip.validateCompany(&input.Company); err != nil {
		return err
	}
	return ip.validateExpenses(&input.Expenses)
}

func (ip *InputParser) validateCompany(c *domain.CompanyProfile) error {
	if c.TaxYear <= 0 {
		return fmt.Errorf("company.tax_year is required")
	}
	if c.TaxYear < 2000 || c.TaxYear > 2100 {
		return fmt.Errorf("company.tax_year %d is implausible", c.TaxYear)
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
	if c.IsFirstTimeFiler && len(c.PriorYearQREs) > 0 && anyPositive(c.PriorYearQREs) {
		return fmt.Errorf("company: first-time filers cannot also report prior-year QREs")
	}
	return nil
}

func (ip *InputParser) validateExpenses(e *domain.ExpenseInput) error {
	switch e.Wages.Method {
	case "", domain.WageMethodItemized, domain.WageMethodAggregate:
	default:
		return fmt.Errorf("expenses.wages.method must be %q or %q, got %q",
			domain.WageMethodItemized, domain.WageMethodAggregate, e.Wages.Method)
	}
	if e.Wages.Method == domain.WageMethodItemized && len(e.Wages.Employees) == 0 {
		return fmt.Errorf("expenses.wages: itemized method requires at least one employee")
	}
	if e.Wages.Method == domain.WageMethodAggregate && len(e.Wages.Employees) > 0 {
		return fmt.Errorf("expenses.wages: aggregate method cannot also list itemized employees")
	}
	return nil
}

func anyPositive(values []decimal.Decimal) bool {
	for _, v := range values {
		if v.IsPositive() {
			return true
		}
	}
	return false
}

// CreateExampleInput creates a starter input: a 10-person software startup,
// first filing year, all wages entered in aggregate.
func (ip *InputParser) CreateExampleInput() *domain.CalculationInput {
	return &domain.CalculationInput{
		Expenses: domain.ExpenseInput{
			Wages: domain.WageInput{
				Method:             domain.WageMethodAggregate,
				TechnicalEmployees: 10,
				AvgSalary:          decimal.NewFromInt(95000),
				RDAllocationPct:    decimal.NewFromInt(100),
			},
			ContractorCost:      decimal.NewFromInt(120000),
			ContractorRDTimePct: decimal.NewFromInt(80),
			Supplies: []domain.SupplyItem{
				{Description: "Prototype components", Cost: decimal.NewFromInt(18000), RDAllocationPct: decimal.NewFromInt(100)},
			},
			CloudSoftware: []domain.SoftwareItem{
				{Description: "Development and test environments", MonthlyCost: decimal.NewFromInt(4200), RDAllocationPct: decimal.NewFromInt(75)},
			},
		},
		Company: domain.CompanyProfile{
			Industry:         "software",
			GrossReceipts:    decimal.NewFromInt(2_000_000),
			YearsInBusiness:  3,
			TaxYear:          2025,
			IsFirstTimeFiler: true,
		},
	}
}
