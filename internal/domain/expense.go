package domain

import (
	"github.com/shopspring/decimal"
)

// Wage entry methods. The wage block is a tagged variant: either a list of
// itemized employees or an aggregate headcount estimate, never both.
const (
	WageMethodItemized  = "itemized"
	WageMethodAggregate = "aggregate"
)

// EmployeeExpense is a single itemized employee wage entry.
type EmployeeExpense struct {
	Name         string          `yaml:"name,omitempty" json:"name,omitempty"`
	Salary       decimal.Decimal `yaml:"salary" json:"salary"`
	RDTimePct    decimal.Decimal `yaml:"rd_time_pct" json:"rd_time_pct"`
	BenefitsRate decimal.Decimal `yaml:"benefits_rate" json:"benefits_rate"`
}

// WageInput holds wage expenses entered either itemized or as an aggregate.
type WageInput struct {
	Method    string            `yaml:"method,omitempty" json:"method,omitempty"`
	Employees []EmployeeExpense `yaml:"employees,omitempty" json:"employees,omitempty"`

	// Aggregate entry fields
	TechnicalEmployees int             `yaml:"technical_employees,omitempty" json:"technical_employees,omitempty"`
	AvgSalary          decimal.Decimal `yaml:"avg_salary,omitempty" json:"avg_salary,omitempty"`
	RDAllocationPct    decimal.Decimal `yaml:"rd_allocation_pct,omitempty" json:"rd_allocation_pct,omitempty"`
}

// SupplyItem is a single supply line item with an R&D allocation.
type SupplyItem struct {
	Description     string          `yaml:"description,omitempty" json:"description,omitempty"`
	Cost            decimal.Decimal `yaml:"cost" json:"cost"`
	RDAllocationPct decimal.Decimal `yaml:"rd_allocation_pct" json:"rd_allocation_pct"`
}

// SoftwareItem is a cloud or software line item. Either monthly_cost (annualized
// at 12x) or annual_cost may be given; annual_cost wins when both are present.
type SoftwareItem struct {
	Description     string          `yaml:"description,omitempty" json:"description,omitempty"`
	MonthlyCost     decimal.Decimal `yaml:"monthly_cost,omitempty" json:"monthly_cost,omitempty"`
	AnnualCost      decimal.Decimal `yaml:"annual_cost,omitempty" json:"annual_cost,omitempty"`
	RDAllocationPct decimal.Decimal `yaml:"rd_allocation_pct" json:"rd_allocation_pct"`
}

// ExpenseInput is one snapshot of raw expense entry for a tax year.
type ExpenseInput struct {
	Wages               WageInput       `yaml:"wages" json:"wages"`
	ContractorCost      decimal.Decimal `yaml:"contractor_cost" json:"contractor_cost"`
	ContractorRDTimePct decimal.Decimal `yaml:"contractor_rd_time_pct" json:"contractor_rd_time_pct"`
	Supplies            []SupplyItem    `yaml:"supplies,omitempty" json:"supplies,omitempty"`
	CloudSoftware       []SoftwareItem  `yaml:"cloud_software,omitempty" json:"cloud_software,omitempty"`
}

// CompanyProfile carries the company facts needed alongside the expenses.
type CompanyProfile struct {
	Industry         string            `yaml:"industry,omitempty" json:"industry,omitempty"`
	GrossReceipts    decimal.Decimal   `yaml:"gross_receipts" json:"gross_receipts"`
	YearsInBusiness  int               `yaml:"years_in_business" json:"years_in_business"`
	TaxYear          int               `yaml:"tax_year" json:"tax_year"`
	IsFirstTimeFiler bool              `yaml:"is_first_time_filer" json:"is_first_time_filer"`
	PriorYearQREs    []decimal.Decimal `yaml:"prior_year_qres,omitempty" json:"prior_year_qres,omitempty"`
}

// CalculationInput is the complete input snapshot for one engine call.
type CalculationInput struct {
	Expenses ExpenseInput   `yaml:"expenses" json:"expenses"`
	Company  CompanyProfile `yaml:"company" json:"company"`
}

// HasPriorQREHistory reports whether any prior-year QRE is positive.
func (cp *CompanyProfile) HasPriorQREHistory() bool {
	for _, q := range cp.PriorYearQREs {
		if q.IsPositive() {
			return true
		}
	}
	return false
}
