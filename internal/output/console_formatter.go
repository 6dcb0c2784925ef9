package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rdcc/credit-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console-style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.EnhancedCalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FEDERAL R&D TAX CREDIT ESTIMATE")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Tax Year: %d    Confidence: %s\n", result.Legislative.TaxYear, strings.ToUpper(result.Confidence))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "QUALIFIED RESEARCH EXPENSES")
	fmt.Fprintf(&buf, "  Wages:            %s\n", FormatCurrency(result.QRE.Wages))
	fmt.Fprintf(&buf, "  Contractors:      %s\n", FormatCurrency(result.QRE.Contractors))
	fmt.Fprintf(&buf, "  Supplies:         %s\n", FormatCurrency(result.QRE.Supplies))
	fmt.Fprintf(&buf, "  Cloud & Software: %s\n", FormatCurrency(result.QRE.CloudAndSoftware))
	fmt.Fprintf(&buf, "  Total:            %s\n", FormatCurrency(result.QRE.Total))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "ASC METHOD: rate %s, base %s\n",
		FormatPercentage(result.ASC.CreditRate), FormatCurrency(result.ASC.BaseAmount))
	fmt.Fprintf(&buf, "  Gross Credit:     %s (effective rate %s)\n",
		FormatCurrency(result.ASC.CreditAmount), FormatPercentage(result.ASC.EffectiveCreditRate))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "§280C ELECTION")
	fmt.Fprintf(&buf, "  Full Credit:    %s (net benefit %s, complexity %s)\n",
		FormatCurrency(result.CreditOptions.FullCredit.Amount),
		FormatCurrency(result.CreditOptions.FullCredit.NetBenefit),
		result.CreditOptions.FullCredit.Complexity)
	fmt.Fprintf(&buf, "  Reduced Credit: %s (net benefit %s, complexity %s)\n",
		FormatCurrency(result.CreditOptions.ReducedCredit.Amount),
		FormatCurrency(result.CreditOptions.ReducedCredit.NetBenefit),
		result.CreditOptions.ReducedCredit.Complexity)
	fmt.Fprintf(&buf, "  Recommended: %s — %s\n", result.CreditOptions.Recommendation, result.CreditOptions.Reasoning)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "FEDERAL CREDIT: %s\n", FormatCurrency(result.FederalCredit))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "QUALIFIED SMALL BUSINESS")
	fmt.Fprintf(&buf, "  Eligible: %t\n", result.QSB.IsEligible)
	for _, reason := range result.QSB.EligibilityReasons {
		fmt.Fprintf(&buf, "    - %s\n", reason)
	}
	if result.QSB.PayrollOffsetAvailable {
		fmt.Fprintf(&buf, "  Payroll Offset: %s total, %s per quarter\n",
			FormatCurrency(result.QSB.OffsetAmount), FormatCurrency(result.QSB.QuarterlyBenefit))
	}
	fmt.Fprintf(&buf, "  Action: %s\n", result.QSB.RecommendedAction)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "PRICING: Tier %d (%s) %s for credits %s\n",
		result.Pricing.Tier, result.Pricing.Name, FormatCurrency(result.Pricing.Price), result.Pricing.CreditRange)
	fmt.Fprintf(&buf, "  Net Benefit: %s    ROI: %s", FormatCurrency(result.ROI.NetBenefit), result.ROI.ROIMultiple)
	if result.ROI.PaybackDays != nil {
		fmt.Fprintf(&buf, "    Payback: %d days", *result.ROI.PaybackDays)
	}
	fmt.Fprintln(&buf)

	for _, alert := range result.Legislative.Alerts {
		fmt.Fprintf(&buf, "\n[%s] %s\n", strings.ToUpper(alert.Kind), alert.Message)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(&buf, "\nWARNINGS")
		for _, w := range result.Warnings {
			fmt.Fprintf(&buf, "  - %s\n", w)
		}
	}
	if len(result.Assumptions) > 0 {
		fmt.Fprintln(&buf, "\nASSUMPTIONS")
		for _, a := range result.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}
	return buf.Bytes(), nil
}
