package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rdcc/credit-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per result).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.EnhancedCalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"TaxYear", "QREWages", "QREContractors", "QRESupplies", "QRECloudSoftware", "QRETotal",
		"CreditRate", "BaseAmount", "GrossCredit", "Recommendation", "FederalCredit",
		"QSBEligible", "PayrollOffset", "QuarterlyBenefit",
		"PricingTier", "ServiceFee", "NetBenefit", "ROIMultiple", "Confidence",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		strconv.Itoa(result.Legislative.TaxYear),
		result.QRE.Wages.StringFixed(2),
		result.QRE.Contractors.StringFixed(2),
		result.QRE.Supplies.StringFixed(2),
		result.QRE.CloudAndSoftware.StringFixed(2),
		result.QRE.Total.StringFixed(2),
		result.ASC.CreditRate.StringFixed(4),
		result.ASC.BaseAmount.StringFixed(2),
		result.ASC.CreditAmount.StringFixed(2),
		result.CreditOptions.Recommendation,
		result.FederalCredit.StringFixed(2),
		strconv.FormatBool(result.QSB.IsEligible),
		result.QSB.OffsetAmount.StringFixed(2),
		result.QSB.QuarterlyBenefit.StringFixed(2),
		strconv.Itoa(result.Pricing.Tier),
		result.Pricing.Price.StringFixed(2),
		result.ROI.NetBenefit.StringFixed(2),
		result.ROI.ROIMultiple,
		result.Confidence,
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
