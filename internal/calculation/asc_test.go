package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestASCCalculation tests the Alternative Simplified Credit method
func TestASCCalculation(t *testing.T) {
	calculator := NewASCCalculator()

	tests := []struct {
		name           string
		totalQRE       decimal.Decimal
		firstTimeFiler bool
		priorQREs      []decimal.Decimal
		expectedRate   decimal.Decimal
		expectedBase   decimal.Decimal
		expectedCredit decimal.Decimal
		description    string
	}{
		{
			name:           "First-time filer gets 6% with zero base",
			totalQRE:       decimal.NewFromInt(950000),
			firstTimeFiler: true,
			priorQREs:      nil,
			expectedRate:   decimal.NewFromFloat(0.06),
			expectedBase:   decimal.Zero,
			expectedCredit: decimal.NewFromInt(57000),
			description:    "950000 x 6%",
		},
		{
			name:           "Returning filer with history gets 14% over base",
			totalQRE:       decimal.NewFromInt(950000),
			firstTimeFiler: false,
			priorQREs:      []decimal.Decimal{decimal.NewFromInt(500000), decimal.NewFromInt(520000), decimal.NewFromInt(540000)},
			expectedRate:   decimal.NewFromFloat(0.14),
			expectedBase:   decimal.NewFromInt(260000),
			expectedCredit: decimal.NewFromInt(96600),
			description:    "base = 0.5 x 520000 avg; credit = 0.14 x 690000",
		},
		{
			name:           "All-zero prior years collapse to startup treatment",
			totalQRE:       decimal.NewFromInt(950000),
			firstTimeFiler: false,
			priorQREs:      []decimal.Decimal{decimal.Zero, decimal.Zero, decimal.Zero},
			expectedRate:   decimal.NewFromFloat(0.06),
			expectedBase:   decimal.Zero,
			expectedCredit: decimal.NewFromInt(57000),
			description:    "zero history is numerically identical to first-time filing",
		},
		{
			name:           "Absent prior years collapse to startup treatment",
			totalQRE:       decimal.NewFromInt(100000),
			firstTimeFiler: false,
			priorQREs:      nil,
			expectedRate:   decimal.NewFromFloat(0.06),
			expectedBase:   decimal.Zero,
			expectedCredit: decimal.NewFromInt(6000),
			description:    "missing history falls back to the 6% rate",
		},
		{
			name:           "QRE below base floors at zero credit",
			totalQRE:       decimal.NewFromInt(200000),
			firstTimeFiler: false,
			priorQREs:      []decimal.Decimal{decimal.NewFromInt(500000), decimal.NewFromInt(500000), decimal.NewFromInt(500000)},
			expectedRate:   decimal.NewFromFloat(0.14),
			expectedBase:   decimal.NewFromInt(250000),
			expectedCredit: decimal.Zero,
			description:    "max(0, 200000-250000) x 14% = 0",
		},
		{
			name:           "Zero QRE is a valid zero-credit outcome",
			totalQRE:       decimal.Zero,
			firstTimeFiler: true,
			priorQREs:      nil,
			expectedRate:   decimal.NewFromFloat(0.06),
			expectedBase:   decimal.Zero,
			expectedCredit: decimal.Zero,
			description:    "total=0 is not a fault",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calculator.Calculate(tt.totalQRE, tt.firstTimeFiler, tt.priorQREs)

			assert.True(t, result.CreditRate.Equal(tt.expectedRate),
				"%s: rate expected %s, got %s", tt.description, tt.expectedRate.String(), result.CreditRate.String())
			assert.True(t, result.BaseAmount.Equal(tt.expectedBase),
				"%s: base expected %s, got %s", tt.description, tt.expectedBase.StringFixed(2), result.BaseAmount.StringFixed(2))
			assert.True(t, result.CreditAmount.Equal(tt.expectedCredit),
				"%s: credit expected %s, got %s", tt.description, tt.expectedCredit.StringFixed(2), result.CreditAmount.StringFixed(2))
		})
	}
}

// TestASCEffectiveCreditRate verifies credit/total, with 0 for a zero total
func TestASCEffectiveCreditRate(t *testing.T) {
	calculator := NewASCCalculator()

	withQRE := calculator.Calculate(decimal.NewFromInt(950000), true, nil)
	assert.True(t, withQRE.EffectiveCreditRate.Equal(decimal.NewFromFloat(0.06)),
		"first-time effective rate should be exactly the 6%% statutory rate, got %s", withQRE.EffectiveCreditRate.String())

	zero := calculator.Calculate(decimal.Zero, false, []decimal.Decimal{decimal.NewFromInt(100000)})
	assert.True(t, zero.EffectiveCreditRate.IsZero(), "zero total must not divide by zero")

	history := calculator.Calculate(decimal.NewFromInt(950000), false,
		[]decimal.Decimal{decimal.NewFromInt(500000), decimal.NewFromInt(520000), decimal.NewFromInt(540000)})
	expected := decimal.NewFromInt(96600).Div(decimal.NewFromInt(950000))
	difference := history.EffectiveCreditRate.Sub(expected).Abs()
	assert.True(t, difference.LessThan(decimal.NewFromFloat(0.0001)),
		"effective rate expected %s, got %s", expected.StringFixed(4), history.EffectiveCreditRate.StringFixed(4))
}
