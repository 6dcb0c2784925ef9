package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdcc/credit-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TestCompletenessScorer tests the default confidence heuristic
func TestCompletenessScorer(t *testing.T) {
	scorer := CompletenessScorer{}

	tests := []struct {
		name        string
		in          NormalizedInput
		company     domain.CompanyProfile
		expected    string
		description string
	}{
		{
			name:        "Itemized input with no substitutions scores high",
			in:          NormalizedInput{WageMethod: domain.WageMethodItemized},
			company:     domain.CompanyProfile{IsFirstTimeFiler: true},
			expected:    domain.ConfidenceHigh,
			description: "nothing was estimated or replaced",
		},
		{
			name:        "Aggregate wage estimation drops to medium",
			in:          NormalizedInput{WageMethod: domain.WageMethodAggregate},
			company:     domain.CompanyProfile{IsFirstTimeFiler: true},
			expected:    domain.ConfidenceMedium,
			description: "one estimation method in play",
		},
		{
			name: "Aggregate plus clamped inputs drops to low",
			in: NormalizedInput{
				WageMethod: domain.WageMethodAggregate,
				Notes:      []string{"contractor cost was negative; treated as 0"},
			},
			company:     domain.CompanyProfile{IsFirstTimeFiler: true},
			expected:    domain.ConfidenceLow,
			description: "two independent downgrades",
		},
		{
			name: "Returning filer without history drops a level",
			in:   NormalizedInput{WageMethod: domain.WageMethodItemized},
			company: domain.CompanyProfile{
				IsFirstTimeFiler: false,
				PriorYearQREs:    nil,
			},
			expected:    domain.ConfidenceMedium,
			description: "missing prior-year QREs undermines the base calculation",
		},
		{
			name: "Returning filer with history stays high",
			in:   NormalizedInput{WageMethod: domain.WageMethodItemized},
			company: domain.CompanyProfile{
				IsFirstTimeFiler: false,
				PriorYearQREs:    []decimal.Decimal{decimal.NewFromInt(500000)},
			},
			expected:    domain.ConfidenceHigh,
			description: "complete history keeps full confidence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scorer.Score(tt.in, tt.company), tt.description)
		})
	}
}

// TestStaticInsights tests the industry knowledge-base lookup
func TestStaticInsights(t *testing.T) {
	insights := NewStaticInsights()

	software := insights.Insights("software")
	assert.NotEmpty(t, software)

	// Lookup is case- and whitespace-insensitive.
	assert.Equal(t, software, insights.Insights("  Software "))

	assert.Nil(t, insights.Insights("agriculture"), "unknown industry returns nothing")
	assert.Nil(t, insights.Insights(""))
}
