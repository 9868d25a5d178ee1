package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWeightToGrams(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		unit     WeightUnit
		expected decimal.Decimal
	}{
		{"Grams are unchanged", decimal.NewFromInt(50), WeightUnitGrams, decimal.NewFromInt(50)},
		{"10 vori is 116.6 grams", decimal.NewFromInt(10), WeightUnitVori, decimal.RequireFromString("116.6")},
		{"Upper-case unit is accepted", decimal.NewFromInt(1), WeightUnit("VORI"), decimal.RequireFromString("11.66")},
		{"Unknown unit defaults to grams", decimal.NewFromInt(3), WeightUnit("ounce"), decimal.NewFromInt(3)},
		{"Missing unit defaults to grams", decimal.NewFromInt(3), "", decimal.NewFromInt(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightToGrams(tt.amount, tt.unit)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestPurityAdjustedPrice(t *testing.T) {
	base := decimal.NewFromInt(70)

	tests := []struct {
		name     string
		purity   Purity
		expected decimal.Decimal
	}{
		{"24K is full price", Purity24K, decimal.NewFromInt(70)},
		{"18K is three quarters", Purity18K, decimal.RequireFromString("52.5")},
		{"21K is seven eighths", Purity21K, decimal.RequireFromString("61.25")},
		{"Label with K suffix", Purity("18k"), decimal.RequireFromString("52.5")},
		{"Unknown label defaults to full fineness", Purity("9"), decimal.NewFromInt(70)},
		{"Missing label defaults to full fineness", "", decimal.NewFromInt(70)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PurityAdjustedPrice(base, tt.purity)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestPurity_Fraction(t *testing.T) {
	assert.True(t, decimal.RequireFromString("0.75").Equal(Purity18K.Fraction()))
	assert.True(t, decimal.NewFromInt(1).Equal(Purity("").Fraction()))
	assert.True(t, Purity22K.IsKnown())
	assert.False(t, Purity("9").IsKnown())
}
