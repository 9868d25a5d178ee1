package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// WeightUnit is the physical unit a metal holding was entered in
type WeightUnit string

const (
	WeightUnitGrams WeightUnit = "grams"
	WeightUnitVori  WeightUnit = "vori"
)

// GramsPerVori is the fixed size of one vori (bhori/tola variant used in South Asia)
var GramsPerVori = decimal.RequireFromString("11.66")

// WeightToGrams normalizes a weight to grams. Unknown units are read as grams.
func WeightToGrams(amount decimal.Decimal, unit WeightUnit) decimal.Decimal {
	if WeightUnit(strings.ToLower(string(unit))) == WeightUnitVori {
		return amount.Mul(GramsPerVori)
	}
	return amount
}

// Purity is a gold karat label. Full fineness is 24.
type Purity string

const (
	Purity24K Purity = "24"
	Purity22K Purity = "22"
	Purity21K Purity = "21"
	Purity19K Purity = "19"
	Purity18K Purity = "18"
	Purity14K Purity = "14"
)

var fullFineness = decimal.NewFromInt(24)

var purityKarats = map[Purity]decimal.Decimal{
	Purity24K: decimal.NewFromInt(24),
	Purity22K: decimal.NewFromInt(22),
	Purity21K: decimal.NewFromInt(21),
	Purity19K: decimal.NewFromInt(19),
	Purity18K: decimal.NewFromInt(18),
	Purity14K: decimal.NewFromInt(14),
}

// normalize accepts "18", "18k" and "18K"
func (p Purity) normalize() Purity {
	return Purity(strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(string(p))), "K"))
}

// IsKnown reports whether the label is one of the supported karat values
func (p Purity) IsKnown() bool {
	_, ok := purityKarats[p.normalize()]
	return ok
}

// Fraction returns the share of full fineness; 1 for absent or unknown labels
func (p Purity) Fraction() decimal.Decimal {
	karat, ok := purityKarats[p.normalize()]
	if !ok {
		return decimal.NewFromInt(1)
	}
	return karat.Div(fullFineness)
}

// PurityAdjustedPrice scales a full-fineness price per gram down to the given purity
func PurityAdjustedPrice(basePricePerGram decimal.Decimal, purity Purity) decimal.Decimal {
	karat, ok := purityKarats[purity.normalize()]
	if !ok {
		return basePricePerGram
	}
	// multiply before dividing so 22K and 21K prices stay exact where possible
	return basePricePerGram.Mul(karat).Div(fullFineness)
}
