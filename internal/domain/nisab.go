package domain

import "github.com/shopspring/decimal"

// Classical Nisab weights: 2.5 mithqal of gold and 52.5 dirham of silver
var (
	GoldNisabGrams   = decimal.RequireFromString("87.48")
	SilverNisabGrams = decimal.RequireFromString("612.36")
)

// NisabSnapshot holds both thresholds and the binding one, all in the reference currency.
// BindingMetal is empty when neither metal has a usable price.
type NisabSnapshot struct {
	GoldThreshold    decimal.Decimal
	SilverThreshold  decimal.Decimal
	BindingThreshold decimal.Decimal
	BindingMetal     Metal
}

// HasThreshold reports whether at least one metal produced a usable threshold
func (n NisabSnapshot) HasThreshold() bool {
	return n.BindingMetal != ""
}

// EvaluateNisab computes the thresholds from reference-currency prices per gram.
// A metal without a positive price does not take part in the minimum, so a missing
// gold price never produces a zero binding threshold while silver is known.
func EvaluateNisab(goldPricePerGram, silverPricePerGram decimal.Decimal) NisabSnapshot {
	snapshot := NisabSnapshot{
		GoldThreshold:    decimal.Zero,
		SilverThreshold:  decimal.Zero,
		BindingThreshold: decimal.Zero,
	}

	if goldPricePerGram.IsPositive() {
		snapshot.GoldThreshold = goldPricePerGram.Mul(GoldNisabGrams)
		snapshot.BindingThreshold = snapshot.GoldThreshold
		snapshot.BindingMetal = MetalGold
	}

	if silverPricePerGram.IsPositive() {
		snapshot.SilverThreshold = silverPricePerGram.Mul(SilverNisabGrams)
		if snapshot.BindingMetal == "" || snapshot.SilverThreshold.LessThan(snapshot.BindingThreshold) {
			snapshot.BindingThreshold = snapshot.SilverThreshold
			snapshot.BindingMetal = MetalSilver
		}
	}

	return snapshot
}
