package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetCategory is the closed set of entry kinds the valuation engine understands
type AssetCategory string

const (
	AssetCategoryGold              AssetCategory = "GOLD"
	AssetCategorySilver            AssetCategory = "SILVER"
	AssetCategoryCash              AssetCategory = "CASH"
	AssetCategoryBusinessInventory AssetCategory = "BUSINESS_INVENTORY"
	AssetCategoryOtherAsset        AssetCategory = "OTHER_ASSET"
	AssetCategoryLiability         AssetCategory = "LIABILITY"
)

// IsMetal reports whether entries of this category are weighed rather than priced in a currency
func (c AssetCategory) IsMetal() bool {
	return c == AssetCategoryGold || c == AssetCategorySilver
}

// IsKnown reports whether the category belongs to the closed set
func (c AssetCategory) IsKnown() bool {
	switch c {
	case AssetCategoryGold, AssetCategorySilver, AssetCategoryCash,
		AssetCategoryBusinessInventory, AssetCategoryOtherAsset, AssetCategoryLiability:
		return true
	}
	return false
}

// AssetEntry is one declared holding or debt.
// Metals use Amount as a weight in Unit (and Purity for gold); everything else uses Amount in Currency.
type AssetEntry struct {
	Category AssetCategory
	Amount   decimal.Decimal
	Currency CurrencyCode // ignored for metals
	Unit     WeightUnit   // metals only
	Purity   Purity       // gold only
}

// Validate ensures the entry adheres to domain rules
func (e AssetEntry) Validate() error {
	if !e.Category.IsKnown() {
		return fmt.Errorf("%w: asset category %q is invalid", ErrValidation, e.Category)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: %s amount cannot be negative", ErrValidation, e.Category)
	}
	return nil
}

// Metal identifies one of the two Nisab reference metals
type Metal string

const (
	MetalGold   Metal = "GOLD"
	MetalSilver Metal = "SILVER"
)

// MetalPrice is a full-fineness price per gram in some currency
type MetalPrice struct {
	PricePerGram decimal.Decimal
	Currency     CurrencyCode
}

// IsSet reports whether a usable (positive) price was supplied
func (p MetalPrice) IsSet() bool {
	return p.PricePerGram.IsPositive()
}

// MetalPrices groups the gold and silver prices of one calculation
type MetalPrices struct {
	Gold   MetalPrice
	Silver MetalPrice
}

// For returns the price of the given metal
func (p MetalPrices) For(metal Metal) MetalPrice {
	if metal == MetalSilver {
		return p.Silver
	}
	return p.Gold
}

// CalculationInput is everything one obligation calculation needs.
// It is built by the caller and never mutated by the engine.
type CalculationInput struct {
	Entries         []AssetEntry
	Prices          MetalPrices
	DisplayCurrency CurrencyCode
	// UseLivePrices fills unset metal prices from the last known external price hint
	UseLivePrices bool
}

// Validate checks every entry; the first failure is returned
func (in CalculationInput) Validate() error {
	for i, entry := range in.Entries {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	if in.Prices.Gold.PricePerGram.IsNegative() || in.Prices.Silver.PricePerGram.IsNegative() {
		return fmt.Errorf("%w: metal prices cannot be negative", ErrValidation)
	}
	return nil
}
