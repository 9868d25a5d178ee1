package valuation

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
)

// ReferencePrices are full-fineness metal prices per gram in the reference currency
type ReferencePrices struct {
	GoldPerGram   decimal.Decimal
	SilverPerGram decimal.Decimal
}

// Valuation is the result of pricing a set of entries.
// Every amount is in the reference currency.
type Valuation struct {
	Breakdown   domain.CategoryBreakdown
	GoldGrams   decimal.Decimal
	SilverGrams decimal.Decimal
	GrossWealth decimal.Decimal
	Liabilities decimal.Decimal
	NetWealth   decimal.Decimal
}

// NormalizePrices converts the entered metal prices into the reference currency once,
// so every entry is valued against the same figure.
// Non-positive prices stay zero.
func NormalizePrices(table *domain.CurrencyTable, prices domain.MetalPrices) ReferencePrices {
	return ReferencePrices{
		GoldPerGram:   toReference(table, prices.Gold),
		SilverPerGram: toReference(table, prices.Silver),
	}
}

func toReference(table *domain.CurrencyTable, price domain.MetalPrice) decimal.Decimal {
	if !price.IsSet() {
		return decimal.Zero
	}
	return table.ToReference(price.PricePerGram, price.Currency)
}

// ComputeNetWealth values every entry and sums them in the reference currency.
// Logic:
//  1. Metals: weight -> grams, gold price scaled by purity, value = grams x price
//  2. Cash, inventory and other assets: converted from their own currency
//  3. Liabilities: converted and subtracted
//  4. Net wealth never drops below zero
//
// Negative amounts are counted as zero. The function is pure.
func ComputeNetWealth(table *domain.CurrencyTable, entries []domain.AssetEntry, prices ReferencePrices) Valuation {
	v := Valuation{
		Breakdown: domain.CategoryBreakdown{
			Gold:              decimal.Zero,
			Silver:            decimal.Zero,
			Cash:              decimal.Zero,
			BusinessInventory: decimal.Zero,
			OtherAssets:       decimal.Zero,
			Liabilities:       decimal.Zero,
		},
		GoldGrams:   decimal.Zero,
		SilverGrams: decimal.Zero,
	}

	for _, entry := range entries {
		amount := entry.Amount
		if amount.IsNegative() {
			amount = decimal.Zero
		}

		switch entry.Category {
		case domain.AssetCategoryGold:
			grams := domain.WeightToGrams(amount, entry.Unit)
			v.GoldGrams = v.GoldGrams.Add(grams)
			v.Breakdown.Gold = v.Breakdown.Gold.Add(grams.Mul(domain.PurityAdjustedPrice(prices.GoldPerGram, entry.Purity)))
		case domain.AssetCategorySilver:
			grams := domain.WeightToGrams(amount, entry.Unit)
			v.SilverGrams = v.SilverGrams.Add(grams)
			v.Breakdown.Silver = v.Breakdown.Silver.Add(grams.Mul(prices.SilverPerGram))
		case domain.AssetCategoryCash:
			v.Breakdown.Cash = v.Breakdown.Cash.Add(table.ToReference(amount, entry.Currency))
		case domain.AssetCategoryBusinessInventory:
			v.Breakdown.BusinessInventory = v.Breakdown.BusinessInventory.Add(table.ToReference(amount, entry.Currency))
		case domain.AssetCategoryOtherAsset:
			v.Breakdown.OtherAssets = v.Breakdown.OtherAssets.Add(table.ToReference(amount, entry.Currency))
		case domain.AssetCategoryLiability:
			v.Breakdown.Liabilities = v.Breakdown.Liabilities.Add(table.ToReference(amount, entry.Currency))
		}
	}

	v.GrossWealth = v.Breakdown.Gold.
		Add(v.Breakdown.Silver).
		Add(v.Breakdown.Cash).
		Add(v.Breakdown.BusinessInventory).
		Add(v.Breakdown.OtherAssets)
	v.Liabilities = v.Breakdown.Liabilities

	v.NetWealth = v.GrossWealth.Sub(v.Liabilities)
	if v.NetWealth.IsNegative() {
		v.NetWealth = decimal.Zero
	}

	return v
}

// ToDisplay converts a reference-currency breakdown into the display currency
func ToDisplay(table *domain.CurrencyTable, b domain.CategoryBreakdown, code domain.CurrencyCode) domain.CategoryBreakdown {
	return domain.CategoryBreakdown{
		Gold:              table.FromReference(b.Gold, code),
		Silver:            table.FromReference(b.Silver, code),
		Cash:              table.FromReference(b.Cash, code),
		BusinessInventory: table.FromReference(b.BusinessInventory, code),
		OtherAssets:       table.FromReference(b.OtherAssets, code),
		Liabilities:       table.FromReference(b.Liabilities, code),
	}
}
