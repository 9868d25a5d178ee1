package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ZakatRate is the annual rate for one lunar year of holding
var ZakatRate = decimal.RequireFromString("0.025")

// ObligationStatus is the outcome of comparing net wealth against the binding threshold
type ObligationStatus string

const (
	// ObligationIndeterminate means no usable metal price, so no threshold exists
	ObligationIndeterminate ObligationStatus = "INDETERMINATE"
	ObligationBelowNisab    ObligationStatus = "BELOW_THRESHOLD"
	ObligationDue           ObligationStatus = "DUE"
)

// Message is the short status line shown next to a result
func (s ObligationStatus) Message() string {
	switch s {
	case ObligationDue:
		return "Nisab met - Zakat due"
	case ObligationBelowNisab:
		return "Nisab not met"
	default:
		return "Enter valid gold or silver prices"
	}
}

// EvaluateObligation classifies net wealth and returns the due amount in the reference currency.
// The holding-period condition is assumed to be satisfied.
func EvaluateObligation(netWealth, bindingThreshold decimal.Decimal) (ObligationStatus, decimal.Decimal) {
	if !bindingThreshold.IsPositive() {
		return ObligationIndeterminate, decimal.Zero
	}
	if netWealth.LessThan(bindingThreshold) {
		return ObligationBelowNisab, decimal.Zero
	}
	return ObligationDue, netWealth.Mul(ZakatRate)
}

// CategoryBreakdown is the per-category valuation in one currency
type CategoryBreakdown struct {
	Gold              decimal.Decimal
	Silver            decimal.Decimal
	Cash              decimal.Decimal
	BusinessInventory decimal.Decimal
	OtherAssets       decimal.Decimal
	Liabilities       decimal.Decimal
}

// ObligationResult is the immutable output of one calculation.
// Reference amounts are in ReferenceCurrency, display amounts in DisplayCurrency.
type ObligationResult struct {
	Status                    ObligationStatus
	IsDue                     bool
	NetWealthReference        decimal.Decimal
	BindingThresholdReference decimal.Decimal
	DueAmountReference        decimal.Decimal

	DisplayCurrency         CurrencyCode
	NetWealthDisplay        decimal.Decimal
	BindingThresholdDisplay decimal.Decimal
	DueAmountDisplay        decimal.Decimal

	BreakdownReference CategoryBreakdown
	BreakdownDisplay   CategoryBreakdown
	GoldGrams          decimal.Decimal
	SilverGrams        decimal.Decimal

	Nisab        NisabSnapshot
	PricesUsed   MetalPrices
	CalculatedAt time.Time
}

// LastObligation is the persisted summary of the most recent calculation.
// It is overwritten wholesale on every calculation.
type LastObligation struct {
	AmountReference decimal.Decimal
	DisplayCurrency CurrencyCode
	AmountDisplay   decimal.Decimal
	CalculatedAt    time.Time
}

// CurrencyPreferences are the currencies the user last picked for prices and display
type CurrencyPreferences struct {
	GoldCurrency    CurrencyCode
	SilverCurrency  CurrencyCode
	DisplayCurrency CurrencyCode
}

// DefaultCurrencyPreferences puts everything in the reference currency
func DefaultCurrencyPreferences() CurrencyPreferences {
	return CurrencyPreferences{
		GoldCurrency:    ReferenceCurrency,
		SilverCurrency:  ReferenceCurrency,
		DisplayCurrency: ReferenceCurrency,
	}
}
