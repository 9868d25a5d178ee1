package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CurrencyCode is an ISO-4217 style currency code (e.g. "USD")
type CurrencyCode string

// ReferenceCurrency is the currency every cross-currency sum is computed in
const ReferenceCurrency CurrencyCode = "USD"

// CurrencyRate describes one row of the conversion table.
// RateToReference is how many units of the reference currency one unit of this currency is worth.
type CurrencyRate struct {
	Code            CurrencyCode
	DisplayName     string
	Symbol          string
	RateToReference decimal.Decimal
}

// DefaultCurrencyRates returns the static table shipped with the calculator
func DefaultCurrencyRates() []CurrencyRate {
	return []CurrencyRate{
		{Code: "USD", DisplayName: "US Dollar", Symbol: "$", RateToReference: decimal.NewFromInt(1)},
		{Code: "EUR", DisplayName: "Euro", Symbol: "€", RateToReference: decimal.RequireFromString("0.92")},
		{Code: "GBP", DisplayName: "British Pound", Symbol: "£", RateToReference: decimal.RequireFromString("0.79")},
		{Code: "AED", DisplayName: "UAE Dirham", Symbol: "د.إ", RateToReference: decimal.RequireFromString("0.27")},
		{Code: "PKR", DisplayName: "Pakistani Rupee", Symbol: "₨", RateToReference: decimal.RequireFromString("0.0036")},
		{Code: "INR", DisplayName: "Indian Rupee", Symbol: "₹", RateToReference: decimal.RequireFromString("0.012")},
		{Code: "SAR", DisplayName: "Saudi Riyal", Symbol: "﷼", RateToReference: decimal.RequireFromString("0.27")},
		{Code: "EGP", DisplayName: "Egyptian Pound", Symbol: "£", RateToReference: decimal.RequireFromString("0.020")},
		{Code: "BDT", DisplayName: "Bangladeshi Taka", Symbol: "৳", RateToReference: decimal.RequireFromString("0.0095")},
		{Code: "MYR", DisplayName: "Malaysian Ringgit", Symbol: "RM", RateToReference: decimal.RequireFromString("0.22")},
		{Code: "SGD", DisplayName: "Singapore Dollar", Symbol: "$", RateToReference: decimal.RequireFromString("0.74")},
		{Code: "AUD", DisplayName: "Australian Dollar", Symbol: "$", RateToReference: decimal.RequireFromString("0.65")},
		{Code: "CAD", DisplayName: "Canadian Dollar", Symbol: "$", RateToReference: decimal.RequireFromString("0.73")},
		{Code: "JPY", DisplayName: "Japanese Yen", Symbol: "¥", RateToReference: decimal.RequireFromString("0.0067")},
		{Code: "CNY", DisplayName: "Chinese Yuan", Symbol: "¥", RateToReference: decimal.RequireFromString("0.14")},
	}
}

// CurrencyTable is the immutable code -> rate mapping used for every conversion.
// It is safe for concurrent use because it is never mutated after construction.
type CurrencyTable struct {
	rates  map[CurrencyCode]CurrencyRate
	logger *zap.Logger
}

// NewCurrencyTable validates the rates and builds a table.
// The reference currency must be present with a rate of exactly 1.
func NewCurrencyTable(rates []CurrencyRate, logger *zap.Logger) (*CurrencyTable, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	table := &CurrencyTable{
		rates:  make(map[CurrencyCode]CurrencyRate, len(rates)),
		logger: logger,
	}

	for _, rate := range rates {
		if rate.Code == "" {
			return nil, errors.New("currency code cannot be empty")
		}
		if !rate.RateToReference.IsPositive() {
			return nil, fmt.Errorf("currency %s must have a positive rate", rate.Code)
		}
		if _, exists := table.rates[rate.Code]; exists {
			return nil, fmt.Errorf("currency %s is defined twice", rate.Code)
		}
		table.rates[rate.Code] = rate
	}

	ref, ok := table.rates[ReferenceCurrency]
	if !ok {
		return nil, fmt.Errorf("reference currency %s is missing", ReferenceCurrency)
	}
	if !ref.RateToReference.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("reference currency %s must have a rate of 1", ReferenceCurrency)
	}

	return table, nil
}

// DefaultCurrencyTable builds the table from DefaultCurrencyRates
func DefaultCurrencyTable(logger *zap.Logger) *CurrencyTable {
	table, err := NewCurrencyTable(DefaultCurrencyRates(), logger)
	if err != nil {
		panic(err)
	}
	return table
}

// Lookup returns the rate row for a code
func (t *CurrencyTable) Lookup(code CurrencyCode) (CurrencyRate, bool) {
	rate, ok := t.rates[code]
	return rate, ok
}

// Contains reports whether the code is in the table
func (t *CurrencyTable) Contains(code CurrencyCode) bool {
	_, ok := t.rates[code]
	return ok
}

// Codes returns every code in the table, sorted
func (t *CurrencyTable) Codes() []CurrencyCode {
	codes := make([]CurrencyCode, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Rates returns every rate row ordered by code
func (t *CurrencyTable) Rates() []CurrencyRate {
	codes := t.Codes()
	rates := make([]CurrencyRate, 0, len(codes))
	for _, code := range codes {
		rates = append(rates, t.rates[code])
	}
	return rates
}

// Symbol returns the display symbol for a code, "$" when the code is unknown
func (t *CurrencyTable) Symbol(code CurrencyCode) string {
	if rate, ok := t.rates[code]; ok {
		return rate.Symbol
	}
	return "$"
}

// ToReference converts an amount expressed in code into the reference currency.
// An unknown code is logged and treated as already being in the reference currency.
func (t *CurrencyTable) ToReference(amount decimal.Decimal, code CurrencyCode) decimal.Decimal {
	if code == ReferenceCurrency {
		return amount
	}
	rate, ok := t.rates[code]
	if !ok {
		t.logger.Warn("unknown currency, assuming reference currency", zap.String("currency", string(code)))
		return amount
	}
	return amount.Mul(rate.RateToReference)
}

// FromReference converts a reference-currency amount into code.
// It is the exact inverse of ToReference for every code in the table.
func (t *CurrencyTable) FromReference(amount decimal.Decimal, code CurrencyCode) decimal.Decimal {
	if code == ReferenceCurrency {
		return amount
	}
	rate, ok := t.rates[code]
	if !ok {
		t.logger.Warn("unknown currency, assuming reference currency", zap.String("currency", string(code)))
		return amount
	}
	return amount.Div(rate.RateToReference)
}
