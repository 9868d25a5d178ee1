package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyTable_RoundTrip(t *testing.T) {
	table := DefaultCurrencyTable(nil)
	amounts := []string{"0.01", "1", "100", "12345.6789", "999999.99"}
	tolerance := decimal.RequireFromString("0.000000001")

	for _, code := range table.Codes() {
		for _, raw := range amounts {
			x := decimal.RequireFromString(raw)
			back := table.FromReference(table.ToReference(x, code), code)

			relErr := back.Sub(x).Abs().Div(x)
			assert.True(t, relErr.LessThanOrEqual(tolerance),
				"round trip of %s %s returned %s", raw, code, back)
		}
	}
}

func TestCurrencyTable_ToReference(t *testing.T) {
	table := DefaultCurrencyTable(nil)

	tests := []struct {
		name     string
		amount   decimal.Decimal
		code     CurrencyCode
		expected decimal.Decimal
	}{
		{"Reference currency is a no-op", decimal.NewFromInt(250), "USD", decimal.NewFromInt(250)},
		{"EUR multiplies by rate", decimal.NewFromInt(100), "EUR", decimal.NewFromInt(92)},
		{"PKR multiplies by rate", decimal.NewFromInt(100000), "PKR", decimal.NewFromInt(360)},
		{"Unknown code returns input unchanged", decimal.NewFromInt(42), "XYZ", decimal.NewFromInt(42)},
		{"Empty code returns input unchanged", decimal.NewFromInt(7), "", decimal.NewFromInt(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.ToReference(tt.amount, tt.code)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestCurrencyTable_FromReference(t *testing.T) {
	table := DefaultCurrencyTable(nil)

	assert.True(t, decimal.NewFromInt(100).Equal(table.FromReference(decimal.NewFromInt(92), "EUR")))
	assert.True(t, decimal.NewFromInt(250).Equal(table.FromReference(decimal.NewFromInt(250), "USD")))

	assert.NotPanics(t, func() {
		got := table.FromReference(decimal.NewFromInt(42), "XYZ")
		assert.True(t, decimal.NewFromInt(42).Equal(got))
	})
}

func TestCurrencyTable_Symbol(t *testing.T) {
	table := DefaultCurrencyTable(nil)

	assert.Equal(t, "€", table.Symbol("EUR"))
	assert.Equal(t, "₨", table.Symbol("PKR"))
	assert.Equal(t, "$", table.Symbol("XYZ"))
}

func TestCurrencyTable_Codes(t *testing.T) {
	table := DefaultCurrencyTable(nil)
	codes := table.Codes()

	require.Len(t, codes, 15)
	assert.Equal(t, CurrencyCode("AED"), codes[0])
	assert.Contains(t, codes, ReferenceCurrency)
	assert.True(t, table.Contains("JPY"))
	assert.False(t, table.Contains("XYZ"))
}

func TestNewCurrencyTable_Validation(t *testing.T) {
	usd := CurrencyRate{Code: "USD", DisplayName: "US Dollar", Symbol: "$", RateToReference: decimal.NewFromInt(1)}

	tests := []struct {
		name    string
		rates   []CurrencyRate
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Reference currency only should pass",
			rates:   []CurrencyRate{usd},
			wantErr: false,
		},
		{
			name:    "Missing reference currency should fail",
			rates:   []CurrencyRate{{Code: "EUR", RateToReference: decimal.RequireFromString("0.92")}},
			wantErr: true,
			errMsg:  "reference currency USD is missing",
		},
		{
			name:    "Reference rate other than 1 should fail",
			rates:   []CurrencyRate{{Code: "USD", RateToReference: decimal.RequireFromString("1.01")}},
			wantErr: true,
			errMsg:  "must have a rate of 1",
		},
		{
			name:    "Zero rate should fail",
			rates:   []CurrencyRate{usd, {Code: "EUR", RateToReference: decimal.Zero}},
			wantErr: true,
			errMsg:  "must have a positive rate",
		},
		{
			name:    "Duplicate code should fail",
			rates:   []CurrencyRate{usd, usd},
			wantErr: true,
			errMsg:  "defined twice",
		},
		{
			name:    "Empty code should fail",
			rates:   []CurrencyRate{usd, {Code: "", RateToReference: decimal.NewFromInt(1)}},
			wantErr: true,
			errMsg:  "currency code cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCurrencyTable(tt.rates, nil)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
