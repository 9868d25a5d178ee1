package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ParseAmount parses user input into a decimal.
// Anything that is not a finite number (empty, garbage, NaN, Inf) becomes zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders an amount with thousands separators and two decimals, prefixed by symbol.
// Rounding happens on the decimal, so large amounts keep every digit.
func FormatAmount(symbol string, amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if rest, ok := strings.CutPrefix(fixed, "-"); ok {
		sign, fixed = "-", rest
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	// beyond int64 the digits are printed ungrouped
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		whole = amountPrinter.Sprintf("%d", n)
	}

	formatted := sign + whole + "." + frac
	if symbol == "" {
		return formatted
	}
	return symbol + " " + formatted
}
