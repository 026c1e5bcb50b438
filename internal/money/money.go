// Package money wraps shopspring/decimal for euro amounts with
// 2-decimal rounding at every arithmetic boundary.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromInt creates decimal from int
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromFloat creates decimal from float with rounding to cents
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Mul multiplies two decimals, rounds to cents
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(2)
}

// Rate converts an integer percentage to its decimal factor,
// e.g. 20 -> 0.2
func Rate(percent int) decimal.Decimal {
	return decimal.NewFromInt(int64(percent)).Div(decimal.NewFromInt(100))
}

// Percent computes amount * (percent/100), rounded to cents
func Percent(amount decimal.Decimal, percent int) decimal.Decimal {
	if percent == 0 {
		return Zero
	}
	return amount.Mul(Rate(percent)).Round(2)
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// Format renders an amount for the printed document: two decimals,
// comma as decimal separator, euro suffix. E.g. "590,00 €".
func Format(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1) + " €"
}

// FormatPlain renders an amount with two decimals and a dot
// separator, for machine-facing output such as JSON and CSV.
func FormatPlain(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// IsPositive returns true if decimal is greater than zero
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}
