// Package money holds the currency type and the single rounding primitive
// every calculator uses. NEVER use float64 for money calculations.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	RON Currency = "RON"
	EUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Places is the precision of every monetary value leaving a calculator
const Places = 2

var cent = decimal.New(1, -Places)

// Round rounds to two decimal places, half away from zero.
// It is the only rounding boundary in the pricing engine.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// IsCent reports whether d is an exact multiple of 0.01
func IsCent(d decimal.Decimal) bool {
	return d.Mod(cent).IsZero()
}

// FromFloat converts a UI-supplied real into a decimal.
// Rates and dimensions arrive as float64 from flags and rate card files.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// Fixed renders an amount with exactly two decimals, "499.00"
func Fixed(amount decimal.Decimal) string {
	return amount.StringFixed(Places)
}

// Format renders an amount as "499.00 RON"
func Format(amount decimal.Decimal, currency Currency) string {
	return fmt.Sprintf("%s %s", Fixed(amount), currency)
}
