// Package hcl - Safe CTY value conversion
// Rate card numbers are NEVER read through float64.
// Unknown or null values are rejected, not defaulted.
package hcl

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
)

// UnknownValueError indicates a value that must be known is unknown
type UnknownValueError struct {
	Context string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown value in %s", e.Context)
}

// ctyToDecimal converts a number (or numeric string) to an exact decimal
func ctyToDecimal(val cty.Value, context string) (decimal.Decimal, error) {
	// Check for unknown FIRST
	if !val.IsKnown() {
		return decimal.Zero, &UnknownValueError{Context: context}
	}
	if val.IsNull() {
		return decimal.Zero, fmt.Errorf("%s: value is required", context)
	}

	switch val.Type() {
	case cty.Number:
		// Text('f', -1) is the shortest form that round-trips, so 9.98 stays 9.98
		return decimal.NewFromString(val.AsBigFloat().Text('f', -1))
	case cty.String:
		d, err := decimal.NewFromString(val.AsString())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: %q is not a number", context, val.AsString())
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%s: expected number, got %s", context, val.Type().FriendlyName())
	}
}

// optionalDecimal is ctyToDecimal for attributes that may be omitted
func optionalDecimal(val cty.Value, context string) (decimal.Decimal, bool, error) {
	if val.IsKnown() && val.IsNull() {
		return decimal.Zero, false, nil
	}
	d, err := ctyToDecimal(val, context)
	return d, err == nil, err
}

// decimalToCty renders an exact decimal as a cty number
func decimalToCty(d decimal.Decimal) cty.Value {
	return cty.MustParseNumberVal(d.String())
}
