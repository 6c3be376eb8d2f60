// Package numcmp provides rounding-aware decimal comparisons for quantities
// and monetary amounts, so that drift below a field's precision never counts
// as a change.
package numcmp

import "github.com/shopspring/decimal"

// EqualDigits reports whether a and b are equal once both are rounded to the
// given number of decimal digits.
func EqualDigits(a, b decimal.Decimal, digits int32) bool {
	return a.Round(digits).Equal(b.Round(digits))
}

// EqualRounding reports whether a and b are equal once both are rounded to
// the given rounding increment (e.g. 0.01 or 0.05). A non-positive increment
// falls back to exact comparison.
func EqualRounding(a, b, increment decimal.Decimal) bool {
	if increment.Sign() <= 0 {
		return a.Equal(b)
	}
	return RoundToIncrement(a, increment).Equal(RoundToIncrement(b, increment))
}

// RoundToIncrement rounds v to the nearest multiple of the increment.
func RoundToIncrement(v, increment decimal.Decimal) decimal.Decimal {
	if increment.Sign() <= 0 {
		return v
	}
	return v.Div(increment).Round(0).Mul(increment)
}
