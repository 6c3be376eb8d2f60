package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCurrencyRounding(t *testing.T) {
	usd := Currency{Code: "USD", MinorUnit: 2}
	jpy := Currency{Code: "JPY", MinorUnit: 0}

	assert.True(t, usd.Rounding().Equal(dec("0.01")))
	assert.True(t, jpy.Rounding().Equal(dec("1")))
}

func TestCurrencyIsZero(t *testing.T) {
	usd := Currency{Code: "USD", MinorUnit: 2}

	assert.True(t, usd.IsZero(dec("0")))
	assert.True(t, usd.IsZero(dec("0.004")))
	assert.True(t, usd.IsZero(dec("-0.004")))
	assert.False(t, usd.IsZero(dec("0.01")))
}

func TestCurrencyEqualAmounts(t *testing.T) {
	usd := Currency{Code: "USD", MinorUnit: 2}
	jpy := Currency{Code: "JPY", MinorUnit: 0}

	assert.True(t, usd.EqualAmounts(dec("20.00"), dec("20.004")))
	assert.False(t, usd.EqualAmounts(dec("20.00"), dec("20.01")))

	assert.True(t, jpy.EqualAmounts(dec("100"), dec("100.4")))
	assert.False(t, jpy.EqualAmounts(dec("100"), dec("101")))
}
