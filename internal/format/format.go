// Package format renders engine amounts as display currency strings.
package format

import (
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats v as a currency string ("$120,000.00", "€93.694,74"). An
// unknown currency code falls back to a plain fixed-point rendering. The
// float is routed through decimal to reach the currency's minor units without
// binary rounding artifacts.
func Amount(v float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	factor := decimal.New(1, int32(cur.Fraction))
	minor := decimal.NewFromFloat(v).Mul(factor).Round(0)
	return money.New(minor.IntPart(), currency).Display()
}
