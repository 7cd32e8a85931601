// Package renderer turns liquidity projections into markdown reports.
package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats an amount in the given currency. Without currency the amount
// is a plain number with two decimals.
func Amount(d decimal.Decimal, currency string) string {
	if currency == "" {
		return d.StringFixed(2)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// Days formats a number of days with one decimal.
func Days(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.StringFixed(1) + " days"
}

// Share formats a fraction as a percentage.
func Share(d decimal.Decimal) string {
	return d.Shift(2).StringFixed(1) + "%"
}
