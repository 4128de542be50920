// Package money converts between decimal amounts and the integer cents stored in Postgres.
package money

import "github.com/shopspring/decimal"

// ToCents rounds d to the nearest cent and returns it as an integer.
func ToCents(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

// FromCents turns integer cents back into a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
