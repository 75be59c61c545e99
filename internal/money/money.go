package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// All ledger arithmetic stays in decimal; values are rounded to two
// places only at presentation boundaries.

var Zero = decimal.Zero

// Round applies banker's rounding at 2 decimal places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// Percent returns base * rate / 100.
func Percent(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(decimal.NewFromInt(100))
}

// Parse converts a raw numeric field to a decimal. Empty input is
// reported distinctly from malformed input via the ok flag so callers
// can tell a missing field from a non-numeric one.
func Parse(raw string) (d decimal.Decimal, ok bool, empty bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, false
	}
	return d, true, false
}
