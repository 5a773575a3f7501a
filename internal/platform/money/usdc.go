// Package money formats and parses USDC amounts held in the token's smallest
// unit (6 decimals).
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const Decimals = 6

// OneUSDC is 1.00 USDC in smallest units.
const OneUSDC int64 = 1_000_000

// Format renders an amount as "$1.50".
func Format(amount int64) string {
	return "$" + decimal.New(amount, -Decimals).StringFixed(2)
}

// FormatWithUnit renders an amount as "$1.50 USDC".
func FormatWithUnit(amount int64) string {
	return Format(amount) + " USDC"
}

// Parse reads a dollar amount such as "1.5" or "$2.00" into smallest units.
func Parse(raw string) (int64, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "$")
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse usdc amount %q: %w", raw, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("usdc amount must be non-negative: %s", raw)
	}
	if d.Exponent() < -Decimals {
		return 0, fmt.Errorf("usdc amount %q has more than %d decimals", raw, Decimals)
	}
	return d.Shift(Decimals).IntPart(), nil
}

// ApplyMultiplier scales an amount by a multiplier expressed in hundredths.
func ApplyMultiplier(amount int64, hundredths int) int64 {
	return decimal.NewFromInt(amount).Mul(decimal.NewFromInt(int64(hundredths))).Div(decimal.NewFromInt(100)).IntPart()
}
