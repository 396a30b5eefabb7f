package domain

import (
	"fmt"
	"math"
)

// Money represents a monetary value stored in minor units.
type Money = int64

// RoundCents rounds a fractional minor-unit amount to the nearest cent,
// half away from zero.
func RoundCents(v float64) Money {
	return Money(math.Round(v))
}

// FormatMoney renders a minor-unit amount as a decimal string, e.g. 2500 -> "25.00".
func FormatMoney(m Money) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%d.%02d", sign, m/100, m%100)
}
