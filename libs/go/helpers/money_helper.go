package helpers

import (
	"fmt"
	"math"
)

// PercentOfCents returns round(total * pct / 100), half away from zero.
func PercentOfCents(totalCents int64, pct float64) int64 {
	return int64(math.Round(float64(totalCents) * pct / 100))
}

// EffectivePercentage expresses amount as a percentage of total. A zero total yields 0.
func EffectivePercentage(amountCents, totalCents int64) float64 {
	if totalCents <= 0 {
		return 0
	}
	return float64(amountCents) / float64(totalCents) * 100
}

// FormatCents renders minor units as a decimal string, e.g. 10050 -> "100.50".
func FormatCents(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	s := fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
	if currency == "" {
		return s
	}
	return s + " " + currency
}
