// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/uprating-calculator/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for display and for logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// GrowthFactor returns the relative change from previous to current, e.g.
// 0.05 for a 5% increase.
func GrowthFactor(current, previous float64) float64 {
	return current/previous - 1
}

// Compound applies a growth factor to a value.
func Compound(value, factor float64) float64 {
	return value * (1 + factor)
}

// ToPercentage converts a factor to its percentage representation.
func ToPercentage(factor float64) float64 {
	return factor * constants.PercentageMultiplier
}
