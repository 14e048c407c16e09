// Package rounding rounds projected values to a configurable base using a
// nearest, upwards or downwards method.
package rounding

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Method selects how a value is rounded to a multiple of the base.
type Method string

const (
	// Nearest rounds to the closest multiple, with ties away from zero.
	Nearest Method = "nearest"
	// Upwards rounds to the next multiple at or above the value.
	Upwards Method = "upwards"
	// Downwards rounds to the previous multiple at or below the value.
	Downwards Method = "downwards"
)

// snapTolerance is the relative distance within which a quotient is treated
// as a whole number of bases. It absorbs the representation error of bases
// such as 1/3 that have no exact decimal form.
var snapTolerance = decimal.New(1, -12)

// Methods returns the supported rounding methods in display order.
func Methods() []Method {
	return []Method{Nearest, Upwards, Downwards}
}

// ParseMethod converts a user supplied string into a Method.
func ParseMethod(value string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(value)))
	if !m.Valid() {
		return "", fmt.Errorf("expected rounding method of %s, %s or %s, got %q", Nearest, Upwards, Downwards, value)
	}
	return m, nil
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case Nearest, Upwards, Downwards:
		return true
	}
	return false
}

// RoundValue rounds value to a multiple of base using method.
//
// A base of zero disables rounding. Unknown methods return the value
// unchanged. Arithmetic is carried out in decimal so that rounding an already
// rounded value is a no-op even for fractional bases such as 0.1 or 1/3.
func RoundValue(value, base float64, method Method) float64 {
	if base == 0 || math.IsNaN(value) || math.IsInf(value, 0) || math.IsNaN(base) || math.IsInf(base, 0) {
		return value
	}

	d := decimal.NewFromFloat(value)
	b := decimal.NewFromFloat(base)
	quotient := snap(d.Div(b))

	switch method {
	case Nearest:
		quotient = quotient.Round(0)
	case Upwards:
		quotient = quotient.Ceil()
	case Downwards:
		quotient = quotient.Floor()
	default:
		return value
	}

	return quotient.Mul(b).InexactFloat64()
}

// snap returns the nearest whole number when q is within snapTolerance of it.
func snap(q decimal.Decimal) decimal.Decimal {
	whole := q.Round(0)
	limit := decimal.Max(whole.Abs(), decimal.NewFromInt(1)).Mul(snapTolerance)
	if q.Sub(whole).Abs().LessThanOrEqual(limit) {
		return whole
	}
	return q
}
