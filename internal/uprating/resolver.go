// Package uprating projects a monetary value forward year by year using the
// growth of an indexed parameter.
package uprating

import (
	"github.com/iwvelando/uprating-calculator/internal/parameters"
	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/iwvelando/uprating-calculator/pkg/datetime"
)

// YearValue is the representative value chosen for a year.
type YearValue struct {
	Year  int
	Value float64
	Found bool
	Month MonthLabel
}

// MonthlyValues queries param at the first day of each month of year and
// returns the months that have data, keyed by month number.
func MonthlyValues(param parameters.Parameter, year int) map[int]float64 {
	values := make(map[int]float64)
	for month := 1; month <= constants.MonthsPerYear; month++ {
		if v, ok := param.ValueAt(datetime.FirstOfMonth(year, month)); ok {
			values[month] = v
		}
	}
	return values
}

// ResolveYear picks the representative value of param for year.
//
// Historical years (up to limits.HistoricalBoundary) report data
// retrospectively, so the latest month with data is used. Projection years
// are published once at the start of the year, so the earliest month is used.
func ResolveYear(param parameters.Parameter, year int, limits Limits) YearValue {
	result := YearValue{Year: year, Month: MonthLabel{Kind: Unavailable}}

	monthly := MonthlyValues(param, year)
	if len(monthly) == 0 {
		return result
	}

	chosen := 0
	for month := range monthly {
		switch {
		case chosen == 0:
			chosen = month
		case limits.IsProjectionYear(year) && month < chosen:
			chosen = month
		case !limits.IsProjectionYear(year) && month > chosen:
			chosen = month
		}
	}

	result.Value = monthly[chosen]
	result.Found = true
	result.Month = ResolvedMonth(chosen)
	return result
}
