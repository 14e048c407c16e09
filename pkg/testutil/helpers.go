// Package testutil provides common utility functions for testing.
package testutil

import (
	"fmt"
	"time"

	"github.com/iwvelando/uprating-calculator/internal/parameters"
	"github.com/iwvelando/uprating-calculator/pkg/datetime"
)

// Source is a parameters.PathResolvable backed by a map.
type Source map[string]parameters.Parameter

// Resolve returns the parameter stored under path.
func (s Source) Resolve(path string) (parameters.Parameter, bool) {
	p, ok := s[path]
	return p, ok
}

// MonthlyParameter returns a parameter that only has values at the listed
// "YYYY-MM" keys.
func MonthlyParameter(values map[string]float64) parameters.Parameter {
	return parameters.Func(func(instant time.Time) (float64, bool) {
		v, ok := values[instant.Format("2006-01")]
		return v, ok
	})
}

// YearlyParameter puts each value in January of its year and nowhere else.
func YearlyParameter(values map[int]float64) parameters.Parameter {
	m := make(map[string]float64, len(values))
	for year, v := range values {
		m[fmt.Sprintf("%d-01", year)] = v
	}
	return MonthlyParameter(m)
}

// YearlySeries returns a step series with one entry on January 1st of each
// year, so every month of a year reads that year's value.
func YearlySeries(path string, values map[int]float64) *parameters.Series {
	entries := make([]parameters.Entry, 0, len(values))
	for year, v := range values {
		entries = append(entries, parameters.Entry{Instant: datetime.FirstOfMonth(year, 1), Value: v})
	}
	return parameters.NewSeries(path, entries)
}
