// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/uprating-calculator/pkg/constants"
)

const (
	// InstantLayout is the format used to address indexed parameters.
	InstantLayout = constants.InstantLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseInstant parses a YYYY-MM-DD string into a UTC instant.
func ParseInstant(value string) (time.Time, error) {
	t, err := time.Parse(InstantLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant %q: %w", value, err)
	}
	return t, nil
}

// FirstOfMonth returns the instant at the first day of the given month.
func FirstOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// MonthLabel formats a month number as its two-digit representation,
// e.g. 1 = "01" and 12 = "12".
func MonthLabel(month int) string {
	return fmt.Sprintf("%02d", month)
}

// ValidMonth reports whether month is within 1..12.
func ValidMonth(month int) bool {
	return month >= 1 && month <= constants.MonthsPerYear
}
