package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/uprating-calculator/pkg/constants"
)

// ValidateValue checks that the amount to uprate is a finite, non-negative number.
func ValidateValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("value must be a finite number, got %v", value)
	}
	if value < 0 {
		return fmt.Errorf("value must be non-negative, got %.2f", value)
	}
	return nil
}

// ValidateStartYear checks that the start year lies within [minYear, maxYear].
func ValidateStartYear(year, minYear, maxYear int) error {
	if year < minYear || year > maxYear {
		return fmt.Errorf("start year must be between %d and %d, got %d", minYear, maxYear, year)
	}
	return nil
}

// ValidateHorizon checks that the number of projected years is at least one
// and at most constants.MaxHorizon.
func ValidateHorizon(horizon int) error {
	if horizon < 1 || horizon > constants.MaxHorizon {
		return fmt.Errorf("horizon must be between 1 and %d years, got %d", constants.MaxHorizon, horizon)
	}
	return nil
}

// ValidateRoundingBase checks the rounding base. Zero disables rounding.
func ValidateRoundingBase(base float64) error {
	if math.IsNaN(base) || math.IsInf(base, 0) {
		return fmt.Errorf("rounding base must be a finite number, got %v", base)
	}
	if base < 0 || base > constants.MaxRoundingBase {
		return fmt.Errorf("rounding base must be between 0 and %.0f, got %g", constants.MaxRoundingBase, base)
	}
	return nil
}

// ValidateParameterPath checks that path is one of the offered options.
func ValidateParameterPath(path string, options []string) error {
	for _, option := range options {
		if path == option {
			return nil
		}
	}
	return fmt.Errorf("unsupported uprating parameter %q, expected one of: %s", path, strings.Join(options, ", "))
}
