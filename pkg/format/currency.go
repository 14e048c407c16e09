// Package format renders projected amounts and factors for display.
package format

import (
	"fmt"
	"math"
	"strconv"

	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/iwvelando/uprating-calculator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := NumericCurrency(math.Abs(amount))
	if mathutil.Round(amount) < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	rounded := mathutil.Round(amount)
	if rounded == 0 {
		// avoid "-0.00"
		rounded = 0
	}
	return printer.Sprintf("%.2f", rounded)
}

// Factor returns an uprating factor as a percentage with two decimals
// (e.g., "3.33%").
func Factor(factor float64) string {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return constants.NotAvailable
	}
	return fmt.Sprintf("%.2f%%", mathutil.ToPercentage(factor))
}

// Base renders a rounding base without trailing zeros (e.g., "1", "0.05").
func Base(base float64) string {
	return strconv.FormatFloat(base, 'f', -1, 64)
}

// RoundedHeader returns the column header describing the rounding applied.
func RoundedHeader(method string, base float64) string {
	if base == 0 {
		return "Rounded Value (none)"
	}
	return fmt.Sprintf("Rounded Value (%s to %s)", method, Base(base))
}
