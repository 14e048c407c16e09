package uprating

import (
	"fmt"

	"github.com/iwvelando/uprating-calculator/pkg/constants"
)

// Limits holds the data-horizon boundaries used by the resolver and the
// projector. They move as new index projections are published.
type Limits struct {
	// HistoricalBoundary is the last year whose representative value is the
	// latest month with data. Later years use the earliest month.
	HistoricalBoundary int `mapstructure:"historicalBoundary" yaml:"historicalBoundary" json:"historicalBoundary"`
	// CeilingYear is the last year resolved from the parameter.
	CeilingYear int `mapstructure:"ceilingYear" yaml:"ceilingYear" json:"ceilingYear"`
	// NearZeroThreshold triggers the February re-check for projection years.
	NearZeroThreshold float64 `mapstructure:"nearZeroThreshold" yaml:"nearZeroThreshold" json:"nearZeroThreshold"`
}

// DefaultLimits returns the standard boundaries.
func DefaultLimits() Limits {
	return Limits{
		HistoricalBoundary: constants.HistoricalBoundaryYear,
		CeilingYear:        constants.CeilingYear,
		NearZeroThreshold:  constants.NearZeroThreshold,
	}
}

// Validate checks that the limits are coherent.
func (l Limits) Validate() error {
	if l.CeilingYear < l.HistoricalBoundary {
		return fmt.Errorf("ceiling year %d must not precede historical boundary %d", l.CeilingYear, l.HistoricalBoundary)
	}
	if l.NearZeroThreshold < 0 {
		return fmt.Errorf("near-zero threshold must be non-negative, got %g", l.NearZeroThreshold)
	}
	return nil
}

// IsProjectionYear reports whether year lies after the historical boundary.
func (l Limits) IsProjectionYear(year int) bool {
	return year > l.HistoricalBoundary
}
