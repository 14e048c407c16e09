package uprating

import (
	"encoding/json"

	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/iwvelando/uprating-calculator/pkg/datetime"
)

// LabelKind identifies where a projected year's value came from.
type LabelKind int

const (
	// Unavailable means no month of the year had data.
	Unavailable LabelKind = iota
	// Resolved means the value came from a specific month of the year.
	Resolved
	// Missing means the year or its predecessor had no data, so the value was
	// carried forward without uprating.
	Missing
	// ProjectedForward means the year lies past the data ceiling and was
	// uprated with the factor captured at the ceiling year.
	ProjectedForward
	// NoProjectionData means the year lies past the data ceiling and no
	// ceiling factor was available.
	NoProjectionData
)

// MonthLabel tags a projection record with the source of its value.
type MonthLabel struct {
	Kind  LabelKind
	Month int
}

// ResolvedMonth returns a label for a value read from the given month.
func ResolvedMonth(month int) MonthLabel {
	return MonthLabel{Kind: Resolved, Month: month}
}

// IsResolved reports whether the label carries a source month.
func (l MonthLabel) IsResolved() bool {
	return l.Kind == Resolved && datetime.ValidMonth(l.Month)
}

// String renders the label for display: a two-digit month or a status.
func (l MonthLabel) String() string {
	switch {
	case l.IsResolved():
		return datetime.MonthLabel(l.Month)
	case l.Kind == Missing:
		return "Missing data"
	case l.Kind == ProjectedForward:
		return "Projected"
	case l.Kind == NoProjectionData:
		return "No projection data"
	default:
		return constants.NotAvailable
	}
}

// MarshalJSON encodes the label as its display string.
func (l MonthLabel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}
