// Package parameters holds the tree of indexed policy parameters that
// uprating projections read from. Parameters are addressed by dot-separated
// paths such as "gov.bls.cpi.cpi_u" and queried at a date instant.
package parameters

import (
	"sort"
	"time"
)

// Parameter is a time-varying numeric value. ValueAt reports false when the
// parameter has no value at the given instant.
type Parameter interface {
	ValueAt(instant time.Time) (float64, bool)
}

// PathResolvable resolves a dotted path to a Parameter.
type PathResolvable interface {
	Resolve(path string) (Parameter, bool)
}

// Func adapts an ordinary function to the Parameter interface.
type Func func(instant time.Time) (float64, bool)

// ValueAt calls f(instant).
func (f Func) ValueAt(instant time.Time) (float64, bool) {
	return f(instant)
}

// Entry is a single published value that takes effect at Instant.
type Entry struct {
	Instant time.Time
	Value   float64
}

// Series is an indexed parameter backed by a list of effective-dated entries.
// The value at an instant is the most recent entry on or before it.
type Series struct {
	Path        string
	Description string
	Unit        string
	entries     []Entry
}

// NewSeries builds a Series from entries in any order.
func NewSeries(path string, entries []Entry) *Series {
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Instant.Before(sorted[j].Instant)
	})
	return &Series{Path: path, entries: sorted}
}

// ValueAt returns the value in effect at instant.
func (s *Series) ValueAt(instant time.Time) (float64, bool) {
	// index of the first entry strictly after instant
	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Instant.After(instant)
	})
	if idx == 0 {
		return 0, false
	}
	return s.entries[idx-1].Value, true
}

// Entries returns a copy of the series entries in chronological order.
func (s *Series) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Len returns the number of entries.
func (s *Series) Len() int {
	return len(s.entries)
}
