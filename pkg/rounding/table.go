package rounding

import (
	"fmt"
	"sort"
)

// Table is a column-oriented numeric result set keyed by column name.
type Table map[string][]float64

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	clone := make(Table, len(t))
	for name, values := range t {
		clone[name] = append([]float64(nil), values...)
	}
	return clone
}

// Columns returns the column names in sorted order.
func (t Table) Columns() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyToColumn returns a copy of table with every value in column replaced
// by RoundValue(value, base, method). The input table is left untouched.
func ApplyToColumn(table Table, column string, base float64, method Method) (Table, error) {
	if _, ok := table[column]; !ok {
		return nil, fmt.Errorf("column %q not found in table", column)
	}

	rounded := table.Clone()
	for i, value := range rounded[column] {
		rounded[column][i] = RoundValue(value, base, method)
	}
	return rounded, nil
}
