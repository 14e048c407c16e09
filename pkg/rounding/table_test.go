package rounding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyToColumn(t *testing.T) {
	table := Table{
		"year":  {2024, 2025, 2026},
		"value": {1000, 1033.3333333333333, 1050.0268817204301},
	}

	rounded, err := ApplyToColumn(table, "value", 10, Upwards)
	require.NoError(t, err)

	assert.Equal(t, []float64{1000, 1040, 1060}, rounded["value"])
	assert.Equal(t, table["year"], rounded["year"])

	// input is untouched
	assert.Equal(t, 1033.3333333333333, table["value"][1])
}

func TestApplyToColumnDoesNotShareBacking(t *testing.T) {
	table := Table{"value": {1.4}, "other": {2.6}}

	rounded, err := ApplyToColumn(table, "value", 1, Nearest)
	require.NoError(t, err)

	rounded["other"][0] = 99
	assert.Equal(t, 2.6, table["other"][0])
}

func TestApplyToColumnMissingColumn(t *testing.T) {
	_, err := ApplyToColumn(Table{"value": {1}}, "rounded", 1, Nearest)
	assert.Error(t, err)
}

func TestTableColumns(t *testing.T) {
	table := Table{"value": nil, "factor": nil, "year": nil}
	assert.Equal(t, []string{"factor", "value", "year"}, table.Columns())
}
