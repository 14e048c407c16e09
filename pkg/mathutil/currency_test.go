package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Projected value", 1033.3333333, 1033.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func withinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		a, b, tol float64
		expected  bool
	}{
		{"Equal values", 1.0, 1.0, 0.0, true},
		{"Inside tolerance", 1.0, 1.005, 0.01, true},
		{"Outside tolerance", 1.0, 1.02, 0.01, false},
		{"Order independent", 1.02, 1.0, 0.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withinTolerance(tt.a, tt.b, tt.tol); got != tt.expected {
				t.Errorf("withinTolerance(%v, %v, %v) = %v, expected %v", tt.a, tt.b, tt.tol, got, tt.expected)
			}
		})
	}
}

func TestGrowthFactor(t *testing.T) {
	tests := []struct {
		name              string
		current, previous float64
		expected          float64
	}{
		{"Increase", 310, 300, 0.0333333},
		{"Decrease", 290, 300, -0.0333333},
		{"Flat", 300, 300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrowthFactor(tt.current, tt.previous)
			if !withinTolerance(got, tt.expected, 1e-6) {
				t.Errorf("GrowthFactor(%v, %v) = %v, expected %v", tt.current, tt.previous, got, tt.expected)
			}
		})
	}
}

func TestCompound(t *testing.T) {
	if got := Compound(1000, 0.05); !withinTolerance(got, 1050, 1e-9) {
		t.Errorf("Compound(1000, 0.05) = %v, expected 1050", got)
	}
	if got := Compound(1000, 0); got != 1000 {
		t.Errorf("Compound(1000, 0) = %v, expected 1000", got)
	}
}

func TestToPercentage(t *testing.T) {
	if got := ToPercentage(0.0333); !withinTolerance(got, 3.33, 1e-9) {
		t.Errorf("ToPercentage(0.0333) = %v, expected 3.33", got)
	}
}
