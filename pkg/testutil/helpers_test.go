package testutil

import (
	"testing"

	"github.com/iwvelando/uprating-calculator/pkg/datetime"
)

func TestSource(t *testing.T) {
	source := Source{"gov.test": YearlySeries("gov.test", map[int]float64{2020: 1})}

	if _, ok := source.Resolve("gov.test"); !ok {
		t.Error("expected gov.test to resolve")
	}
	if _, ok := source.Resolve("gov.missing"); ok {
		t.Error("expected gov.missing not to resolve")
	}
}

func TestMonthlyParameter(t *testing.T) {
	param := MonthlyParameter(map[string]float64{"2024-03": 310})

	tests := []struct {
		name      string
		month     int
		wantValue float64
		wantFound bool
	}{
		{"listed month", 3, 310, true},
		{"month before", 2, 0, false},
		{"month after", 4, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := param.ValueAt(datetime.FirstOfMonth(2024, tt.month))
			if ok != tt.wantFound || v != tt.wantValue {
				t.Errorf("ValueAt() = (%v, %v), expected (%v, %v)", v, ok, tt.wantValue, tt.wantFound)
			}
		})
	}
}

func TestYearlyParameter(t *testing.T) {
	param := YearlyParameter(map[int]float64{2023: 300})

	if v, ok := param.ValueAt(datetime.FirstOfMonth(2023, 1)); !ok || v != 300 {
		t.Errorf("expected January value 300, got (%v, %v)", v, ok)
	}
	if _, ok := param.ValueAt(datetime.FirstOfMonth(2023, 6)); ok {
		t.Error("expected no value outside January")
	}
}

func TestYearlySeries(t *testing.T) {
	series := YearlySeries("gov.test", map[int]float64{2022: 290, 2023: 300})

	if series.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", series.Len())
	}
	if v, ok := series.ValueAt(datetime.FirstOfMonth(2023, 12)); !ok || v != 300 {
		t.Errorf("expected December to step from January, got (%v, %v)", v, ok)
	}
	if _, ok := series.ValueAt(datetime.FirstOfMonth(2021, 12)); ok {
		t.Error("expected no value before the first entry")
	}
}
