package datetime

import (
	"testing"
	"time"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		dateStr  string
		expected string
	}{
		{
			name:     "Valid instant",
			layout:   InstantLayout,
			dateStr:  "2025-01-01",
			expected: "2025-01-01",
		},
		{
			name:     "Another valid instant",
			layout:   InstantLayout,
			dateStr:  "2030-12-01",
			expected: "2030-12-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(tt.layout, tt.dateStr)
			if result.Format(tt.layout) != tt.expected {
				t.Errorf("MustParseTime() = %s, expected %s", result.Format(tt.layout), tt.expected)
			}
		})
	}
}

func TestMustParseTimePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected MustParseTime to panic with invalid date")
		}
	}()

	MustParseTime(InstantLayout, "invalid-date")
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{"First of month", "2024-09-01", time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), false},
		{"Mid month", "2025-02-15", time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC), false},
		{"Missing day", "2025-02", time.Time{}, true},
		{"Month out of range", "2025-13-01", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInstant(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseInstant(%q) = %v, expected %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestFirstOfMonth(t *testing.T) {
	for month := 1; month <= 12; month++ {
		got := FirstOfMonth(2025, month)
		if got.Day() != 1 || int(got.Month()) != month || got.Year() != 2025 {
			t.Errorf("FirstOfMonth(2025, %d) = %v", month, got)
		}
		if got.Location() != time.UTC {
			t.Errorf("FirstOfMonth(2025, %d) location = %v, expected UTC", month, got.Location())
		}
	}
}

func TestMonthLabel(t *testing.T) {
	tests := map[int]string{
		1:  "01",
		2:  "02",
		9:  "09",
		10: "10",
		12: "12",
	}
	for month, expected := range tests {
		if got := MonthLabel(month); got != expected {
			t.Errorf("MonthLabel(%d) = %s, expected %s", month, got, expected)
		}
	}
}

func TestValidMonth(t *testing.T) {
	if ValidMonth(0) || ValidMonth(13) || ValidMonth(-1) {
		t.Error("expected months outside 1..12 to be invalid")
	}
	if !ValidMonth(1) || !ValidMonth(12) {
		t.Error("expected months 1 and 12 to be valid")
	}
}
