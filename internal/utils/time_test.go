package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestDaysAgo(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	tests := []struct {
		n    int
		want string
	}{
		{0, "2024-03-01"},
		{1, "2024-02-29"},
		{7, "2024-02-23"},
		{-1, "2024-03-02"},
	}
	for _, tt := range tests {
		if got := DaysAgo(now, tt.n); got != tt.want {
			t.Errorf("DaysAgo(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestDaysAgoAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("timezone data unavailable")
	}
	// 2024-03-10 is the spring-forward day in New York
	now := time.Date(2024, 3, 11, 0, 30, 0, 0, loc)
	if got := DaysAgo(now, 1); got != "2024-03-10" {
		t.Errorf("DaysAgo across DST = %s, want 2024-03-10", got)
	}
}

func TestTrailingDays(t *testing.T) {
	now := time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC)
	got := TrailingDays(now, 3)
	want := []string{"2023-12-31", "2024-01-01", "2024-01-02"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TrailingDays() = %v, want %v", got, want)
	}
	if TrailingDays(now, 0) != nil {
		t.Error("TrailingDays(0) should be nil")
	}
}

func TestShiftDate(t *testing.T) {
	if got := ShiftDate("2024-01-08", -7); got != "2024-01-01" {
		t.Errorf("ShiftDate() = %s", got)
	}
	if got := ShiftDate("not-a-date", 3); got != "not-a-date" {
		t.Errorf("ShiftDate(invalid) = %s", got)
	}
}

func TestValidateDateFormat(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-01", true},
		{"2024-1-1", false},
		{"2024/01/01", false},
		{"2024-02-30", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateDateFormat(tt.in); got != tt.want {
			t.Errorf("ValidateDateFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("Local")
	if err != nil || loc != time.Local {
		t.Errorf("LoadLocation(Local) = %v, %v", loc, err)
	}
	if ValidateTimezone("Not/AZone") {
		t.Error("ValidateTimezone accepted an invalid zone")
	}
}
