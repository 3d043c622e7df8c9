package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/momentum/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// FormatDate returns the calendar date of t in its own location (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DaysAgo returns the calendar date n days before t, in t's location.
// Midday is used as the anchor so DST transitions never skip or repeat a date.
func DaysAgo(t time.Time, n int) string {
	d := time.Date(t.Year(), t.Month(), t.Day()-n, 12, 0, 0, 0, t.Location())
	return FormatDate(d)
}

// ShiftDate moves a YYYY-MM-DD date by n days. Invalid input is returned unchanged.
func ShiftDate(date string, n int) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return FormatDate(time.Date(t.Year(), t.Month(), t.Day()+n, 12, 0, 0, 0, time.UTC))
}

// TrailingDays returns the n calendar dates ending with t's date, oldest first.
func TrailingDays(t time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = DaysAgo(t, n-1-i)
	}
	return days
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidateDateFormat checks that the string is a zero-padded YYYY-MM-DD date.
// Lexical ordering of dates is only valid for this exact shape.
func ValidateDateFormat(dateStr string) bool {
	if len(dateStr) != len(constants.DateFormat) {
		return false
	}
	_, err := ParseDate(dateStr)
	return err == nil
}
