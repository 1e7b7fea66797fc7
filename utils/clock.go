package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the platform's calendar-date form.
	DateLayout = "2006-01-02"
	// ClockLayout is the canonical 24-hour wall-clock form.
	ClockLayout = "15:04"
	// LabelLayout is the display form shown to customers.
	LabelLayout = "3:04 PM"
)

// DayName returns the lowercase weekday name of a date, e.g. "monday".
func DayName(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// AnchorClock parses an "HH:mm" wall-clock value onto the given calendar
// date, in the date's location. No time-zone conversion is performed; the
// value is interpreted as the professional's local time.
func AnchorClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// ParseDate parses a "yyyy-MM-dd" calendar date.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return d, nil
}
