package models

import "strings"

// WorkingHoursEntry represents one weekday of a professional's schedule.
type WorkingHoursEntry struct {
	ID         int64  `json:"id,omitempty"`
	Day        string `json:"day"`        // weekday name, e.g. "monday"
	StartTime  string `json:"start_time"` // "HH:mm"
	EndTime    string `json:"end_time"`   // "HH:mm"
	IsSelected bool   `json:"is_selected"`
}

// Matches reports whether the entry applies to the given weekday name.
// Day names are matched case-insensitively.
func (wh WorkingHoursEntry) Matches(dayName string) bool {
	return strings.EqualFold(wh.Day, dayName)
}
