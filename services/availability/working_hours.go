package availability

import (
	"time"

	"soloapp/models"
	"soloapp/utils"
)

// WorkingHoursFor answers "is the professional open on this date, and if so
// during what window?". It matches the date's weekday name against the
// entries case-insensitively and returns the entry only when the day is
// selected. A nil result means closed.
//
// An empty or absent entry list means closed every day. That is the one
// explicit default for slot computation; the calendar-label surface uses the
// opposite default via IsBookableDay.
func WorkingHoursFor(entries []models.WorkingHoursEntry, date time.Time) *models.WorkingHoursEntry {
	dayName := utils.DayName(date)
	for i := range entries {
		if entries[i].Matches(dayName) && entries[i].IsSelected {
			return &entries[i]
		}
	}
	return nil
}

// IsBookableDay reports whether a weekday should render as clickable on the
// booking calendar. Unlike the slot path, a professional with no working
// hours configured shows every day as bookable; slot generation still
// refuses to produce slots for an unconfigured day, so the two surfaces
// deliberately disagree on the empty-config default.
func IsBookableDay(entries []models.WorkingHoursEntry, weekday time.Weekday) bool {
	if len(entries) == 0 {
		return true
	}
	dayName := weekday.String()
	for i := range entries {
		if entries[i].Matches(dayName) && entries[i].IsSelected {
			return true
		}
	}
	return false
}
