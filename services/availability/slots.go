package availability

import (
	"errors"
	"time"

	"soloapp/models"
	"soloapp/utils"
)

// DefaultSlotDuration is the fixed appointment length used across the
// platform.
const DefaultSlotDuration = 50 * time.Minute

// ErrZeroDate is returned when a caller passes the zero time value. A
// closed day is a normal empty result, not an error; a zero date is a
// programming mistake.
var ErrZeroDate = errors.New("availability: zero date")

// GenerateSlots enumerates fixed-length slots between the working window's
// start and end on the given date. A nil entry (closed day) yields an empty
// sequence. The last slot's nominal end may land exactly on the close time
// but never past it, with a one-minute tolerance at the boundary; a window
// of exactly one duration produces exactly one slot.
//
// The result is ordered ascending by time, deterministic for identical
// inputs, and carries both the display label and the canonical 24-hour key.
func GenerateSlots(date time.Time, entry *models.WorkingHoursEntry, duration time.Duration) ([]models.Slot, error) {
	if date.IsZero() {
		return nil, ErrZeroDate
	}
	if entry == nil {
		return nil, nil
	}

	start, err := utils.AnchorClock(date, entry.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.AnchorClock(date, entry.EndTime)
	if err != nil {
		return nil, err
	}

	var slots []models.Slot
	for cursor := start; cursor.Add(duration).Before(end.Add(time.Minute)); cursor = cursor.Add(duration) {
		slots = append(slots, models.Slot{
			Label:     cursor.Format(utils.LabelLayout),
			Time24:    cursor.Format(utils.ClockLayout),
			Available: true,
		})
	}
	return slots, nil
}
