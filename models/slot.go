package models

// Slot is a bookable time window derived from working hours. Slots are
// computed on demand and never persisted. Any slot that reaches a caller is
// available; taken times are filtered out rather than flagged.
type Slot struct {
	Label     string `json:"time"`       // display form, e.g. "9:00 AM"
	Time24    string `json:"time24Hour"` // canonical "HH:mm" comparison key
	Available bool   `json:"available"`
}
