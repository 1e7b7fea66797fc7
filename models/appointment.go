package models

// AppointmentStatus enumerates the lifecycle states of an appointment.
// The zero value (absent field) is treated as scheduled.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Active reports whether the appointment still occupies its time slot.
// Cancelled appointments are retained for history but release their slot.
func (s AppointmentStatus) Active() bool {
	return s != StatusCancelled
}

// Appointment represents a customer appointment with a professional.
type Appointment struct {
	ID            int64             `json:"id"`
	Customer      string            `json:"customer"`
	Professional  int64             `json:"barber"`
	Date          string            `json:"date"`       // "2006-01-02"
	StartTime     string            `json:"start_time"` // "HH:mm" or "HH:mm:ss"
	EndTime       string            `json:"end_time,omitempty"`
	Service       string            `json:"service"`
	Status        AppointmentStatus `json:"status,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	ContactNumber string            `json:"contact_number,omitempty"`
	CreatedAt     string            `json:"created_at,omitempty"`
}

// StartKey returns the "HH:mm" prefix of StartTime, the key compared
// against a slot's Time24 when detecting collisions.
func (a Appointment) StartKey() string {
	if len(a.StartTime) > 5 {
		return a.StartTime[:5]
	}
	return a.StartTime
}
