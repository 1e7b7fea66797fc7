package models

// FlowState tracks where a booking session is in the flow.
type FlowState string

const (
	StateSelectingDate     FlowState = "selecting_date"
	StateSelectingSlot     FlowState = "selecting_slot"
	StateConfirmingDetails FlowState = "confirming_details"
	StateSubmitting        FlowState = "submitting"
	StateBooked            FlowState = "booked"
	StateFailed            FlowState = "failed"
)

// ContactInfo carries the guest contact fields required when the booking
// customer is not authenticated.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingForm holds the details the customer fills in before confirming.
type BookingForm struct {
	Service           string      `json:"service"`
	Name              string      `json:"name"`
	NotificationPhone string      `json:"notification_phone"`
	Notes             string      `json:"notes,omitempty"`
	Contact           ContactInfo `json:"contact"`
}

// BookingRequest is the create-appointment payload sent to the platform.
// StartTime must equal the Time24 of the slot being booked so a subsequent
// availability recomputation removes it.
type BookingRequest struct {
	Customer      string `json:"customer"`
	Professional  int64  `json:"barber"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	Service       string `json:"service"`
	Notes         string `json:"notes,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
}

// BookingSession is the state of one customer's booking flow. Sessions are
// kept in a session store until booked or abandoned.
type BookingSession struct {
	SessionID      string              `json:"sessionId"`
	ProfessionalID int64               `json:"professionalId"`
	WorkingHours   []WorkingHoursEntry `json:"workingHours,omitempty"`
	State          FlowState           `json:"state"`
	Date           string              `json:"date,omitempty"` // "2006-01-02"
	Slots          []Slot              `json:"slots,omitempty"`
	Degraded       bool                `json:"degraded,omitempty"`
	SelectedSlot   *Slot               `json:"selectedSlot,omitempty"`
	Form           BookingForm         `json:"form"`
	Authenticated  bool                `json:"authenticated"`
	AppointmentID  int64               `json:"appointmentId,omitempty"`
	LastError      string              `json:"lastError,omitempty"`
}
