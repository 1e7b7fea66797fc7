package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soloapp/models"
	"soloapp/services/availability"
	"soloapp/utils"
)

// AppointmentAPI is the slice of the platform client the flow needs to
// commit a booking.
type AppointmentAPI interface {
	CreateAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
}

// Flow drives a customer's booking from date selection to a committed
// appointment:
//
//	SelectingDate -> SelectingSlot -> ConfirmingDetails -> Submitting -> Booked
//
// A failed submission returns to ConfirmingDetails with the form values
// retained. Abandonment is handled by session expiry; there is no automatic
// retry.
type Flow struct {
	Availability *availability.Service
	API          AppointmentAPI
	Store        SessionStore
}

// NewFlow wires a booking flow over the given collaborators.
func NewFlow(av *availability.Service, api AppointmentAPI, store SessionStore) *Flow {
	return &Flow{Availability: av, API: api, Store: store}
}

// Start opens a booking session against a professional's profile. The
// professional's working hours are captured on the session so each later
// step computes availability without re-fetching the profile.
func (f *Flow) Start(ctx context.Context, professional *models.Professional, authenticated bool) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID:      uuid.New().String(),
		ProfessionalID: professional.ID,
		WorkingHours:   professional.WorkingHours,
		State:          models.StateSelectingDate,
		Authenticated:  authenticated,
	}
	if err := f.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate computes the bookable slots for a calendar date and moves the
// session to slot selection. Picking a new date at any point before Booked
// restarts from here; each call fetches appointments afresh.
func (f *Flow) SelectDate(ctx context.Context, sessionID string, date time.Time) (*models.BookingSession, error) {
	session, err := f.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.StateBooked || session.State == models.StateSubmitting {
		return nil, ErrInvalidTransition
	}

	res, err := f.Availability.AvailableSlots(ctx, session.ProfessionalID, date, session.WorkingHours)
	if err != nil {
		// Includes ErrStaleResult: the customer has moved on to another
		// date and this computation must not be rendered.
		return nil, err
	}

	session.Date = res.Date
	session.Slots = res.Slots
	session.Degraded = res.Degraded
	session.SelectedSlot = nil
	session.State = models.StateSelectingSlot
	if err := f.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSlot picks one available slot by its 24-hour key and moves to the
// details form.
func (f *Flow) SelectSlot(ctx context.Context, sessionID, time24 string) (*models.BookingSession, error) {
	session, err := f.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateSelectingSlot && session.State != models.StateConfirmingDetails {
		return nil, ErrInvalidTransition
	}

	var chosen *models.Slot
	for i := range session.Slots {
		if session.Slots[i].Time24 == time24 {
			chosen = &session.Slots[i]
			break
		}
	}
	if chosen == nil {
		return nil, &ConflictError{Time24: time24}
	}

	session.SelectedSlot = chosen
	session.State = models.StateConfirmingDetails
	if err := f.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm validates the details form and submits the booking. On a missing
// field nothing is sent and the error names each absent field. On a
// submission failure the session returns to ConfirmingDetails with the form
// retained; if the refreshed availability shows the chosen slot gone, the
// failure is reported as a conflict and the customer must pick again.
func (f *Flow) Confirm(ctx context.Context, sessionID string, form models.BookingForm) (*models.BookingSession, error) {
	session, err := f.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateConfirmingDetails {
		return nil, ErrInvalidTransition
	}

	form.NotificationPhone = utils.NormalizePhone(form.NotificationPhone)
	session.Form = form

	if missing := MissingFields(form, session.Authenticated); len(missing) > 0 {
		session.LastError = (&ValidationError{Missing: missing}).Error()
		if err := f.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, &ValidationError{Missing: missing}
	}

	session.State = models.StateSubmitting
	session.LastError = ""
	if err := f.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	req := models.BookingRequest{
		Customer:      form.Name,
		Professional:  session.ProfessionalID,
		Date:          session.Date,
		StartTime:     session.SelectedSlot.Time24,
		Service:       form.Service,
		Notes:         form.Notes,
		ContactNumber: form.NotificationPhone,
	}

	created, submitErr := f.API.CreateAppointment(ctx, req)
	if submitErr != nil {
		return f.failSubmission(ctx, session, submitErr)
	}

	session.State = models.StateBooked
	session.AppointmentID = created.ID
	// Recompute so the just-taken slot disappears on any subsequent view.
	f.refreshSlots(ctx, session)
	if err := f.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Abandon drops the session. Navigating away is a terminal outcome.
func (f *Flow) Abandon(ctx context.Context, sessionID string) error {
	return f.Store.Delete(ctx, sessionID)
}

// failSubmission returns the session to ConfirmingDetails, refreshes
// availability for the date, and classifies the failure: the chosen slot
// vanishing from the refreshed list means another customer took it.
func (f *Flow) failSubmission(ctx context.Context, session *models.BookingSession, submitErr error) (*models.BookingSession, error) {
	logger := utils.GetLogger()
	logger.Warn("booking submission failed",
		zap.String("sessionID", session.SessionID),
		zap.Int64("professionalID", session.ProfessionalID),
		zap.String("date", session.Date),
		zap.Error(submitErr))

	chosen := session.SelectedSlot
	session.State = models.StateConfirmingDetails
	f.refreshSlots(ctx, session)

	var outcome error = &SubmitError{Err: submitErr}
	if chosen != nil && !slotPresent(session.Slots, chosen.Time24) {
		session.SelectedSlot = nil
		outcome = &ConflictError{Time24: chosen.Time24}
	}
	session.LastError = outcome.Error()

	if err := f.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, outcome
}

// refreshSlots best-effort recomputes the session's slot list for its date.
// A stale or failed recomputation leaves the previous list in place.
func (f *Flow) refreshSlots(ctx context.Context, session *models.BookingSession) {
	if session.Date == "" {
		return
	}
	date, err := utils.ParseDate(session.Date)
	if err != nil {
		return
	}
	res, err := f.Availability.AvailableSlots(ctx, session.ProfessionalID, date, session.WorkingHours)
	if err != nil {
		if !errors.Is(err, availability.ErrStaleResult) {
			utils.GetLogger().Warn("availability refresh failed",
				zap.String("sessionID", session.SessionID), zap.Error(err))
		}
		return
	}
	session.Slots = res.Slots
	session.Degraded = res.Degraded
}

func slotPresent(slots []models.Slot, time24 string) bool {
	for _, s := range slots {
		if s.Time24 == time24 {
			return true
		}
	}
	return false
}
