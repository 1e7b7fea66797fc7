package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"soloapp/models"
	"soloapp/services/availability"
)

var monday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

type fakeSource struct {
	mu           sync.Mutex
	appointments []models.Appointment
}

func (f *fakeSource) ListForDate(ctx context.Context, professionalID int64, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.appointments, nil
}

func (f *fakeSource) setAppointments(appointments []models.Appointment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appointments = appointments
}

type fakeAPI struct {
	created *models.Appointment
	err     error
	gotReq  models.BookingRequest
	calls   int
}

func (f *fakeAPI) CreateAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	f.calls++
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func testProfessional() *models.Professional {
	return &models.Professional{
		ID:   7,
		Name: "Sam Cutler",
		WorkingHours: []models.WorkingHoursEntry{
			{Day: "monday", StartTime: "09:00", EndTime: "17:00", IsSelected: true},
		},
	}
}

func newTestFlow(src availability.AppointmentSource, api AppointmentAPI) *Flow {
	return NewFlow(availability.NewService(src), api, NewMemoryStore(10*time.Minute))
}

func validForm() models.BookingForm {
	return models.BookingForm{
		Service:           "Haircut",
		Name:              "Jordan",
		NotificationPhone: "555-123-4567",
		Contact: models.ContactInfo{
			Name:  "Jordan",
			Email: "jordan@example.com",
			Phone: "5551234567",
		},
	}
}

func TestFlowHappyPath(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{created: &models.Appointment{ID: 42, Date: "2026-01-05", StartTime: "10:40:00"}}
	flow := newTestFlow(&fakeSource{}, api)

	session, err := flow.Start(ctx, testProfessional(), false)
	require.NoError(t, err)
	require.Equal(t, models.StateSelectingDate, session.State)
	require.NotEmpty(t, session.SessionID)

	session, err = flow.SelectDate(ctx, session.SessionID, monday)
	require.NoError(t, err)
	require.Equal(t, models.StateSelectingSlot, session.State)
	require.Len(t, session.Slots, 9)

	session, err = flow.SelectSlot(ctx, session.SessionID, "10:40")
	require.NoError(t, err)
	require.Equal(t, models.StateConfirmingDetails, session.State)
	require.Equal(t, "10:40 AM", session.SelectedSlot.Label)

	session, err = flow.Confirm(ctx, session.SessionID, validForm())
	require.NoError(t, err)
	require.Equal(t, models.StateBooked, session.State)
	require.Equal(t, int64(42), session.AppointmentID)

	// The submitted start time carries the slot's 24-hour key.
	require.Equal(t, "10:40", api.gotReq.StartTime)
	require.Equal(t, int64(7), api.gotReq.Professional)
	require.Equal(t, "2026-01-05", api.gotReq.Date)
	require.Equal(t, "5551234567", api.gotReq.ContactNumber)
}

func TestFlowValidationListsMissingFields(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{}
	flow := newTestFlow(&fakeSource{}, api)

	session, err := flow.Start(ctx, testProfessional(), false)
	require.NoError(t, err)
	session, err = flow.SelectDate(ctx, session.SessionID, monday)
	require.NoError(t, err)
	session, err = flow.SelectSlot(ctx, session.SessionID, "09:00")
	require.NoError(t, err)

	form := models.BookingForm{Name: "Jordan"}
	session, err = flow.Confirm(ctx, session.SessionID, form)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, []string{"Service", "Phone Number", "Contact Name", "Contact Email", "Contact Phone"}, vErr.Missing)
	// Nothing was sent, and the flow stays on the details form.
	require.Equal(t, 0, api.calls)
	require.Equal(t, models.StateConfirmingDetails, session.State)
	require.Equal(t, "Jordan", session.Form.Name)
}

func TestFlowAuthenticatedSkipsGuestFields(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{created: &models.Appointment{ID: 1}}
	flow := newTestFlow(&fakeSource{}, api)

	session, err := flow.Start(ctx, testProfessional(), true)
	require.NoError(t, err)
	session, err = flow.SelectDate(ctx, session.SessionID, monday)
	require.NoError(t, err)
	session, err = flow.SelectSlot(ctx, session.SessionID, "09:00")
	require.NoError(t, err)

	form := models.BookingForm{Service: "Haircut", Name: "Jordan", NotificationPhone: "5551234567"}
	session, err = flow.Confirm(ctx, session.SessionID, form)
	require.NoError(t, err)
	require.Equal(t, models.StateBooked, session.State)
}

func TestFlowSubmitFailureRetainsForm(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{err: errors.New("server error")}
	flow := newTestFlow(&fakeSource{}, api)

	session, err := flow.Start(ctx, testProfessional(), true)
	require.NoError(t, err)
	session, err = flow.SelectDate(ctx, session.SessionID, monday)
	require.NoError(t, err)
	session, err = flow.SelectSlot(ctx, session.SessionID, "10:40")
	require.NoError(t, err)

	form := models.BookingForm{Service: "Haircut", Name: "Jordan", NotificationPhone: "5551234567"}
	session, err = flow.Confirm(ctx, session.SessionID, form)

	var sErr *SubmitError
	require.ErrorAs(t, err, &sErr)
	require.Equal(t, models.StateConfirmingDetails, session.State)
	// Field values survive for the retry; the chosen slot is still held.
	require.Equal(t, "Jordan", session.Form.Name)
	require.NotNil(t, session.SelectedSlot)
	require.Equal(t, "10:40", session.SelectedSlot.Time24)
}

func TestFlowSubmitConflictRefreshesAvailability(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{}
	api := &fakeAPI{err: errors.New("bad request")}
	flow := newTestFlow(src, api)

	session, err := flow.Start(ctx, testProfessional(), true)
	require.NoError(t, err)
	session, err = flow.SelectDate(ctx, session.SessionID, monday)
	require.NoError(t, err)
	session, err = flow.SelectSlot(ctx, session.SessionID, "10:40")
	require.NoError(t, err)

	// Another customer books 10:40 between computation and submission.
	src.setAppointments([]models.Appointment{
		{Professional: 7, Date: "2026-01-05", StartTime: "10:40:00", Status: models.StatusScheduled},
	})

	form := models.BookingForm{Service: "Haircut", Name: "Jordan", NotificationPhone: "5551234567"}
	session, err = flow.Confirm(ctx, session.SessionID, form)

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	require.Equal(t, "10:40", cErr.Time24)
	require.Equal(t, models.StateConfirmingDetails, session.State)
	// Availability was refreshed and the taken slot is gone.
	require.Len(t, session.Slots, 8)
	require.Nil(t, session.SelectedSlot)
}

func TestFlowBookedSlotGoneOnSubsequentView(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{}
	api := &fakeAPI{created: &models.Appointment{ID: 42, Date: "2026-01-05", StartTime: "10:40:00"}}
	flow := newTestFlow(src, api)

	session, err := flow.Start(ctx, testProfessional(), true)
	require.NoError(t, err)
	session, err = flow.SelectDate(ctx, session.SessionID, monday)
	require.NoError(t, err)
	session, err = flow.SelectSlot(ctx, session.SessionID, "10:40")
	require.NoError(t, err)

	// Simulate the platform now reporting the new appointment.
	src.setAppointments([]models.Appointment{
		{Professional: 7, Date: "2026-01-05", StartTime: "10:40:00", Status: models.StatusScheduled},
	})

	form := models.BookingForm{Service: "Haircut", Name: "Jordan", NotificationPhone: "5551234567"}
	session, err = flow.Confirm(ctx, session.SessionID, form)
	require.NoError(t, err)
	require.Equal(t, models.StateBooked, session.State)
	require.Len(t, session.Slots, 8)
}

func TestFlowInvalidTransitions(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{created: &models.Appointment{ID: 1}}
	flow := newTestFlow(&fakeSource{}, api)

	session, err := flow.Start(ctx, testProfessional(), true)
	require.NoError(t, err)

	// Cannot pick a slot before a date.
	_, err = flow.SelectSlot(ctx, session.SessionID, "09:00")
	require.ErrorIs(t, err, ErrInvalidTransition)

	// Cannot confirm before the details step.
	_, err = flow.Confirm(ctx, session.SessionID, validForm())
	require.ErrorIs(t, err, ErrInvalidTransition)

	session, err = flow.SelectDate(ctx, session.SessionID, monday)
	require.NoError(t, err)
	session, err = flow.SelectSlot(ctx, session.SessionID, "09:00")
	require.NoError(t, err)
	session, err = flow.Confirm(ctx, session.SessionID, validForm())
	require.NoError(t, err)
	require.Equal(t, models.StateBooked, session.State)

	// A booked session is terminal.
	_, err = flow.SelectDate(ctx, session.SessionID, monday)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestFlowSelectUnknownSlot(t *testing.T) {
	ctx := context.Background()
	flow := newTestFlow(&fakeSource{}, &fakeAPI{})

	session, err := flow.Start(ctx, testProfessional(), true)
	require.NoError(t, err)
	session, err = flow.SelectDate(ctx, session.SessionID, monday)
	require.NoError(t, err)

	var cErr *ConflictError
	_, err = flow.SelectSlot(ctx, session.SessionID, "23:00")
	require.ErrorAs(t, err, &cErr)
}

func TestFlowAbandon(t *testing.T) {
	ctx := context.Background()
	flow := newTestFlow(&fakeSource{}, &fakeAPI{})

	session, err := flow.Start(ctx, testProfessional(), true)
	require.NoError(t, err)
	require.NoError(t, flow.Abandon(ctx, session.SessionID))

	_, err = flow.SelectDate(ctx, session.SessionID, monday)
	require.ErrorIs(t, err, ErrSessionNotFound)
}
