package soloapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"soloapp/models"
)

// ListForDate fetches the appointments booked with a professional on one
// calendar date ("2006-01-02"). The platform serves either a bare array or
// a paginated envelope; both come back as a plain slice. Satisfies
// availability.AppointmentSource.
func (c *Client) ListForDate(ctx context.Context, professionalID int64, date string) ([]models.Appointment, error) {
	query := url.Values{
		"barber": {strconv.FormatInt(professionalID, 10)},
		"date":   {date},
	}
	var envelope models.ListEnvelope[models.Appointment]
	if err := c.do(ctx, http.MethodGet, "/appointments/", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// CreateAppointment books a slot. The request's StartTime must carry the
// Time24 key of the chosen slot so the next availability computation
// removes it.
func (c *Client) CreateAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	var created models.Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments/", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAppointmentStatus patches an appointment's status. Cancellation is
// the only transition the client drives; the record is never hard-deleted.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int64, status models.AppointmentStatus) (*models.Appointment, error) {
	body := map[string]models.AppointmentStatus{"status": status}
	var updated models.Appointment
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/appointments/%d/", id), nil, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CancelAppointment marks an appointment cancelled, releasing its slot on
// the next availability computation.
func (c *Client) CancelAppointment(ctx context.Context, id int64) (*models.Appointment, error) {
	return c.UpdateAppointmentStatus(ctx, id, models.StatusCancelled)
}

// UpcomingAppointments lists the authenticated professional's scheduled and
// confirmed appointments from today onward.
func (c *Client) UpcomingAppointments(ctx context.Context) ([]models.Appointment, error) {
	var envelope models.ListEnvelope[models.Appointment]
	if err := c.do(ctx, http.MethodGet, "/appointments/upcoming/", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// CustomerAppointments lists the authenticated customer's own bookings.
func (c *Client) CustomerAppointments(ctx context.Context) ([]models.Appointment, error) {
	var envelope models.ListEnvelope[models.Appointment]
	if err := c.do(ctx, http.MethodGet, "/appointments/customer/", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}
