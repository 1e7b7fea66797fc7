package soloapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"soloapp/models"
)

// GetWorkingHours fetches a professional's weekly schedule.
func (c *Client) GetWorkingHours(ctx context.Context, professionalID int64) ([]models.WorkingHoursEntry, error) {
	query := url.Values{"barber": {strconv.FormatInt(professionalID, 10)}}
	var envelope models.ListEnvelope[models.WorkingHoursEntry]
	if err := c.do(ctx, http.MethodGet, "/working-hours/", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// UpdateWorkingHours replaces the authenticated professional's full weekly
// schedule in one call.
func (c *Client) UpdateWorkingHours(ctx context.Context, entries []models.WorkingHoursEntry) ([]models.WorkingHoursEntry, error) {
	var envelope models.ListEnvelope[models.WorkingHoursEntry]
	if err := c.do(ctx, http.MethodPut, "/working-hours/bulk-update/", nil, entries, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}
