package soloapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"soloapp/models"
)

// GetProfessional fetches a professional's profile, including services and
// working hours.
func (c *Client) GetProfessional(ctx context.Context, id int64) (*models.Professional, error) {
	var prof models.Professional
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/barbers/%d/", id), nil, nil, &prof); err != nil {
		return nil, err
	}
	return &prof, nil
}

// SearchProfessionals queries the directory. Supported params include
// "search", "category" and location filters; they pass through as-is.
func (c *Client) SearchProfessionals(ctx context.Context, params url.Values) ([]models.Professional, error) {
	var envelope models.ListEnvelope[models.Professional]
	if err := c.do(ctx, http.MethodGet, "/barbers/search/", params, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}
