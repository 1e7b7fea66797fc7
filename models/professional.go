package models

// ProfessionalService is a service offered by a professional with their
// custom pricing on top of the platform base price.
type ProfessionalService struct {
	ID              int64   `json:"id,omitempty"`
	Name            string  `json:"name"`
	PriceAdjustment float64 `json:"price_adjustment,omitempty"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
}

// Professional represents a service professional's public profile as
// returned by the platform. Working hours ride along on the profile so the
// availability core never needs a second fetch.
type Professional struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	ProfileImage  string                `json:"profile_image,omitempty"`
	Bio           string                `json:"bio,omitempty"`
	Address       string                `json:"address,omitempty"`
	PriceRangeMin float64               `json:"price_range_min,omitempty"`
	PriceRangeMax float64               `json:"price_range_max,omitempty"`
	IsAvailable   bool                  `json:"is_available"`
	Services      []ProfessionalService `json:"services,omitempty"`
	WorkingHours  []WorkingHoursEntry   `json:"working_hours,omitempty"`
}
