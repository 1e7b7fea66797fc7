package booking

import (
	"strings"

	"soloapp/models"
)

// Required-field labels, in the order they are reported.
const (
	fieldService      = "Service"
	fieldName         = "Your Name"
	fieldPhone        = "Phone Number"
	fieldContactName  = "Contact Name"
	fieldContactEmail = "Contact Email"
	fieldContactPhone = "Contact Phone"
)

// MissingFields lists the required fields absent from the form. Guest
// contact fields are only required when the customer is unauthenticated.
func MissingFields(form models.BookingForm, authenticated bool) []string {
	var missing []string
	if form.Service == "" {
		missing = append(missing, fieldService)
	}
	if strings.TrimSpace(form.Name) == "" {
		missing = append(missing, fieldName)
	}
	if strings.TrimSpace(form.NotificationPhone) == "" {
		missing = append(missing, fieldPhone)
	}
	if !authenticated {
		if strings.TrimSpace(form.Contact.Name) == "" {
			missing = append(missing, fieldContactName)
		}
		if strings.TrimSpace(form.Contact.Email) == "" {
			missing = append(missing, fieldContactEmail)
		}
		if strings.TrimSpace(form.Contact.Phone) == "" {
			missing = append(missing, fieldContactPhone)
		}
	}
	return missing
}
