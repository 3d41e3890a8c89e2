package bookings

import (
	"time"

	"github.com/hadayashop/storefront-backend/pkg/enums"
)

// BookingRequest is a service booking as submitted from the services page.
// Date and Budget are optional; the studio follows up to pin them down.
type BookingRequest struct {
	Name    string            `json:"name" validate:"required"`
	Email   string            `json:"email" validate:"required,email_shape"`
	Phone   string            `json:"phone" validate:"required,saudi_mobile"`
	Service enums.ServiceType `json:"service" validate:"required,service_type"`
	Date    string            `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Details string            `json:"details"`
	Budget  string            `json:"budget"`
}

// Confirmation is what the shopper sees after a successful submission.
type Confirmation struct {
	Reference   string    `json:"reference"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}
