package contact

import (
	"fmt"
	"time"

	"github.com/hadayashop/storefront-backend/pkg/enums"
)

// ContactRequest is a message from the contact page. Source records how
// the sender found the shop and is the only optional field.
type ContactRequest struct {
	Name        string            `json:"name" validate:"required"`
	Email       string            `json:"email" validate:"required,email_shape"`
	Subject     string            `json:"subject" validate:"required"`
	InquiryType enums.InquiryType `json:"inquiry_type" validate:"required,inquiry_type"`
	Message     string            `json:"message" validate:"required"`
	Source      string            `json:"source"`
}

// Receipt acknowledges a delivered message with its support ticket.
type Receipt struct {
	TicketNumber string    `json:"ticket_number"`
	Message      string    `json:"message"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// ticketNumber derives a short support reference from the submission
// instant, matching the format printed on the confirmation card.
func ticketNumber(at time.Time) string {
	return fmt.Sprintf("TKT%06d", at.UnixMilli()%1_000_000)
}
