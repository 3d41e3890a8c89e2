package newsletter

import (
	"context"
	"fmt"
	"strings"

	"github.com/hadayashop/storefront-backend/internal/analytics"
	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
	"github.com/hadayashop/storefront-backend/pkg/validation"
)

// SubscribeRequest carries the one field the newsletter signup takes.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email_shape"`
}

// Subscription acknowledges a completed signup.
type Subscription struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Service handles newsletter signups from the footer and the blog page.
type Service interface {
	Subscribe(ctx context.Context, sessionID, email string) (Subscription, error)
}

type service struct {
	tracker analytics.Tracker
}

// NewService builds the newsletter service.
func NewService(tracker analytics.Tracker) (Service, error) {
	if tracker == nil {
		tracker = analytics.Noop()
	}
	return &service{tracker: tracker}, nil
}

// Subscribe validates the address and records the signup. The address is
// normalized before it is stored or counted.
func (s *service) Subscribe(ctx context.Context, _ string, email string) (Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validation.IsValidEmail(email) {
		return Subscription{}, pkgerrors.New(pkgerrors.CodeValidation, "يرجى إدخال بريد إلكتروني صحيح").
			WithDetails(fmt.Sprintf("email %q failed shape check", email))
	}

	s.tracker.Track(ctx, analytics.Event{
		Category: "blog",
		Action:   "newsletter_subscription",
		Label:    "blog_page",
	})

	return Subscription{
		Email:   email,
		Message: "شكراً لك! تم الاشتراك في النشرة البريدية بنجاح",
	}, nil
}
