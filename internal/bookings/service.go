package bookings

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hadayashop/storefront-backend/internal/analytics"
	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
)

// Service accepts service bookings.
type Service interface {
	Submit(ctx context.Context, sessionID string, req BookingRequest) (Confirmation, error)
}

type service struct {
	submitter Submitter
	tracker   analytics.Tracker
	timeout   time.Duration
	inflight  singleflight.Group
}

// NewService wires the booking pipeline. The timeout bounds the upstream
// call; the singleflight group absorbs double submits from a session
// mashing the button while the upstream is still working.
func NewService(submitter Submitter, tracker analytics.Tracker, timeout time.Duration) (Service, error) {
	if submitter == nil {
		return nil, fmt.Errorf("booking submitter required")
	}
	if tracker == nil {
		tracker = analytics.Noop()
	}
	return &service{submitter: submitter, tracker: tracker, timeout: timeout}, nil
}

// Submit forwards the booking. Concurrent submits from the same session
// collapse into one upstream call sharing its confirmation.
func (s *service) Submit(ctx context.Context, sessionID string, req BookingRequest) (Confirmation, error) {
	result, err, _ := s.inflight.Do(sessionID, func() (any, error) {
		submitCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			submitCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		return s.submitter.Submit(submitCtx, req)
	})
	if err != nil {
		return Confirmation{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submitting booking")
	}

	s.tracker.Track(ctx, analytics.Event{
		Category: "services",
		Action:   "service_booking",
		Label:    req.Service.String(),
	})
	return result.(Confirmation), nil
}
