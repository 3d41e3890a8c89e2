package contact

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hadayashop/storefront-backend/internal/analytics"
	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
	"github.com/hadayashop/storefront-backend/pkg/logger"
)

// Service delivers contact messages and reports working hours.
type Service interface {
	Submit(ctx context.Context, sessionID string, req ContactRequest) (Receipt, error)
	Hours(ctx context.Context) HoursStatus
}

// Deliverer hands a validated message to the support inbox. The simulated
// deliverer stands in until the helpdesk integration lands.
type Deliverer interface {
	Deliver(ctx context.Context, req ContactRequest) error
}

// SimulatedDeliverer acknowledges after a configured latency, honoring
// cancellation.
type SimulatedDeliverer struct {
	latency time.Duration
	logg    *logger.Logger
}

// NewSimulatedDeliverer builds the stand-in deliverer.
func NewSimulatedDeliverer(latency time.Duration, logg *logger.Logger) *SimulatedDeliverer {
	return &SimulatedDeliverer{latency: latency, logg: logg}
}

func (d *SimulatedDeliverer) Deliver(ctx context.Context, req ContactRequest) error {
	timer := time.NewTimer(d.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if d.logg != nil {
		ctx = d.logg.WithField(ctx, "inquiry_type", req.InquiryType.String())
		d.logg.Info(ctx, "contact message delivered")
	}
	return nil
}

type service struct {
	deliverer Deliverer
	tracker   analytics.Tracker
	timeout   time.Duration
	now       func() time.Time
	inflight  singleflight.Group
}

// NewService wires the contact pipeline.
func NewService(deliverer Deliverer, tracker analytics.Tracker, timeout time.Duration) (Service, error) {
	if deliverer == nil {
		return nil, fmt.Errorf("contact deliverer required")
	}
	if tracker == nil {
		tracker = analytics.Noop()
	}
	return &service{
		deliverer: deliverer,
		tracker:   tracker,
		timeout:   timeout,
		now:       time.Now,
	}, nil
}

// Submit delivers the message and mints the support ticket. Concurrent
// submits from the same session share one delivery and one ticket.
func (s *service) Submit(ctx context.Context, sessionID string, req ContactRequest) (Receipt, error) {
	result, err, _ := s.inflight.Do(sessionID, func() (any, error) {
		deliverCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			deliverCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		if err := s.deliverer.Deliver(deliverCtx, req); err != nil {
			return nil, err
		}

		at := s.now().UTC()
		return Receipt{
			TicketNumber: ticketNumber(at),
			Message:      fmt.Sprintf("شكراً لك %s، سنرد على رسالتك خلال 24 ساعة.", req.Name),
			SubmittedAt:  at,
		}, nil
	})
	if err != nil {
		return Receipt{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delivering contact message")
	}

	s.tracker.Track(ctx, analytics.Event{
		Category: "contact",
		Action:   "contact_form_submission",
		Label:    req.InquiryType.String(),
	})
	return result.(Receipt), nil
}

// Hours reports the current working-hours status.
func (s *service) Hours(_ context.Context) HoursStatus {
	return BusinessHours(s.now())
}
