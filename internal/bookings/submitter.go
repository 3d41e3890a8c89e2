package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hadayashop/storefront-backend/pkg/logger"
)

// Submitter delivers a validated booking to whatever fulfils it. The
// production wiring will point at the studio's CRM; until then the
// simulated submitter stands in.
type Submitter interface {
	Submit(ctx context.Context, req BookingRequest) (Confirmation, error)
}

// SimulatedSubmitter acknowledges bookings after a configured latency,
// matching the response time of the eventual upstream. It respects
// cancellation so an abandoned request does not burn a worker.
type SimulatedSubmitter struct {
	latency time.Duration
	logg    *logger.Logger
	now     func() time.Time
}

// NewSimulatedSubmitter builds the stand-in submitter.
func NewSimulatedSubmitter(latency time.Duration, logg *logger.Logger) *SimulatedSubmitter {
	return &SimulatedSubmitter{latency: latency, logg: logg, now: time.Now}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, req BookingRequest) (Confirmation, error) {
	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Confirmation{}, ctx.Err()
	case <-timer.C:
	}

	if s.logg != nil {
		ctx = s.logg.WithField(ctx, "service_type", req.Service.String())
		s.logg.Info(ctx, "booking accepted")
	}

	return Confirmation{
		Reference:   "BKG-" + uuid.NewString(),
		Message:     "تم إرسال طلبك بنجاح! سنتواصل معك خلال 24 ساعة",
		SubmittedAt: s.now().UTC(),
	}, nil
}
