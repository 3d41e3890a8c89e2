package analytics

import (
	"context"

	"github.com/hadayashop/storefront-backend/pkg/logger"
	"github.com/hadayashop/storefront-backend/pkg/metrics"
)

// Event is one interaction worth counting: a cart add, a form submit,
// a theme flip. Category groups events, Action names the interaction
// and Label carries the free-form detail.
type Event struct {
	Category string
	Action   string
	Label    string
}

// Tracker records storefront events. Implementations must be safe for
// concurrent use and must never fail the calling request.
type Tracker interface {
	Track(ctx context.Context, event Event)
}

type tracker struct {
	logg    *logger.Logger
	metrics *metrics.EventMetrics
}

// New builds the default tracker: every event is logged with its session
// context and counted in the events counter.
func New(logg *logger.Logger, eventMetrics *metrics.EventMetrics) Tracker {
	return &tracker{logg: logg, metrics: eventMetrics}
}

// Track logs and counts the event. A zero-value tracker is a no-op so
// services can hold a Tracker without nil checks at every call site.
func (t *tracker) Track(ctx context.Context, event Event) {
	if t == nil {
		return
	}
	if t.metrics != nil {
		t.metrics.IncEvent(event.Category, event.Action)
	}
	if t.logg != nil {
		ctx = t.logg.WithFields(ctx, map[string]any{
			"event_category": event.Category,
			"event_action":   event.Action,
			"event_label":    event.Label,
		})
		t.logg.Info(ctx, "event tracked")
	}
}

// Noop returns a tracker that drops everything, for tests and for wiring
// paths where analytics is disabled.
func Noop() Tracker {
	return noopTracker{}
}

type noopTracker struct{}

func (noopTracker) Track(context.Context, Event) {}
