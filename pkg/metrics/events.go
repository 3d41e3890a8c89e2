package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// EventMetrics counts the fire-and-forget storefront events.
type EventMetrics struct {
	events *prometheus.CounterVec
}

// NewEventMetrics registers the event counters on the provided registerer.
func NewEventMetrics(reg prometheus.Registerer) *EventMetrics {
	if reg == nil {
		return &EventMetrics{}
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_events_total",
		Help: "Storefront analytics events by category and action.",
	}, []string{"category", "action"})
	reg.MustRegister(events)
	return &EventMetrics{events: events}
}

// IncEvent increments the counter for the category/action pair.
func (m *EventMetrics) IncEvent(category, action string) {
	if m == nil || m.events == nil {
		return
	}
	m.events.WithLabelValues(normalizeLabel(category), normalizeLabel(action)).Inc()
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return strings.ReplaceAll(value, " ", "_")
}
