package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hadayashop/storefront-backend/pkg/logger"
	"github.com/hadayashop/storefront-backend/pkg/metrics"
)

func TestTrackLogsAndCounts(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Output: &buf})
	eventMetrics := metrics.NewEventMetrics(prometheus.NewRegistry())

	tracker := New(logg, eventMetrics)
	tracker.Track(context.Background(), Event{
		Category: "cart",
		Action:   "add_to_cart",
		Label:    "صندوق هدايا فاخر",
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not json: %v", err)
	}
	if entry["event_category"] != "cart" || entry["event_action"] != "add_to_cart" {
		t.Fatalf("missing event fields in %v", entry)
	}
	if entry["event_label"] != "صندوق هدايا فاخر" {
		t.Fatalf("label not logged: %v", entry)
	}
}

func TestTrackToleratesNilCollaborators(t *testing.T) {
	tracker := New(nil, nil)
	// Must not panic.
	tracker.Track(context.Background(), Event{Category: "forms", Action: "submit"})

	Noop().Track(context.Background(), Event{})
}
