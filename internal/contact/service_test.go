package contact

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadayashop/storefront-backend/internal/analytics"
	"github.com/hadayashop/storefront-backend/pkg/enums"
)

func validRequest() ContactRequest {
	return ContactRequest{
		Name:        "محمد الغامدي",
		Email:       "mohammed@example.com",
		Subject:     "استفسار عن طلب",
		InquiryType: enums.InquiryOrder,
		Message:     "أين وصل طلبي رقم 1023؟",
	}
}

type countingDeliverer struct {
	calls   atomic.Int64
	latency time.Duration
}

func (c *countingDeliverer) Deliver(ctx context.Context, _ ContactRequest) error {
	c.calls.Add(1)
	if c.latency > 0 {
		timer := time.NewTimer(c.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

func TestSubmitMintsTicket(t *testing.T) {
	svc, err := NewService(&countingDeliverer{}, analytics.Noop(), time.Second)
	require.NoError(t, err)

	receipt, err := svc.Submit(context.Background(), "s1", validRequest())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^TKT\d{6}$`), receipt.TicketNumber)
	assert.True(t, strings.Contains(receipt.Message, "محمد الغامدي"), "receipt should address the sender by name")
}

func TestConcurrentSubmitsShareOneTicket(t *testing.T) {
	deliverer := &countingDeliverer{latency: 50 * time.Millisecond}
	svc, err := NewService(deliverer, analytics.Noop(), time.Second)
	require.NoError(t, err)

	var (
		mu      sync.Mutex
		tickets = map[string]bool{}
		wg      sync.WaitGroup
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			receipt, err := svc.Submit(context.Background(), "s1", validRequest())
			assert.NoError(t, err)
			mu.Lock()
			tickets[receipt.TicketNumber] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), deliverer.calls.Load())
	assert.Len(t, tickets, 1)
}

func TestBusinessHours(t *testing.T) {
	cases := []struct {
		name    string
		at      time.Time
		open    bool
		message string
	}{
		{"sunday morning", time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC), true, "نحن مفتوحون الآن"},
		{"thursday before close", time.Date(2024, 3, 7, 17, 59, 0, 0, time.UTC), true, "نحن مفتوحون الآن"},
		{"thursday at close", time.Date(2024, 3, 7, 18, 0, 0, 0, time.UTC), false, "نحن مغلقون الآن"},
		{"weekday before open", time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC), false, "نحن مغلقون الآن"},
		{"friday afternoon", time.Date(2024, 3, 8, 16, 30, 0, 0, time.UTC), true, "نحن مفتوحون الآن"},
		{"friday morning", time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC), false, "نحن مغلقون الآن"},
		{"saturday", time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC), false, "نحن مغلقون اليوم"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status := BusinessHours(tc.at)
			assert.Equal(t, tc.open, status.IsOpen)
			assert.Equal(t, tc.message, status.Message)
		})
	}
}
