package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "estate/pkg/domain"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
	err    error
	delay  time.Duration
}

func (r *recorder) Notify(ctx context.Context, e Event) error {
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func testEvent() Event {
	return Event{
		UserID:     id.UserID(uuid.New()),
		Kind:       EventClaimApproved,
		Payload:    map[string]string{"claim_id": "c-1"},
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestEventJSON(t *testing.T) {
	e := testEvent()
	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, e.UserID.String(), decoded["user_id"])
	assert.Equal(t, "claim_approved", decoded["kind"])
}

func TestMulti(t *testing.T) {
	ok := &recorder{}
	failing := &recorder{err: errors.New("broker down")}
	err := Multi{failing, ok}.Notify(context.Background(), testEvent())

	assert.ErrorContains(t, err, "broker down")
	assert.Equal(t, 1, ok.count(), "a failing notifier does not stop the others")
}

func TestAsync(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	t.Run("delivers after caller context is cancelled", func(t *testing.T) {
		rec := &recorder{delay: 10 * time.Millisecond}
		async := NewAsync(rec, time.Second, logger)

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, async.Notify(ctx, testEvent()))
		cancel()

		require.NoError(t, async.Close(context.Background()))
		assert.Equal(t, 1, rec.count())
	})

	t.Run("failure is logged not returned", func(t *testing.T) {
		async := NewAsync(&recorder{err: errors.New("boom")}, time.Second, logger)
		require.NoError(t, async.Notify(context.Background(), testEvent()))
		require.NoError(t, async.Close(context.Background()))
		assert.Contains(t, logs.String(), "notification delivery failed")
	})

	t.Run("drops after close", func(t *testing.T) {
		rec := &recorder{}
		async := NewAsync(rec, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, async.Close(context.Background()))
		require.NoError(t, async.Notify(context.Background(), testEvent()))
		assert.Zero(t, rec.count())
	})

	t.Run("failed and dropped deliveries are counted by kind", func(t *testing.T) {
		failures := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "notify_failures_total"}, []string{"kind"})
		quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
		async := NewAsync(&recorder{err: errors.New("broker down")}, time.Second, quiet, WithFailureCounter(failures))

		require.NoError(t, async.Notify(context.Background(), testEvent()))
		require.NoError(t, async.Close(context.Background()))
		require.NoError(t, async.Notify(context.Background(), testEvent()))

		kind := string(testEvent().Kind)
		assert.Equal(t, 2.0, testutil.ToFloat64(failures.WithLabelValues(kind)))
	})
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	n := NewLog(slog.New(slog.NewJSONHandler(&buf, nil)))
	require.NoError(t, n.Notify(context.Background(), testEvent()))
	assert.Contains(t, buf.String(), `"kind":"claim_approved"`)
	assert.Contains(t, buf.String(), `"claim_id":"c-1"`)
}
