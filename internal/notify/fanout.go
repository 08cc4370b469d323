package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Multi delivers to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, e Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Async hands events to a background goroutine so the caller's response is
// not held up by delivery. Each delivery is detached from the caller's
// cancellation and bounded by timeout. Failures are logged at Warn and counted
// by kind when a failure counter is set.
type Async struct {
	next     Notifier
	timeout  time.Duration
	logger   *slog.Logger
	failures *prometheus.CounterVec

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

type AsyncOption func(*Async)

// WithFailureCounter counts failed and dropped deliveries. The counter takes a
// single "kind" label.
func WithFailureCounter(c *prometheus.CounterVec) AsyncOption {
	return func(a *Async) {
		a.failures = c
	}
}

func NewAsync(next Notifier, timeout time.Duration, logger *slog.Logger, opts ...AsyncOption) *Async {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Async{next: next, timeout: timeout, logger: logger}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Async) fail(kind EventKind) {
	if a.failures != nil {
		a.failures.WithLabelValues(string(kind)).Inc()
	}
}

// Notify always returns nil. After Close it drops events.
func (a *Async) Notify(ctx context.Context, e Event) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		a.logger.WarnContext(ctx, "notification dropped after shutdown", "kind", string(e.Kind))
		a.fail(e.Kind)
		return nil
	}
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		dctx := context.WithoutCancel(ctx)
		if a.timeout > 0 {
			var cancel context.CancelFunc
			dctx, cancel = context.WithTimeout(dctx, a.timeout)
			defer cancel()
		}
		if err := a.next.Notify(dctx, e); err != nil {
			a.logger.WarnContext(dctx, "notification delivery failed",
				"kind", string(e.Kind),
				"user_id", e.UserID.String(),
				"error", err,
			)
			a.fail(e.Kind)
		}
	}()
	return nil
}

// Close stops accepting events and waits for in-flight deliveries or ctx.
func (a *Async) Close(ctx context.Context) error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
