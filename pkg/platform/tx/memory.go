package tx

import (
	"context"
	"sync"

	dErrors "estate/pkg/domain-errors"
)

// Participant is an in-memory store that can take part in an InMemoryTx.
// Snapshot returns an opaque copy of the store's state; Restore puts it back.
type Participant interface {
	Snapshot() any
	Restore(snapshot any)
}

type memTxKey struct{}

// InMemoryTx serializes transactions with one lock and restores every
// participant's snapshot when fn fails, giving the in-memory stores the same
// all-or-nothing behavior as a database transaction.
//
// The lock is global rather than sharded by claim: a snapshot covers a whole
// store, so restoring it while another transaction runs would undo that
// transaction's writes. Unrelated claims therefore serialize in memory mode,
// which only backs development and tests; Postgres runs them in parallel.
type InMemoryTx struct {
	mu           sync.Mutex
	participants []Participant
}

func NewInMemoryTx(participants ...Participant) *InMemoryTx {
	return &InMemoryTx{participants: participants}
}

func (t *InMemoryTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(memTxKey{}) == t {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	snapshots := make([]any, len(t.participants))
	for i, p := range t.participants {
		snapshots[i] = p.Snapshot()
	}
	defer func() {
		if p := recover(); p != nil {
			t.restore(snapshots)
			panic(p)
		}
		if err != nil {
			t.restore(snapshots)
		}
	}()

	return fn(context.WithValue(ctx, memTxKey{}, t))
}

func (t *InMemoryTx) restore(snapshots []any) {
	for i, p := range t.participants {
		p.Restore(snapshots[i])
	}
}
