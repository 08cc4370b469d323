// Package ledger stores the append-only claim history. It exposes one write
// (Append) and two reads; there is no update or delete path.
package ledger

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"estate/internal/property/models"
	id "estate/pkg/domain"
)

// InMemory is an append-only slice of entries. A claim's entries come back in
// append order; a property's entries by (CreatedAt, Seq).
type InMemory struct {
	mu      sync.RWMutex
	entries []models.HistoryEntry
	seq     int64
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

// Append stores e and assigns its Seq.
func (s *InMemory) Append(_ context.Context, e *models.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	e.Seq = s.seq
	s.entries = append(s.entries, *e)
	return nil
}

func (s *InMemory) ListByClaim(_ context.Context, claimID id.ClaimID) ([]models.HistoryEntry, error) {
	return s.filter(func(e *models.HistoryEntry) bool { return e.ClaimID == claimID }, compareSeq), nil
}

func (s *InMemory) ListByTarget(_ context.Context, target models.Target) ([]models.HistoryEntry, error) {
	return s.filter(func(e *models.HistoryEntry) bool { return e.Target == target }, compareEntries), nil
}

func (s *InMemory) filter(match func(*models.HistoryEntry) bool, order func(a, b models.HistoryEntry) int) []models.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.HistoryEntry, 0)
	for i := range s.entries {
		if match(&s.entries[i]) {
			out = append(out, s.entries[i])
		}
	}
	slices.SortStableFunc(out, order)
	return out
}

func compareEntries(a, b models.HistoryEntry) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return compareSeq(a, b)
}

func compareSeq(a, b models.HistoryEntry) int {
	return cmp.Compare(a.Seq, b.Seq)
}

type snapshot struct {
	entries []models.HistoryEntry
	seq     int64
}

func (s *InMemory) Snapshot() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{entries: slices.Clone(s.entries), seq: s.seq}
}

func (s *InMemory) Restore(snap any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restored := snap.(snapshot)
	s.entries = restored.entries
	s.seq = restored.seq
}
