// Package store keeps the coarse global roles (owner, resident) granted to
// users. Grants are idempotent.
package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	id "estate/pkg/domain"
	"estate/pkg/platform/sentinel"
)

type InMemory struct {
	mu     sync.RWMutex
	grants map[id.UserID]map[string]time.Time
}

func NewInMemory() *InMemory {
	return &InMemory{grants: make(map[id.UserID]map[string]time.Time)}
}

func (s *InMemory) Grant(_ context.Context, userID id.UserID, role string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	roles, ok := s.grants[userID]
	if !ok {
		roles = make(map[string]time.Time)
		s.grants[userID] = roles
	}
	if _, held := roles[role]; !held {
		roles[role] = now
	}
	return nil
}

func (s *InMemory) Revoke(_ context.Context, userID id.UserID, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, held := s.grants[userID][role]; !held {
		return fmt.Errorf("role %s for %s: %w", role, userID, sentinel.ErrNotFound)
	}
	delete(s.grants[userID], role)
	return nil
}

func (s *InMemory) Roles(_ context.Context, userID id.UserID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.grants[userID])), nil
}

func (s *InMemory) Snapshot() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[id.UserID]map[string]time.Time, len(s.grants))
	for u, roles := range s.grants {
		out[u] = maps.Clone(roles)
	}
	return out
}

func (s *InMemory) Restore(snapshot any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants = snapshot.(map[id.UserID]map[string]time.Time)
}
