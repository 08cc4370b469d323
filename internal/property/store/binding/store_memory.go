package binding

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"

	"estate/internal/property/models"
	id "estate/pkg/domain"
	"estate/pkg/platform/sentinel"
)

// InMemory keeps bindings of every kind in one map. Revoked rows stay.
type InMemory struct {
	mu       sync.RWMutex
	bindings map[id.BindingID]models.Binding
}

func NewInMemory() *InMemory {
	return &InMemory{bindings: make(map[id.BindingID]models.Binding)}
}

// UpsertActive stores b unless an active binding for the same
// (user, target, role) exists, in which case that one is returned untouched.
func (s *InMemory) UpsertActive(_ context.Context, b *models.Binding) (*models.Binding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.bindings {
		if existing.IsActive() && existing.UserID == b.UserID && existing.Target == b.Target && existing.Role == b.Role {
			return &existing, nil
		}
	}
	s.bindings[b.ID] = *b
	stored := *b
	return &stored, nil
}

func (s *InMemory) FindByID(_ context.Context, bindingID id.BindingID) (*models.Binding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bindings[bindingID]
	if !ok {
		return nil, fmt.Errorf("binding %s: %w", bindingID, sentinel.ErrNotFound)
	}
	return &b, nil
}

// Revoke persists the revocation fields of b if the stored row is still active.
func (s *InMemory) Revoke(_ context.Context, b *models.Binding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.bindings[b.ID]
	if !ok || !stored.IsActive() {
		return fmt.Errorf("active binding %s: %w", b.ID, sentinel.ErrNotFound)
	}
	s.bindings[b.ID] = *b
	return nil
}

func (s *InMemory) ListActiveByUserTarget(_ context.Context, userID id.UserID, target models.Target) ([]*models.Binding, error) {
	return s.active(func(b *models.Binding) bool { return b.UserID == userID && b.Target == target }), nil
}

func (s *InMemory) ListActiveByUser(_ context.Context, userID id.UserID) ([]*models.Binding, error) {
	return s.active(func(b *models.Binding) bool { return b.UserID == userID }), nil
}

func (s *InMemory) ListActiveByTarget(_ context.Context, target models.Target) ([]*models.Binding, error) {
	return s.active(func(b *models.Binding) bool { return b.Target == target }), nil
}

func (s *InMemory) active(match func(*models.Binding) bool) []*models.Binding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Binding, 0)
	for _, b := range s.bindings {
		if b.IsActive() && match(&b) {
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *InMemory) Snapshot() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.bindings)
}

func (s *InMemory) Restore(snapshot any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = snapshot.(map[id.BindingID]models.Binding)
}
