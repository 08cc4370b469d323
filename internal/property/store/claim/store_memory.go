package claim

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

// Error Contract:
//   - ErrNotFound when the claim does not exist
//   - ErrAlreadyUsed when Create would add a second live claim for the same
//     (user, target, role)
//   - ErrConflict when UpdateIfStatus observes a status other than expected
//
// Stored values are copies; callers never share memory with the store.

// InMemory keeps claims in a map for tests and single-process dev runs. It is a
// tx.Participant so an InMemoryTx can roll it back.
type InMemory struct {
	mu     sync.RWMutex
	claims map[id.ClaimID]models.PropertyClaim
}

func NewInMemory() *InMemory {
	return &InMemory{claims: make(map[id.ClaimID]models.PropertyClaim)}
}

func (s *InMemory) Create(_ context.Context, c *models.PropertyClaim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.claims[c.ID]; exists {
		return fmt.Errorf("claim %s: %w", c.ID, sentinel.ErrAlreadyUsed)
	}
	if c.IsLive() {
		for _, existing := range s.claims {
			if existing.IsLive() && existing.SameRight(c) {
				return fmt.Errorf("live claim %s holds this right: %w", existing.ID, sentinel.ErrAlreadyUsed)
			}
		}
	}
	s.claims[c.ID] = *c
	return nil
}

func (s *InMemory) FindByID(_ context.Context, claimID id.ClaimID) (*models.PropertyClaim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.claims[claimID]
	if !ok {
		return nil, fmt.Errorf("claim %s: %w", claimID, sentinel.ErrNotFound)
	}
	return &c, nil
}

// UpdateIfStatus replaces the stored claim only if its status still equals
// expected.
func (s *InMemory) UpdateIfStatus(_ context.Context, c *models.PropertyClaim, expected models.ClaimStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.claims[c.ID]
	if !ok {
		return fmt.Errorf("claim %s: %w", c.ID, sentinel.ErrNotFound)
	}
	if stored.Status != expected {
		return fmt.Errorf("claim %s is %s, expected %s: %w", c.ID, stored.Status, expected, sentinel.ErrConflict)
	}
	s.claims[c.ID] = *c
	return nil
}

func (s *InMemory) ListByUser(_ context.Context, userID id.UserID) ([]*models.PropertyClaim, error) {
	return s.collect(func(c *models.PropertyClaim) bool { return c.UserID == userID }, true), nil
}

func (s *InMemory) ListByStatus(_ context.Context, status models.ClaimStatus) ([]*models.PropertyClaim, error) {
	return s.collect(func(c *models.PropertyClaim) bool { return c.Status == status }, false), nil
}

func (s *InMemory) ListLiveByTarget(_ context.Context, target models.Target) ([]*models.PropertyClaim, error) {
	return s.collect(func(c *models.PropertyClaim) bool { return c.Target == target && c.IsLive() }, false), nil
}

func (s *InMemory) collect(match func(*models.PropertyClaim) bool, newestFirst bool) []*models.PropertyClaim {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.PropertyClaim, 0)
	for _, c := range s.claims {
		if match(&c) {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if newestFirst {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *InMemory) Snapshot() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.claims)
}

func (s *InMemory) Restore(snapshot any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims = snapshot.(map[id.ClaimID]models.PropertyClaim)
}
