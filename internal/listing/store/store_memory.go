// Package store persists listings and implements archive-on-revocation.
package store

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"estate/internal/listing/models"
	propertymodels "estate/internal/property/models"
	id "estate/pkg/domain"
	"estate/pkg/platform/sentinel"
)

type InMemory struct {
	mu       sync.RWMutex
	listings map[id.ListingID]models.Listing
}

func NewInMemory() *InMemory {
	return &InMemory{listings: make(map[id.ListingID]models.Listing)}
}

func (s *InMemory) Create(_ context.Context, l *models.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.listings[l.ID]; ok {
		return fmt.Errorf("listing %s: %w", l.ID, sentinel.ErrAlreadyUsed)
	}
	s.listings[l.ID] = *l
	return nil
}

func (s *InMemory) Get(_ context.Context, listingID id.ListingID) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.listings[listingID]
	if !ok {
		return nil, fmt.Errorf("listing %s: %w", listingID, sentinel.ErrNotFound)
	}
	return &l, nil
}

func (s *InMemory) ListByOwner(_ context.Context, owner id.UserID) ([]*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Listing, 0)
	for _, l := range s.listings {
		if l.OwnerID == owner {
			out = append(out, &l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// ArchiveForProperty archives owner's draft, pending and approved listings on
// target and returns how many changed. Running it twice changes nothing the
// second time.
func (s *InMemory) ArchiveForProperty(_ context.Context, owner id.UserID, target propertymodels.Target,
	reason, comment string, archivedBy id.UserID, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	archived := 0
	for listingID, l := range s.listings {
		if l.OwnerID != owner || l.Target != target || !l.CanArchive() {
			continue
		}
		l.ApplyArchive(reason, comment, archivedBy, now)
		s.listings[listingID] = l
		archived++
	}
	return archived, nil
}

func (s *InMemory) Snapshot() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.listings)
}

func (s *InMemory) Restore(snapshot any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = snapshot.(map[id.ListingID]models.Listing)
}
