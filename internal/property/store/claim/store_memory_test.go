package claim

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"estate/internal/property/models"
	id "estate/pkg/domain"
	"estate/pkg/platform/sentinel"
)

type ClaimStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	now   time.Time
}

func TestClaimStoreSuite(t *testing.T) {
	suite.Run(t, new(ClaimStoreSuite))
}

func (s *ClaimStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
}

func (s *ClaimStoreSuite) newClaim(userID id.UserID, target models.Target) *models.PropertyClaim {
	c, err := models.NewClaim(id.NewClaimID(), userID, target, models.RoleOwner, "", s.now)
	s.Require().NoError(err)
	return c
}

func (s *ClaimStoreSuite) target() models.Target {
	t, err := models.NewTarget(models.KindApartment, id.PropertyID(uuid.New()))
	s.Require().NoError(err)
	return t
}

func (s *ClaimStoreSuite) TestCreateAndFind() {
	c := s.newClaim(id.UserID(uuid.New()), s.target())
	s.Require().NoError(s.store.Create(s.ctx, c))

	found, err := s.store.FindByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(*c, *found)

	found.Status = models.StatusApproved
	again, err := s.store.FindByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, again.Status, "returned claims must be copies")

	_, err = s.store.FindByID(s.ctx, id.NewClaimID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ClaimStoreSuite) TestOneLiveClaimPerRight() {
	user := id.UserID(uuid.New())
	target := s.target()
	first := s.newClaim(user, target)
	s.Require().NoError(s.store.Create(s.ctx, first))

	s.Run("second live claim is rejected", func() {
		err := s.store.Create(s.ctx, s.newClaim(user, target))
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	})

	s.Run("other user may claim the same unit", func() {
		s.NoError(s.store.Create(s.ctx, s.newClaim(id.UserID(uuid.New()), target)))
	})

	s.Run("resubmission allowed once the first is terminal", func() {
		first.ApplyTransition(models.TransitionReject, id.UserID(uuid.New()), false,
			models.ResolvedResolution{Template: models.TemplateRejectedDuplicate, Text: "dup"}, s.now)
		s.Require().NoError(s.store.UpdateIfStatus(s.ctx, first, models.StatusPending))
		s.NoError(s.store.Create(s.ctx, s.newClaim(user, target)))
	})
}

func (s *ClaimStoreSuite) TestUpdateIfStatus() {
	c := s.newClaim(id.UserID(uuid.New()), s.target())
	s.Require().NoError(s.store.Create(s.ctx, c))

	c.ApplyTransition(models.TransitionReview, id.UserID(uuid.New()), false, models.ResolvedResolution{}, s.now)
	s.Require().NoError(s.store.UpdateIfStatus(s.ctx, c, models.StatusPending))

	s.Run("stale expectation conflicts", func() {
		err := s.store.UpdateIfStatus(s.ctx, c, models.StatusPending)
		s.ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("unknown claim", func() {
		other := s.newClaim(id.UserID(uuid.New()), s.target())
		err := s.store.UpdateIfStatus(s.ctx, other, models.StatusPending)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *ClaimStoreSuite) TestListings() {
	user := id.UserID(uuid.New())
	target := s.target()
	older := s.newClaim(user, target)
	s.Require().NoError(s.store.Create(s.ctx, older))

	s.now = s.now.Add(time.Hour)
	newer := s.newClaim(user, s.target())
	s.Require().NoError(s.store.Create(s.ctx, newer))

	mine, err := s.store.ListByUser(s.ctx, user)
	s.Require().NoError(err)
	s.Require().Len(mine, 2)
	s.Equal(newer.ID, mine[0].ID)

	pending, err := s.store.ListByStatus(s.ctx, models.StatusPending)
	s.Require().NoError(err)
	s.Require().Len(pending, 2)
	s.Equal(older.ID, pending[0].ID)

	live, err := s.store.ListLiveByTarget(s.ctx, target)
	s.Require().NoError(err)
	s.Require().Len(live, 1)
	s.Equal(older.ID, live[0].ID)
}

func (s *ClaimStoreSuite) TestSnapshotRestore() {
	c := s.newClaim(id.UserID(uuid.New()), s.target())
	snap := s.store.Snapshot()
	s.Require().NoError(s.store.Create(s.ctx, c))

	s.store.Restore(snap)
	_, err := s.store.FindByID(s.ctx, c.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
