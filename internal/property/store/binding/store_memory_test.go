package binding

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

type BindingStoreSuite struct {
	suite.Suite
	store  *InMemory
	ctx    context.Context
	now    time.Time
	target models.Target
}

func TestBindingStoreSuite(t *testing.T) {
	suite.Run(t, new(BindingStoreSuite))
}

func (s *BindingStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	target, err := models.NewTarget(models.KindApartment, id.PropertyID(uuid.New()))
	s.Require().NoError(err)
	s.target = target
}

func (s *BindingStoreSuite) approved(user id.UserID, role models.Role) *models.Binding {
	c, err := models.NewClaim(id.NewClaimID(), user, s.target, role, "", s.now)
	s.Require().NoError(err)
	return models.NewApprovedBinding(c, s.now)
}

func (s *BindingStoreSuite) TestUpsertIsIdempotent() {
	user := id.UserID(uuid.New())
	first, err := s.store.UpsertActive(s.ctx, s.approved(user, models.RoleOwner))
	s.Require().NoError(err)

	second, err := s.store.UpsertActive(s.ctx, s.approved(user, models.RoleOwner))
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)

	active, err := s.store.ListActiveByUser(s.ctx, user)
	s.Require().NoError(err)
	s.Len(active, 1)
}

func (s *BindingStoreSuite) TestManyHoldersPerUnit() {
	_, err := s.store.UpsertActive(s.ctx, s.approved(id.UserID(uuid.New()), models.RoleOwner))
	s.Require().NoError(err)
	_, err = s.store.UpsertActive(s.ctx, s.approved(id.UserID(uuid.New()), models.RoleOwner))
	s.Require().NoError(err)

	active, err := s.store.ListActiveByTarget(s.ctx, s.target)
	s.Require().NoError(err)
	s.Len(active, 2)
}

func (s *BindingStoreSuite) TestRevoke() {
	user := id.UserID(uuid.New())
	b, err := s.store.UpsertActive(s.ctx, s.approved(user, models.RoleOwner))
	s.Require().NoError(err)

	b.ApplyRevocation(id.UserID(uuid.New()), models.RevocationOwnerChange, "sold", s.now)
	s.Require().NoError(s.store.Revoke(s.ctx, b))

	s.Run("revoked row is kept but inactive", func() {
		stored, err := s.store.FindByID(s.ctx, b.ID)
		s.Require().NoError(err)
		s.False(stored.IsActive())
		s.Equal(models.RevocationOwnerChange, stored.RevocationTemplate)

		active, err := s.store.ListActiveByUserTarget(s.ctx, user, s.target)
		s.Require().NoError(err)
		s.Empty(active)
	})

	s.Run("second revoke is not found", func() {
		s.ErrorIs(s.store.Revoke(s.ctx, b), sentinel.ErrNotFound)
	})

	s.Run("reapproval creates a fresh row", func() {
		fresh, err := s.store.UpsertActive(s.ctx, s.approved(user, models.RoleOwner))
		s.Require().NoError(err)
		s.NotEqual(b.ID, fresh.ID)
	})
}
