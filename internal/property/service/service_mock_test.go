package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"estate/internal/property/models"
	"estate/internal/property/service/mocks"
	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
	"estate/pkg/platform/sentinel"
	"estate/pkg/platform/tx"
	"estate/pkg/requestcontext"
)

// =============================================================================
// Store Error Translation Suite
// =============================================================================
// Justification: store failures the in-memory stores never produce (lost
// conditional updates, driver errors) must still map onto the domain codes
// callers branch on.

type StoreErrorSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	claims   *mocks.MockClaimStore
	ledger   *mocks.MockLedgerStore
	bindings *mocks.MockBindingStore
	listings *mocks.MockListingArchiver
	roles    *mocks.MockRoleGranter

	claimSvc   *ClaimService
	bindingSvc *BindingService
	ctx        context.Context
	admin      Actor
}

func TestStoreErrorSuite(t *testing.T) {
	suite.Run(t, new(StoreErrorSuite))
}

func (s *StoreErrorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.claims = mocks.NewMockClaimStore(s.ctrl)
	s.ledger = mocks.NewMockLedgerStore(s.ctrl)
	s.bindings = mocks.NewMockBindingStore(s.ctrl)
	s.listings = mocks.NewMockListingArchiver(s.ctrl)
	s.roles = mocks.NewMockRoleGranter(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := tx.NewInMemoryTx()
	s.bindingSvc = NewBindingService(s.bindings, s.listings, s.roles, runner, WithLogger(logger))
	s.claimSvc = NewClaimService(s.claims, s.ledger, s.bindingSvc, runner, WithLogger(logger))
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	s.admin = Actor{UserID: id.UserID(uuid.New()), Admin: true}
}

func (s *StoreErrorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StoreErrorSuite) pendingClaim(role models.Role) *models.PropertyClaim {
	target, err := models.NewTarget(models.KindApartment, id.PropertyID(uuid.New()))
	s.Require().NoError(err)
	c, err := models.NewClaim(id.NewClaimID(), id.UserID(uuid.New()), target, role, "", time.Now())
	s.Require().NoError(err)
	return c
}

func (s *StoreErrorSuite) TestSubmit() {
	s.Run("unique violation becomes duplicate in flight", func() {
		s.claims.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("insert claim: %w", sentinel.ErrAlreadyUsed))

		_, err := s.claimSvc.Submit(s.ctx, Actor{UserID: id.UserID(uuid.New())}, SubmitRequest{
			Target: s.pendingClaim(models.RoleOwner).Target,
			Role:   models.RoleOwner,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeDuplicateInFlight))
	})

	s.Run("ledger failure surfaces as internal", func() {
		s.claims.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := s.claimSvc.Submit(s.ctx, Actor{UserID: id.UserID(uuid.New())}, SubmitRequest{
			Target: s.pendingClaim(models.RoleOwner).Target,
			Role:   models.RoleOwner,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *StoreErrorSuite) TestTransition() {
	approve := models.Resolution{Template: models.TemplateApprovedAllCorrect}

	s.Run("lost conditional update is stale state", func() {
		c := s.pendingClaim(models.RoleOwner)
		s.claims.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)
		s.claims.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), models.StatusPending).
			Return(fmt.Errorf("update claim: %w", sentinel.ErrConflict))

		_, err := s.claimSvc.Approve(s.ctx, s.admin, c.ID, approve)
		s.True(dErrors.HasCode(err, dErrors.CodeStaleState))
	})

	s.Run("approval appends ledger entry then upserts binding and grants role", func() {
		c := s.pendingClaim(models.RoleTenant)
		gomock.InOrder(
			s.claims.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil),
			s.claims.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), models.StatusPending).Return(nil),
			s.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e *models.HistoryEntry) error {
					s.Equal(models.StatusApproved, e.ToStatus)
					s.Require().NotNil(e.FromStatus)
					s.Equal(models.StatusPending, *e.FromStatus)
					s.Equal(s.admin.UserID, *e.ChangedBy)
					return nil
				}),
			s.bindings.EXPECT().UpsertActive(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b *models.Binding) (*models.Binding, error) {
					return b, nil
				}),
			s.roles.EXPECT().Grant(gomock.Any(), c.UserID, "resident", gomock.Any()).Return(nil),
		)

		got, err := s.claimSvc.Approve(s.ctx, s.admin, c.ID, approve)
		s.Require().NoError(err)
		s.Equal(models.StatusApproved, got.Status)
	})

	s.Run("binding failure fails the approval", func() {
		c := s.pendingClaim(models.RoleOwner)
		s.claims.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)
		s.claims.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), models.StatusPending).Return(nil)
		s.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		s.bindings.EXPECT().UpsertActive(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := s.claimSvc.Approve(s.ctx, s.admin, c.ID, approve)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("invalid resolution never reaches the store", func() {
		_, err := s.claimSvc.Approve(s.ctx, s.admin, id.NewClaimID(), models.Resolution{Template: models.TemplateRejectedNotOwner})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *StoreErrorSuite) TestRevoke() {
	holder := id.UserID(uuid.New())
	target, err := models.NewTarget(models.KindParking, id.PropertyID(uuid.New()))
	s.Require().NoError(err)
	active := func() *models.Binding {
		return &models.Binding{
			ID:     id.NewBindingID(),
			UserID: holder,
			Target: target,
			Role:   models.RoleParkingOwner,
			Status: models.BindingApproved,
		}
	}

	s.Run("concurrently revoked binding is not found", func() {
		s.bindings.EXPECT().ListActiveByUserTarget(gomock.Any(), holder, target).
			Return([]*models.Binding{active()}, nil)
		s.bindings.EXPECT().Revoke(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("revoke: %w", sentinel.ErrNotFound))

		_, err := s.bindingSvc.RevokeOwn(s.ctx, Actor{UserID: holder}, RevokeRequest{Target: target})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("archive failure fails the revocation", func() {
		s.bindings.EXPECT().ListActiveByUserTarget(gomock.Any(), holder, target).
			Return([]*models.Binding{active()}, nil)
		s.bindings.EXPECT().Revoke(gomock.Any(), gomock.Any()).Return(nil)
		s.listings.EXPECT().ArchiveForProperty(gomock.Any(), holder, target, "rights_revoked",
			models.RevocationAdminDecision.Text(), s.admin.UserID, gomock.Any()).
			Return(0, errors.New("timeout"))

		_, err := s.bindingSvc.AdminRevoke(s.ctx, s.admin, holder, RevokeRequest{Target: target})
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("role for another kind is rejected before any read", func() {
		_, err := s.bindingSvc.RevokeOwn(s.ctx, Actor{UserID: holder}, RevokeRequest{Target: target, Role: models.RoleOwner})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}
