//go:build integration

package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"estate/internal/property/models"
	"estate/internal/property/store/claim"
	"estate/internal/property/store/ledger"
	id "estate/pkg/domain"
	"estate/pkg/testutil/containers"
)

type PostgresLedgerSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	claims   *claim.PostgresStore
	ledger   *ledger.PostgresStore
}

func TestPostgresLedgerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresLedgerSuite))
}

func (s *PostgresLedgerSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.claims = claim.NewPostgres(s.postgres.DB)
	s.ledger = ledger.NewPostgres(s.postgres.DB)
}

func (s *PostgresLedgerSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), containers.AllTables()...))
}

func (s *PostgresLedgerSuite) TestOrderingAndReplay() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	target, err := models.NewTarget(models.KindCommercial, id.PropertyID(uuid.New()))
	s.Require().NoError(err)
	c, err := models.NewClaim(id.NewClaimID(), id.UserID(uuid.New()), target, models.RoleCommercialOwner, "", now)
	s.Require().NoError(err)
	s.Require().NoError(s.claims.Create(ctx, c))

	first := models.NewSubmissionEntry(c)
	s.Require().NoError(s.ledger.Append(ctx, &first))
	s.NotZero(first.Seq)

	admin := id.UserID(uuid.New())
	res := models.ResolvedResolution{Template: models.TemplateApprovedAllCorrect, Text: models.TemplateApprovedAllCorrect.Text()}
	c.ApplyTransition(models.TransitionApprove, admin, false, res, now)
	second := models.NewTransitionEntry(c, models.StatusPending, res, &admin, now)
	s.Require().NoError(s.ledger.Append(ctx, &second))

	entries, err := s.ledger.ListByClaim(ctx, c.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Nil(entries[0].FromStatus)
	s.Equal(models.TemplateApprovedAllCorrect, entries[1].ResolutionTemplate)
	s.Equal(admin, *entries[1].ChangedBy)

	status, err := models.Replay(entries)
	s.Require().NoError(err)
	s.Equal(models.StatusApproved, status)

	byTarget, err := s.ledger.ListByTarget(ctx, target)
	s.Require().NoError(err)
	s.Len(byTarget, 2)
}
