//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"estate/internal/listing/models"
	"estate/internal/listing/store"
	propertymodels "estate/internal/property/models"
	id "estate/pkg/domain"
	"estate/pkg/testutil/containers"
)

type PostgresListingSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresListingSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresListingSuite))
}

func (s *PostgresListingSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresListingSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), containers.AllTables()...))
}

func (s *PostgresListingSuite) TestArchiveOnlyArchivable() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	owner := id.UserID(uuid.New())
	target, err := propertymodels.NewTarget(propertymodels.KindParking, id.PropertyID(uuid.New()))
	s.Require().NoError(err)

	approved, err := models.New(owner, target, "Spot B-12", now)
	s.Require().NoError(err)
	approved.Status = models.StatusApproved
	s.Require().NoError(s.store.Create(ctx, approved))

	rejected, err := models.New(owner, target, "Spot B-12 again", now)
	s.Require().NoError(err)
	rejected.Status = models.StatusRejected
	s.Require().NoError(s.store.Create(ctx, rejected))

	n, err := s.store.ArchiveForProperty(ctx, owner, target, models.ArchiveReasonRightsRevoked, "owner change", owner, now)
	s.Require().NoError(err)
	s.Equal(1, n)

	got, err := s.store.Get(ctx, approved.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusArchived, got.Status)
	s.Equal(models.ArchiveReasonRightsRevoked, got.ArchiveReason)
	s.Equal("owner change", got.ArchiveComment)

	got, err = s.store.Get(ctx, rejected.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusRejected, got.Status)
}
