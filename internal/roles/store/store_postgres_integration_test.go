//go:build integration

package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"estate/internal/roles/store"
	id "estate/pkg/domain"
	"estate/pkg/platform/sentinel"
	"estate/pkg/platform/tx"
	"estate/pkg/testutil/containers"
)

type PostgresRolesSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresRolesSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresRolesSuite))
}

func (s *PostgresRolesSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresRolesSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), containers.AllTables()...))
}

func (s *PostgresRolesSuite) TestGrantIsIdempotent() {
	ctx := context.Background()
	userID := id.UserID(uuid.New())
	now := time.Now()

	s.Require().NoError(s.store.Grant(ctx, userID, "owner", now))
	s.Require().NoError(s.store.Grant(ctx, userID, "owner", now.Add(time.Minute)))
	s.Require().NoError(s.store.Grant(ctx, userID, "resident", now))

	roles, err := s.store.Roles(ctx, userID)
	s.Require().NoError(err)
	s.Equal([]string{"owner", "resident"}, roles)
}

func (s *PostgresRolesSuite) TestRevokeMissingRole() {
	err := s.store.Revoke(context.Background(), id.UserID(uuid.New()), "owner")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresRolesSuite) TestGrantRollsBackWithTransaction() {
	ctx := context.Background()
	userID := id.UserID(uuid.New())
	runner := tx.NewPostgresTx(s.postgres.DB, 5*time.Second)
	boom := errors.New("boom")

	err := runner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.Grant(ctx, userID, "owner", time.Now()); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	roles, err := s.store.Roles(ctx, userID)
	s.Require().NoError(err)
	s.Empty(roles)
}
