package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "estate/pkg/domain"
	"estate/pkg/platform/sentinel"
)

func TestInMemoryRoles(t *testing.T) {
	ctx := context.Background()
	user := id.UserID(uuid.New())
	s := NewInMemory()

	require.NoError(t, s.Grant(ctx, user, "owner", time.Now()))
	require.NoError(t, s.Grant(ctx, user, "owner", time.Now()))
	require.NoError(t, s.Grant(ctx, user, "resident", time.Now()))

	roles, err := s.Roles(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"owner", "resident"}, roles)

	snap := s.Snapshot()
	require.NoError(t, s.Revoke(ctx, user, "owner"))
	assert.ErrorIs(t, s.Revoke(ctx, user, "owner"), sentinel.ErrNotFound)

	s.Restore(snap)
	roles, err = s.Roles(ctx, user)
	require.NoError(t, err)
	assert.Contains(t, roles, "owner")
}
