package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwttoken "estate/internal/jwt_token"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("JWT_SIGNING_KEY", "cli-test-key")
	t.Setenv("JWT_ISSUER", "estate-test")

	t.Run("mints an admin token the service accepts", func(t *testing.T) {
		user := uuid.NewString()
		out, err := execute(t, "token", "--user", user, "--admin", "--ttl", "1m")
		require.NoError(t, err)

		claims, err := jwttoken.NewJWTService("cli-test-key", "estate-test").ValidateToken(strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, user, claims.UserID)
		assert.Equal(t, []string{"admin"}, claims.Roles)
	})

	t.Run("rejects a malformed user id", func(t *testing.T) {
		_, err := execute(t, "token", "--user", "bob")
		require.Error(t, err)
	})

	t.Run("user flag is required", func(t *testing.T) {
		_, err := execute(t, "token")
		require.Error(t, err)
	})

	t.Run("refuses in production", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		_, err := execute(t, "token", "--user", uuid.NewString())
		require.Error(t, err)
	})
}

func TestDatabaseCommandsNeedURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	for _, args := range [][]string{
		{"roles", "strip", uuid.NewString(), "owner"},
		{"migrate"},
		{"migrate", "status"},
	} {
		_, err := execute(t, args...)
		require.EqualError(t, err, "DATABASE_URL is required", "%v", args)
	}
}
