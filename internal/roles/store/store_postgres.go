package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	id "estate/pkg/domain"
	"estate/pkg/platform/sentinel"
	"estate/pkg/platform/tx"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Grant(ctx context.Context, userID id.UserID, role string, now time.Time) error {
	_, err := tx.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO user_roles (user_id, role, granted_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, role) DO NOTHING`, uuid.UUID(userID), role, now)
	if err != nil {
		return fmt.Errorf("grant role: %w", err)
	}
	return nil
}

func (s *PostgresStore) Revoke(ctx context.Context, userID id.UserID, role string) error {
	res, err := tx.Exec(ctx, s.db).ExecContext(ctx,
		`DELETE FROM user_roles WHERE user_id = $1 AND role = $2`, uuid.UUID(userID), role)
	if err != nil {
		return fmt.Errorf("revoke role: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("revoke role rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("role %s for %s: %w", role, userID, sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) Roles(ctx context.Context, userID id.UserID) ([]string, error) {
	rows, err := tx.Exec(ctx, s.db).QueryContext(ctx,
		`SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		out = append(out, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}
	return out, nil
}
