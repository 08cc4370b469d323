// Package binding stores ownership and residency bindings. Each property kind
// has its own table with the same shape; an active binding is a row whose
// revoked_at is NULL.
package binding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"estate/internal/property/models"
	id "estate/pkg/domain"
	"estate/pkg/platform/sentinel"
	"estate/pkg/platform/tx"
)

var tables = map[models.PropertyKind]string{
	models.KindApartment:  "apartment_bindings",
	models.KindParking:    "parking_bindings",
	models.KindCommercial: "commercial_bindings",
}

const bindingColumns = `id, user_id, property_id, role, status, claim_id, created_at,
	revoked_at, revoked_by, revocation_template, revocation_reason`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func tableFor(kind models.PropertyKind) (string, error) {
	t, ok := tables[kind]
	if !ok {
		return "", fmt.Errorf("no binding table for kind %q: %w", kind, sentinel.ErrInvalidState)
	}
	return t, nil
}

// UpsertActive inserts b unless the partial unique index already holds an
// active row for (user, property, role). ON CONFLICT keeps the surrounding
// transaction usable when that happens.
func (s *PostgresStore) UpsertActive(ctx context.Context, b *models.Binding) (*models.Binding, error) {
	table, err := tableFor(b.Target.Kind)
	if err != nil {
		return nil, err
	}
	exec := tx.Exec(ctx, s.db)
	res, err := exec.ExecContext(ctx, `
		INSERT INTO `+table+` (id, user_id, property_id, role, status, claim_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, property_id, role) WHERE revoked_at IS NULL DO NOTHING`,
		uuid.UUID(b.ID), uuid.UUID(b.UserID), uuid.UUID(b.Target.ID), string(b.Role),
		string(b.Status), uuid.NullUUID{UUID: uuid.UUID(b.ClaimID), Valid: !b.ClaimID.IsNil()}, b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert binding: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 1 {
		stored := *b
		return &stored, nil
	}
	row := exec.QueryRowContext(ctx, `SELECT `+bindingColumns+` FROM `+table+`
		WHERE user_id = $1 AND property_id = $2 AND role = $3 AND revoked_at IS NULL`,
		uuid.UUID(b.UserID), uuid.UUID(b.Target.ID), string(b.Role))
	existing, err := scanBinding(row, b.Target.Kind)
	if err != nil {
		return nil, fmt.Errorf("load active binding: %w", err)
	}
	return existing, nil
}

// FindByID looks the id up in every kind table.
func (s *PostgresStore) FindByID(ctx context.Context, bindingID id.BindingID) (*models.Binding, error) {
	exec := tx.Exec(ctx, s.db)
	for _, kind := range models.PropertyKinds() {
		row := exec.QueryRowContext(ctx, `SELECT `+bindingColumns+` FROM `+tables[kind]+` WHERE id = $1`,
			uuid.UUID(bindingID))
		b, err := scanBinding(row, kind)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("find binding: %w", err)
		}
	}
	return nil, fmt.Errorf("binding %s: %w", bindingID, sentinel.ErrNotFound)
}

// Revoke writes the revocation fields if the row is still active. A row
// revoked by a concurrent transaction yields ErrNotFound.
func (s *PostgresStore) Revoke(ctx context.Context, b *models.Binding) error {
	table, err := tableFor(b.Target.Kind)
	if err != nil {
		return err
	}
	if b.RevokedAt == nil || b.RevokedBy == nil {
		return fmt.Errorf("binding %s has no revocation: %w", b.ID, sentinel.ErrInvalidState)
	}
	res, err := tx.Exec(ctx, s.db).ExecContext(ctx, `
		UPDATE `+table+`
		SET revoked_at = $2, revoked_by = $3, revocation_template = $4, revocation_reason = $5
		WHERE id = $1 AND revoked_at IS NULL`,
		uuid.UUID(b.ID), *b.RevokedAt, uuid.UUID(*b.RevokedBy), string(b.RevocationTemplate), b.RevocationReason,
	)
	if err != nil {
		return fmt.Errorf("revoke binding: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("revoke binding rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("active binding %s: %w", b.ID, sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) ListActiveByUserTarget(ctx context.Context, userID id.UserID, target models.Target) ([]*models.Binding, error) {
	table, err := tableFor(target.Kind)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, target.Kind, `SELECT `+bindingColumns+` FROM `+table+`
		WHERE user_id = $1 AND property_id = $2 AND revoked_at IS NULL
		ORDER BY created_at ASC FOR UPDATE`, uuid.UUID(userID), uuid.UUID(target.ID))
}

func (s *PostgresStore) ListActiveByTarget(ctx context.Context, target models.Target) ([]*models.Binding, error) {
	table, err := tableFor(target.Kind)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, target.Kind, `SELECT `+bindingColumns+` FROM `+table+`
		WHERE property_id = $1 AND revoked_at IS NULL ORDER BY created_at ASC`, uuid.UUID(target.ID))
}

// ListActiveByUser reads all three kind tables.
func (s *PostgresStore) ListActiveByUser(ctx context.Context, userID id.UserID) ([]*models.Binding, error) {
	out := make([]*models.Binding, 0)
	for _, kind := range models.PropertyKinds() {
		bs, err := s.query(ctx, kind, `SELECT `+bindingColumns+` FROM `+tables[kind]+`
			WHERE user_id = $1 AND revoked_at IS NULL ORDER BY created_at ASC`, uuid.UUID(userID))
		if err != nil {
			return nil, err
		}
		out = append(out, bs...)
	}
	return out, nil
}

func (s *PostgresStore) query(ctx context.Context, kind models.PropertyKind, query string, args ...any) ([]*models.Binding, error) {
	rows, err := tx.Exec(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s bindings: %w", kind, err)
	}
	defer rows.Close()

	out := make([]*models.Binding, 0)
	for rows.Next() {
		b, err := scanBinding(rows, kind)
		if err != nil {
			return nil, fmt.Errorf("scan %s binding: %w", kind, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s bindings: %w", kind, err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBinding(row scanner, kind models.PropertyKind) (*models.Binding, error) {
	var (
		b                         models.Binding
		bindingID, userID, propID uuid.UUID
		role, status, template    string
		claimID, revokedBy        uuid.NullUUID
		revokedAt                 sql.NullTime
	)
	if err := row.Scan(&bindingID, &userID, &propID, &role, &status, &claimID, &b.CreatedAt,
		&revokedAt, &revokedBy, &template, &b.RevocationReason); err != nil {
		return nil, err
	}
	b.ID = id.BindingID(bindingID)
	b.UserID = id.UserID(userID)
	b.Target = models.Target{Kind: kind, ID: id.PropertyID(propID)}
	b.Role = models.Role(role)
	b.Status = models.BindingStatus(status)
	b.RevocationTemplate = models.RevocationTemplate(template)
	if claimID.Valid {
		b.ClaimID = id.ClaimID(claimID.UUID)
	}
	if revokedAt.Valid {
		t := revokedAt.Time
		b.RevokedAt = &t
	}
	if revokedBy.Valid {
		u := id.UserID(revokedBy.UUID)
		b.RevokedBy = &u
	}
	return &b, nil
}
