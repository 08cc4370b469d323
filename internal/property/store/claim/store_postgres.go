package claim

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"estate/internal/platform/postgres"
	"estate/internal/property/models"
	id "estate/pkg/domain"
	"estate/pkg/platform/sentinel"
	"estate/pkg/platform/tx"
)

const claimColumns = `id, user_id, claim_type, apartment_id, parking_id, commercial_id, claimed_role,
	status, user_comment, admin_comment, cancelled_by_user, reviewed_by, reviewed_at, created_at, updated_at`

// PostgresStore persists claims in PostgreSQL. The live-claim rule is enforced
// by the property_claims_one_live partial unique index; status changes are
// conditional on the status the caller observed.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, c *models.PropertyClaim) error {
	apartment, parking, commercial := targetColumns(c.Target)
	_, err := tx.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO property_claims (`+claimColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		uuid.UUID(c.ID), uuid.UUID(c.UserID), string(c.Target.Kind), apartment, parking, commercial,
		string(c.ClaimedRole), string(c.Status), c.UserComment, c.AdminComment, c.CancelledByUser,
		nullUser(c.ReviewedBy), nullTime(c.ReviewedAt), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, "") {
			return fmt.Errorf("create claim: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create claim: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, claimID id.ClaimID) (*models.PropertyClaim, error) {
	row := tx.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+claimColumns+` FROM property_claims WHERE id = $1`, uuid.UUID(claimID))
	c, err := scanClaim(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("claim %s: %w", claimID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find claim: %w", err)
	}
	return c, nil
}

// UpdateIfStatus writes the claim's mutable columns when the stored status
// still equals expected. Under READ COMMITTED a concurrent writer that commits
// first makes the WHERE clause fail on re-check, so the loser sees zero rows.
func (s *PostgresStore) UpdateIfStatus(ctx context.Context, c *models.PropertyClaim, expected models.ClaimStatus) error {
	exec := tx.Exec(ctx, s.db)
	res, err := exec.ExecContext(ctx, `
		UPDATE property_claims
		SET status = $2, admin_comment = $3, cancelled_by_user = $4,
		    reviewed_by = $5, reviewed_at = $6, updated_at = $7
		WHERE id = $1 AND status = $8`,
		uuid.UUID(c.ID), string(c.Status), c.AdminComment, c.CancelledByUser,
		nullUser(c.ReviewedBy), nullTime(c.ReviewedAt), c.UpdatedAt, string(expected),
	)
	if err != nil {
		return fmt.Errorf("update claim status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update claim status rows: %w", err)
	}
	if n > 0 {
		return nil
	}
	var exists bool
	if err := exec.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM property_claims WHERE id = $1)`, uuid.UUID(c.ID)).Scan(&exists); err != nil {
		return fmt.Errorf("check claim: %w", err)
	}
	if !exists {
		return fmt.Errorf("claim %s: %w", c.ID, sentinel.ErrNotFound)
	}
	return fmt.Errorf("claim %s moved past %s: %w", c.ID, expected, sentinel.ErrConflict)
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID) ([]*models.PropertyClaim, error) {
	return s.query(ctx, `SELECT `+claimColumns+` FROM property_claims
		WHERE user_id = $1 ORDER BY created_at DESC`, uuid.UUID(userID))
}

func (s *PostgresStore) ListByStatus(ctx context.Context, status models.ClaimStatus) ([]*models.PropertyClaim, error) {
	return s.query(ctx, `SELECT `+claimColumns+` FROM property_claims
		WHERE status = $1 ORDER BY created_at ASC`, string(status))
}

func (s *PostgresStore) ListLiveByTarget(ctx context.Context, target models.Target) ([]*models.PropertyClaim, error) {
	return s.query(ctx, `SELECT `+claimColumns+` FROM property_claims
		WHERE claim_type = $1 AND COALESCE(apartment_id, parking_id, commercial_id) = $2
		  AND status IN ('pending', 'review', 'documents_requested')
		ORDER BY created_at ASC`, string(target.Kind), uuid.UUID(target.ID))
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]*models.PropertyClaim, error) {
	rows, err := tx.Exec(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	out := make([]*models.PropertyClaim, 0)
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claims: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClaim(row scanner) (*models.PropertyClaim, error) {
	var (
		claimID, userID                uuid.UUID
		kind, role, status             string
		apartment, parking, commercial uuid.NullUUID
		reviewedBy                     uuid.NullUUID
		reviewedAt                     sql.NullTime
		c                              models.PropertyClaim
	)
	if err := row.Scan(&claimID, &userID, &kind, &apartment, &parking, &commercial, &role,
		&status, &c.UserComment, &c.AdminComment, &c.CancelledByUser, &reviewedBy, &reviewedAt,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.ID = id.ClaimID(claimID)
	c.UserID = id.UserID(userID)
	c.Target = models.Target{Kind: models.PropertyKind(kind)}
	switch {
	case apartment.Valid:
		c.Target.ID = id.PropertyID(apartment.UUID)
	case parking.Valid:
		c.Target.ID = id.PropertyID(parking.UUID)
	case commercial.Valid:
		c.Target.ID = id.PropertyID(commercial.UUID)
	}
	c.ClaimedRole = models.Role(role)
	c.Status = models.ClaimStatus(status)
	if reviewedBy.Valid {
		u := id.UserID(reviewedBy.UUID)
		c.ReviewedBy = &u
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		c.ReviewedAt = &t
	}
	return &c, nil
}

// targetColumns spreads a Target over the three nullable id columns. Exactly
// one is non-nil; the table's CHECK constraint enforces the same.
func targetColumns(t models.Target) (apartment, parking, commercial uuid.NullUUID) {
	v := uuid.NullUUID{UUID: uuid.UUID(t.ID), Valid: true}
	switch t.Kind {
	case models.KindApartment:
		apartment = v
	case models.KindParking:
		parking = v
	case models.KindCommercial:
		commercial = v
	}
	return apartment, parking, commercial
}

func nullUser(u *id.UserID) uuid.NullUUID {
	if u == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(*u), Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
