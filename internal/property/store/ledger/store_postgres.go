package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"estate/internal/property/models"
	id "estate/pkg/domain"
	"estate/pkg/platform/tx"
)

const entryColumns = `seq, id, claim_id, property_kind, property_id, from_status, to_status,
	resolution_template, resolution_text, changed_by, created_at`

// PostgresStore writes claim_history rows. seq comes from a BIGSERIAL and
// breaks ties between entries written at the same instant.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, e *models.HistoryEntry) error {
	var from sql.NullString
	if e.FromStatus != nil {
		from = sql.NullString{String: string(*e.FromStatus), Valid: true}
	}
	var changedBy uuid.NullUUID
	if e.ChangedBy != nil {
		changedBy = uuid.NullUUID{UUID: uuid.UUID(*e.ChangedBy), Valid: true}
	}
	err := tx.Exec(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO claim_history (id, claim_id, property_kind, property_id, from_status, to_status,
			resolution_template, resolution_text, changed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING seq`,
		uuid.UUID(e.ID), uuid.UUID(e.ClaimID), string(e.Target.Kind), uuid.UUID(e.Target.ID),
		from, string(e.ToStatus), string(e.ResolutionTemplate), e.ResolutionText, changedBy, e.CreatedAt,
	).Scan(&e.Seq)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByClaim(ctx context.Context, claimID id.ClaimID) ([]models.HistoryEntry, error) {
	return s.query(ctx, `SELECT `+entryColumns+` FROM claim_history
		WHERE claim_id = $1 ORDER BY seq ASC`, uuid.UUID(claimID))
}

func (s *PostgresStore) ListByTarget(ctx context.Context, target models.Target) ([]models.HistoryEntry, error) {
	return s.query(ctx, `SELECT `+entryColumns+` FROM claim_history
		WHERE property_kind = $1 AND property_id = $2 ORDER BY created_at ASC, seq ASC`,
		string(target.Kind), uuid.UUID(target.ID))
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]models.HistoryEntry, error) {
	rows, err := tx.Exec(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	out := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var (
			e                        models.HistoryEntry
			entryID, claimID, propID uuid.UUID
			kind, to, template       string
			from                     sql.NullString
			changedBy                uuid.NullUUID
		)
		if err := rows.Scan(&e.Seq, &entryID, &claimID, &kind, &propID, &from, &to,
			&template, &e.ResolutionText, &changedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.ID = id.EntryID(entryID)
		e.ClaimID = id.ClaimID(claimID)
		e.Target = models.Target{Kind: models.PropertyKind(kind), ID: id.PropertyID(propID)}
		e.ToStatus = models.ClaimStatus(to)
		e.ResolutionTemplate = models.ResolutionTemplate(template)
		if from.Valid {
			f := models.ClaimStatus(from.String)
			e.FromStatus = &f
		}
		if changedBy.Valid {
			u := id.UserID(changedBy.UUID)
			e.ChangedBy = &u
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return out, nil
}
