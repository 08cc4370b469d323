package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"estate/internal/listing/models"
	"estate/internal/platform/postgres"
	propertymodels "estate/internal/property/models"
	id "estate/pkg/domain"
	"estate/pkg/platform/sentinel"
	"estate/pkg/platform/tx"
)

const listingColumns = `id, owner_id, property_kind, property_id, title, status, archive_reason,
	archive_comment, archived_by, archived_at, created_at, updated_at`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, l *models.Listing) error {
	_, err := tx.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO listings (id, owner_id, property_kind, property_id, title, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.UUID(l.ID), uuid.UUID(l.OwnerID), string(l.Target.Kind), uuid.UUID(l.Target.ID),
		l.Title, string(l.Status), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, "") {
			return fmt.Errorf("create listing: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create listing: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, listingID id.ListingID) (*models.Listing, error) {
	row := tx.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE id = $1`, uuid.UUID(listingID))
	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("listing %s: %w", listingID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, owner id.UserID) ([]*models.Listing, error) {
	rows, err := tx.Exec(ctx, s.db).QueryContext(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE owner_id = $1 ORDER BY created_at ASC`, uuid.UUID(owner))
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()
	out := make([]*models.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return out, nil
}

// ArchiveForProperty archives owner's draft, pending and approved listings on
// target in one statement.
func (s *PostgresStore) ArchiveForProperty(ctx context.Context, owner id.UserID, target propertymodels.Target,
	reason, comment string, archivedBy id.UserID, now time.Time) (int, error) {
	statuses := make([]string, 0, 3)
	for _, st := range models.ArchivableStatuses() {
		statuses = append(statuses, string(st))
	}
	res, err := tx.Exec(ctx, s.db).ExecContext(ctx, `
		UPDATE listings
		SET status = 'archived', archive_reason = $4, archive_comment = $5,
		    archived_by = $6, archived_at = $7, updated_at = $7
		WHERE owner_id = $1 AND property_kind = $2 AND property_id = $3
		  AND status = ANY($8)`,
		uuid.UUID(owner), string(target.Kind), uuid.UUID(target.ID),
		reason, comment, uuid.UUID(archivedBy), now, pq.Array(statuses),
	)
	if err != nil {
		return 0, fmt.Errorf("archive listings: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("archive listings rows: %w", err)
	}
	return int(n), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(row scanner) (*models.Listing, error) {
	var (
		l                          models.Listing
		listingID, ownerID, propID uuid.UUID
		kind, status               string
		archivedBy                 uuid.NullUUID
		archivedAt                 sql.NullTime
	)
	if err := row.Scan(&listingID, &ownerID, &kind, &propID, &l.Title, &status, &l.ArchiveReason,
		&l.ArchiveComment, &archivedBy, &archivedAt, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.ID = id.ListingID(listingID)
	l.OwnerID = id.UserID(ownerID)
	l.Target = propertymodels.Target{Kind: propertymodels.PropertyKind(kind), ID: id.PropertyID(propID)}
	l.Status = models.Status(status)
	if archivedBy.Valid {
		u := id.UserID(archivedBy.UUID)
		l.ArchivedBy = &u
	}
	if archivedAt.Valid {
		t := archivedAt.Time
		l.ArchivedAt = &t
	}
	return &l, nil
}
