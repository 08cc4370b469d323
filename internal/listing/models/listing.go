// Package models describes marketplace listings as far as rights revocation
// needs them.
package models

import (
	"slices"
	"strings"
	"time"

	propertymodels "estate/internal/property/models"
	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
)

type Status string

const (
	StatusDraft             Status = "draft"
	StatusPendingModeration Status = "pending_moderation"
	StatusApproved          Status = "approved"
	StatusRejected          Status = "rejected"
	StatusArchived          Status = "archived"
)

// ArchiveReasonRightsRevoked is recorded on listings archived because their
// owner lost rights to the unit.
const ArchiveReasonRightsRevoked = "rights_revoked"

var archivable = []Status{StatusDraft, StatusPendingModeration, StatusApproved}

// Listing is a user's advert for a unit they hold rights on.
type Listing struct {
	ID             id.ListingID
	OwnerID        id.UserID
	Target         propertymodels.Target
	Title          string
	Status         Status
	ArchiveReason  string
	ArchiveComment string
	ArchivedBy     *id.UserID
	ArchivedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// New builds a draft listing.
func New(owner id.UserID, target propertymodels.Target, title string, now time.Time) (*Listing, error) {
	title = strings.TrimSpace(title)
	if owner.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "listing owner is required")
	}
	if target.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "listing target is required")
	}
	if title == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "listing title is required")
	}
	return &Listing{
		ID:        id.NewListingID(),
		OwnerID:   owner,
		Target:    target,
		Title:     title,
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CanArchive reports whether revocation should archive the listing.
// Rejected and already archived listings are left alone.
func (l *Listing) CanArchive() bool {
	return slices.Contains(archivable, l.Status)
}

func (l *Listing) ApplyArchive(reason, comment string, by id.UserID, now time.Time) {
	archivedBy := by
	archivedAt := now
	l.Status = StatusArchived
	l.ArchiveReason = reason
	l.ArchiveComment = comment
	l.ArchivedBy = &archivedBy
	l.ArchivedAt = &archivedAt
	l.UpdatedAt = now
}

// ArchivableStatuses lists the statuses a revocation archives.
func ArchivableStatuses() []Status { return slices.Clone(archivable) }
