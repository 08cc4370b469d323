package models

import (
	"time"

	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
)

// BindingStatus mirrors the claim outcome that produced the binding.
type BindingStatus string

const (
	BindingPending  BindingStatus = "pending"
	BindingApproved BindingStatus = "approved"
	BindingRejected BindingStatus = "rejected"
)

// Binding is a confirmed right of a user over a unit. A binding is active
// while RevokedAt is nil; revocation never removes the row.
//
// Invariant: at most one active binding per (UserID, Target, Role). Several
// users may hold active bindings on the same unit.
type Binding struct {
	ID                 id.BindingID
	UserID             id.UserID
	Target             Target
	Role               Role
	Status             BindingStatus
	ClaimID            id.ClaimID
	CreatedAt          time.Time
	RevokedAt          *time.Time
	RevokedBy          *id.UserID
	RevocationTemplate RevocationTemplate
	RevocationReason   string
}

// NewApprovedBinding materializes an approved claim.
func NewApprovedBinding(c *PropertyClaim, now time.Time) *Binding {
	return &Binding{
		ID:        id.NewBindingID(),
		UserID:    c.UserID,
		Target:    c.Target,
		Role:      c.ClaimedRole,
		Status:    BindingApproved,
		ClaimID:   c.ID,
		CreatedAt: now,
	}
}

func (b *Binding) IsActive() bool { return b.RevokedAt == nil }

// CanRevoke fails for a binding that is already revoked.
func (b *Binding) CanRevoke() error {
	if !b.IsActive() {
		return dErrors.New(dErrors.CodeNotFound, "binding is already revoked")
	}
	return nil
}

// ApplyRevocation soft-deletes the binding. Call CanRevoke first.
func (b *Binding) ApplyRevocation(by id.UserID, template RevocationTemplate, reason string, now time.Time) {
	revokedAt := now
	revokedBy := by
	b.RevokedAt = &revokedAt
	b.RevokedBy = &revokedBy
	b.RevocationTemplate = template
	b.RevocationReason = reason
}
