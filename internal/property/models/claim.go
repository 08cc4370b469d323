package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
)

const maxCommentLength = 2000

// PropertyClaim is a user's request to be recognized in a role on one unit.
//
// Invariants:
//   - Target is a valid tagged reference and ClaimedRole belongs to its kind
//   - Status only changes through ApplyTransition, which the service pairs
//     with exactly one ledger entry
//   - ReviewedBy/ReviewedAt are set only by terminal or owner-performed moves
//   - claims are never deleted; cancellation lands in rejected
type PropertyClaim struct {
	ID              id.ClaimID
	UserID          id.UserID
	Target          Target
	ClaimedRole     Role
	Status          ClaimStatus
	UserComment     string
	AdminComment    string
	CancelledByUser bool
	ReviewedBy      *id.UserID
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewClaim validates a submission and returns a pending claim.
func NewClaim(claimID id.ClaimID, userID id.UserID, target Target, role Role, comment string, now time.Time) (*PropertyClaim, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "claimant is required")
	}
	if target.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "property target is required")
	}
	if _, err := NewTarget(target.Kind, target.ID); err != nil {
		return nil, err
	}
	if err := ValidateRoleForKind(target.Kind, role); err != nil {
		return nil, err
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("comment must be %d characters or less", maxCommentLength))
	}
	return &PropertyClaim{
		ID:          claimID,
		UserID:      userID,
		Target:      target,
		ClaimedRole: role,
		Status:      StatusPending,
		UserComment: comment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// CanTransition checks whether t may start from the claim's current status.
// A claim that already reached a terminal status reports StaleState: the
// caller acted on an outdated read.
func (c *PropertyClaim) CanTransition(t Transition) error {
	if !t.IsValid() {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown transition %q", t))
	}
	if slices.Contains(t.Sources(), c.Status) {
		return nil
	}
	if c.Status.IsTerminal() {
		return dErrors.New(dErrors.CodeStaleState,
			fmt.Sprintf("claim is already %s", c.Status))
	}
	return dErrors.New(dErrors.CodeValidation,
		fmt.Sprintf("cannot %s a claim in %s", t, c.Status))
}

// ApplyTransition moves the claim. Call CanTransition first.
// stampReviewer is true for terminal moves and for any move an owner performs.
func (c *PropertyClaim) ApplyTransition(t Transition, actor id.UserID, stampReviewer bool, res ResolvedResolution, now time.Time) {
	c.Status = t.To()
	if res.Text != "" {
		c.AdminComment = res.Text
	}
	if t == TransitionCancel {
		c.CancelledByUser = true
	}
	if stampReviewer || c.Status.IsTerminal() {
		reviewer := actor
		reviewedAt := now
		c.ReviewedBy = &reviewer
		c.ReviewedAt = &reviewedAt
	}
	c.UpdatedAt = now
}

// IsLive reports whether the claim still awaits a decision.
func (c *PropertyClaim) IsLive() bool { return c.Status.IsLive() }

// SameRight reports whether other asserts the same right on the same unit.
func (c *PropertyClaim) SameRight(other *PropertyClaim) bool {
	return c.UserID == other.UserID && c.Target == other.Target && c.ClaimedRole == other.ClaimedRole
}
