package models

import (
	"fmt"
	"time"

	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
)

// HistoryEntry is one immutable ledger row. FromStatus is nil for the
// submission entry and ChangedBy is nil for system-initiated moves.
// Target is copied from the claim so a unit's timeline can be read without a
// join.
type HistoryEntry struct {
	ID                 id.EntryID
	ClaimID            id.ClaimID
	Target             Target
	FromStatus         *ClaimStatus
	ToStatus           ClaimStatus
	ResolutionTemplate ResolutionTemplate
	ResolutionText     string
	ChangedBy          *id.UserID
	CreatedAt          time.Time
	// Seq orders entries written at the same instant. Assigned by the store.
	Seq int64
}

// NewSubmissionEntry records a claim's creation.
func NewSubmissionEntry(c *PropertyClaim) HistoryEntry {
	actor := c.UserID
	return HistoryEntry{
		ID:        id.NewEntryID(),
		ClaimID:   c.ID,
		Target:    c.Target,
		ToStatus:  StatusPending,
		ChangedBy: &actor,
		CreatedAt: c.CreatedAt,
	}
}

// NewTransitionEntry records a move from `from` to the claim's current status.
func NewTransitionEntry(c *PropertyClaim, from ClaimStatus, res ResolvedResolution, actor *id.UserID, now time.Time) HistoryEntry {
	f := from
	return HistoryEntry{
		ID:                 id.NewEntryID(),
		ClaimID:            c.ID,
		Target:             c.Target,
		FromStatus:         &f,
		ToStatus:           c.Status,
		ResolutionTemplate: res.Template,
		ResolutionText:     res.Text,
		ChangedBy:          actor,
		CreatedAt:          now,
	}
}

// Replay folds a claim's entries, oldest first, into the status they imply.
// It fails when the chain does not start with a submission or an entry's
// FromStatus does not match the status before it.
func Replay(entries []HistoryEntry) (ClaimStatus, error) {
	if len(entries) == 0 {
		return "", dErrors.New(dErrors.CodeInvariantViolation, "claim has no ledger entries")
	}
	var current ClaimStatus
	for i, e := range entries {
		if i == 0 {
			if e.FromStatus != nil || e.ToStatus != StatusPending {
				return "", dErrors.New(dErrors.CodeInvariantViolation, "ledger does not start with a submission")
			}
			current = e.ToStatus
			continue
		}
		if e.FromStatus == nil || *e.FromStatus != current {
			return "", dErrors.New(dErrors.CodeInvariantViolation,
				fmt.Sprintf("ledger entry %d does not continue from %s", i, current))
		}
		current = e.ToStatus
	}
	return current, nil
}
