// Package notify delivers post-commit events to users. Callers dispatch after
// their transaction commits; a delivery failure is logged by the caller and
// never undoes the operation that produced the event.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	id "estate/pkg/domain"
)

type EventKind string

const (
	EventClaimSubmitted          EventKind = "claim_submitted"
	EventClaimUnderReview        EventKind = "claim_under_review"
	EventClaimDocumentsRequested EventKind = "claim_documents_requested"
	EventClaimApproved           EventKind = "claim_approved"
	EventClaimRejected           EventKind = "claim_rejected"
	EventTenantClaimReceived     EventKind = "tenant_claim_received"
	EventRightsRevoked           EventKind = "rights_revoked"
)

// Event is addressed to one user. Payload carries identifiers and resolution
// text only; rendering is the consumer's job.
type Event struct {
	UserID     id.UserID
	Kind       EventKind
	Payload    map[string]string
	OccurredAt time.Time
}

func (e Event) MarshalJSON() ([]byte, error) {
	type wire struct {
		UserID     string            `json:"user_id"`
		Kind       EventKind         `json:"kind"`
		Payload    map[string]string `json:"payload,omitempty"`
		OccurredAt time.Time         `json:"occurred_at"`
	}
	return json.Marshal(wire{UserID: e.UserID.String(), Kind: e.Kind, Payload: e.Payload, OccurredAt: e.OccurredAt})
}

type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Log writes events to a structured logger. It is the notifier used when no
// broker is configured.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (n *Log) Notify(ctx context.Context, e Event) error {
	args := []any{"user_id", e.UserID.String(), "kind", string(e.Kind)}
	for k, v := range e.Payload {
		args = append(args, k, v)
	}
	n.logger.InfoContext(ctx, "notification", args...)
	return nil
}

// Discard drops every event.
type Discard struct{}

func (Discard) Notify(context.Context, Event) error { return nil }
