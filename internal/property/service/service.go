// Package service implements the claim lifecycle, binding revocation and
// owner review of tenant claims.
//
// Every mutation runs in one transaction through tx.Runner: the claim status
// write, its ledger entry and (on approval) the binding and coarse role grant
// commit together or not at all. Notifications are dispatched only after the
// transaction commits and their failures are logged, never returned.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"estate/internal/notify"
	"estate/internal/property/metrics"
	"estate/internal/property/models"
	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
	"estate/pkg/requestcontext"
)

type ClaimStore interface {
	Create(ctx context.Context, c *models.PropertyClaim) error
	FindByID(ctx context.Context, claimID id.ClaimID) (*models.PropertyClaim, error)
	UpdateIfStatus(ctx context.Context, c *models.PropertyClaim, expected models.ClaimStatus) error
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.PropertyClaim, error)
	ListByStatus(ctx context.Context, status models.ClaimStatus) ([]*models.PropertyClaim, error)
	ListLiveByTarget(ctx context.Context, target models.Target) ([]*models.PropertyClaim, error)
}

type LedgerStore interface {
	Append(ctx context.Context, e *models.HistoryEntry) error
	ListByClaim(ctx context.Context, claimID id.ClaimID) ([]models.HistoryEntry, error)
	ListByTarget(ctx context.Context, target models.Target) ([]models.HistoryEntry, error)
}

type BindingStore interface {
	UpsertActive(ctx context.Context, b *models.Binding) (*models.Binding, error)
	Revoke(ctx context.Context, b *models.Binding) error
	ListActiveByUserTarget(ctx context.Context, userID id.UserID, target models.Target) ([]*models.Binding, error)
	ListActiveByUser(ctx context.Context, userID id.UserID) ([]*models.Binding, error)
	ListActiveByTarget(ctx context.Context, target models.Target) ([]*models.Binding, error)
}

// ListingArchiver archives a holder's listings on a unit when their rights to
// it are revoked. It runs inside the revocation transaction.
type ListingArchiver interface {
	ArchiveForProperty(ctx context.Context, owner id.UserID, target models.Target,
		reason, comment string, archivedBy id.UserID, now time.Time) (int, error)
}

// RoleGranter records the coarse role an approved binding confers.
type RoleGranter interface {
	Grant(ctx context.Context, userID id.UserID, role string, now time.Time) error
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID id.UserID
	Admin  bool
}

// ActorFrom reads the caller set by the auth middleware.
func ActorFrom(ctx context.Context) Actor {
	return Actor{UserID: requestcontext.UserID(ctx), Admin: requestcontext.IsAdmin(ctx)}
}

func (a Actor) validate() error {
	if a.UserID.IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "authenticated caller required")
	}
	return nil
}

// deps are the ambient collaborators shared by the three services.
type deps struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	notifier notify.Notifier
	tracer   trace.Tracer
}

type Option func(*deps)

func WithLogger(logger *slog.Logger) Option {
	return func(d *deps) {
		d.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *deps) {
		d.metrics = m
	}
}

// WithNotifier sets where post-commit events go. Wrap slow notifiers in
// notify.Async; Notify is called on the request path.
func WithNotifier(n notify.Notifier) Option {
	return func(d *deps) {
		d.notifier = n
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(d *deps) {
		d.tracer = t
	}
}

func newDeps(opts []Option) deps {
	d := deps{
		notifier: notify.Discard{},
		tracer:   otel.Tracer("estate/property"),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// start opens a span and returns a finisher that records err on it and in the
// operation histogram.
func (d *deps) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(err *error)) {
	begin := time.Now()
	ctx, span := d.tracer.Start(ctx, op, trace.WithAttributes(attrs...))
	return ctx, func(err *error) {
		if err != nil && *err != nil {
			span.RecordError(*err)
			span.SetStatus(codes.Error, string(dErrors.CodeOf(*err)))
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
		if d.metrics != nil {
			var e error
			if err != nil {
				e = *err
			}
			d.metrics.ObserveOperation(op, e, time.Since(begin))
		}
	}
}

// dispatch hands events to the notifier after commit. Failures are logged and
// counted; they never reach the caller.
func (d *deps) dispatch(ctx context.Context, events ...notify.Event) {
	for _, e := range events {
		if err := d.notifier.Notify(ctx, e); err != nil {
			if d.logger != nil {
				d.logger.WarnContext(ctx, "notification dispatch failed",
					"kind", string(e.Kind),
					"user_id", e.UserID.String(),
					"request_id", requestcontext.RequestID(ctx),
					"error", err,
				)
			}
			if d.metrics != nil {
				d.metrics.NotifyFailures.WithLabelValues(string(e.Kind)).Inc()
			}
		}
	}
}

func (d *deps) logAudit(ctx context.Context, event string, attributes ...any) {
	if d.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	d.logger.InfoContext(ctx, event, args...)
}

func claimAttrs(c *models.PropertyClaim) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("claim.id", c.ID.String()),
		attribute.String("claim.target", c.Target.String()),
		attribute.String("claim.role", string(c.ClaimedRole)),
	}
}
