package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"estate/internal/notify"
	"estate/internal/property/models"
	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
	"estate/pkg/platform/sentinel"
	"estate/pkg/platform/tx"
	"estate/pkg/requestcontext"
)

// ClaimService runs the claim state machine. Each transition writes the new
// status conditioned on the status it read, appends one ledger entry and, on
// approval, materializes the binding, all in one transaction.
type ClaimService struct {
	deps
	claims   ClaimStore
	ledger   LedgerStore
	bindings *BindingService
	tx       tx.Runner
}

func NewClaimService(claims ClaimStore, ledger LedgerStore, bindings *BindingService, runner tx.Runner, opts ...Option) *ClaimService {
	return &ClaimService{
		deps:     newDeps(opts),
		claims:   claims,
		ledger:   ledger,
		bindings: bindings,
		tx:       runner,
	}
}

type SubmitRequest struct {
	Target  models.Target
	Role    models.Role
	Comment string
}

// TransitionRequest is an admin move. ExpectedStatus, when set, must equal
// the stored status or the request fails with StaleState before any write.
type TransitionRequest struct {
	ClaimID        id.ClaimID
	Transition     models.Transition
	Resolution     models.Resolution
	ExpectedStatus models.ClaimStatus
}

const (
	actorAdmin    = "admin"
	actorOwner    = "owner"
	actorClaimant = "claimant"
)

// transitionPlan is one resolved transition ready to run.
type transitionPlan struct {
	claimID       id.ClaimID
	transition    models.Transition
	resolution    models.ResolvedResolution
	expected      models.ClaimStatus
	actor         id.UserID
	actorKind     string
	stampReviewer bool
	// authorize runs inside the transaction against the freshly read claim.
	authorize func(ctx context.Context, c *models.PropertyClaim) error
}

// Submit files a pending claim. A second live claim for the same user, unit
// and role fails with DuplicateInFlight.
func (s *ClaimService) Submit(ctx context.Context, actor Actor, req SubmitRequest) (claim *models.PropertyClaim, err error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	ctx, finish := s.start(ctx, "claim.submit",
		attribute.String("claim.target", req.Target.String()),
		attribute.String("claim.role", string(req.Role)),
	)
	defer finish(&err)

	now := requestcontext.Now(ctx)
	claim, err = models.NewClaim(id.NewClaimID(), actor.UserID, req.Target, req.Role, req.Comment, now)
	if err != nil {
		return nil, err
	}

	var owners []id.UserID
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.claims.Create(ctx, claim); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return dErrors.New(dErrors.CodeDuplicateInFlight,
					"a claim for this role on this property is already in progress")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store claim")
		}
		entry := models.NewSubmissionEntry(claim)
		if err := s.ledger.Append(ctx, &entry); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to append ledger entry")
		}
		if claim.ClaimedRole.IsResidentClass() {
			found, err := s.bindings.activeOwners(ctx, claim.Target)
			if err != nil {
				return err
			}
			owners = slices.DeleteFunc(found, func(u id.UserID) bool { return u == claim.UserID })
		}
		return nil
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeDuplicateInFlight) && s.metrics != nil {
			s.metrics.DuplicateClaims.Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ClaimsSubmitted.Inc()
	}
	s.logAudit(ctx, "claim_submitted",
		"claim_id", claim.ID.String(),
		"user_id", claim.UserID.String(),
		"target", claim.Target.String(),
		"role", string(claim.ClaimedRole),
	)
	events := []notify.Event{claimEvent(claim, notify.EventClaimSubmitted, now)}
	for _, owner := range owners {
		e := claimEvent(claim, notify.EventTenantClaimReceived, now)
		e.UserID = owner
		e.Payload["claimant_id"] = claim.UserID.String()
		events = append(events, e)
	}
	s.dispatch(ctx, events...)
	return claim, nil
}

// Transition applies an admin move. Cancellation is the claimant's action and
// goes through Cancel.
func (s *ClaimService) Transition(ctx context.Context, actor Actor, req TransitionRequest) (*models.PropertyClaim, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if !actor.Admin {
		return nil, dErrors.New(dErrors.CodeForbidden, "admin role required")
	}
	if !req.Transition.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown transition "+string(req.Transition))
	}
	if req.Transition == models.TransitionCancel {
		return nil, dErrors.New(dErrors.CodeValidation, "only the claimant can cancel a claim")
	}
	if req.ExpectedStatus != "" && !req.ExpectedStatus.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown expected status "+string(req.ExpectedStatus))
	}
	res, err := req.Resolution.Resolve(req.Transition.To())
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, transitionPlan{
		claimID:       req.ClaimID,
		transition:    req.Transition,
		resolution:    res,
		expected:      req.ExpectedStatus,
		actor:         actor.UserID,
		actorKind:     actorAdmin,
		stampReviewer: req.Transition.To().IsTerminal(),
	})
}

func (s *ClaimService) MoveToReview(ctx context.Context, actor Actor, claimID id.ClaimID, res models.Resolution) (*models.PropertyClaim, error) {
	return s.Transition(ctx, actor, TransitionRequest{ClaimID: claimID, Transition: models.TransitionReview, Resolution: res})
}

func (s *ClaimService) RequestDocuments(ctx context.Context, actor Actor, claimID id.ClaimID, res models.Resolution) (*models.PropertyClaim, error) {
	return s.Transition(ctx, actor, TransitionRequest{ClaimID: claimID, Transition: models.TransitionRequestDocuments, Resolution: res})
}

func (s *ClaimService) Approve(ctx context.Context, actor Actor, claimID id.ClaimID, res models.Resolution) (*models.PropertyClaim, error) {
	return s.Transition(ctx, actor, TransitionRequest{ClaimID: claimID, Transition: models.TransitionApprove, Resolution: res})
}

func (s *ClaimService) Reject(ctx context.Context, actor Actor, claimID id.ClaimID, res models.Resolution) (*models.PropertyClaim, error) {
	return s.Transition(ctx, actor, TransitionRequest{ClaimID: claimID, Transition: models.TransitionReject, Resolution: res})
}

// Cancel withdraws the caller's own pending claim. The claim lands in
// rejected with the cancelled_by_user resolution.
func (s *ClaimService) Cancel(ctx context.Context, actor Actor, claimID id.ClaimID) (*models.PropertyClaim, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	return s.apply(ctx, transitionPlan{
		claimID:    claimID,
		transition: models.TransitionCancel,
		resolution: models.CancelResolution(),
		actor:      actor.UserID,
		actorKind:  actorClaimant,
		authorize: func(_ context.Context, c *models.PropertyClaim) error {
			if c.UserID != actor.UserID {
				return dErrors.New(dErrors.CodeForbidden, "only the claimant can cancel a claim")
			}
			return nil
		},
	})
}

// apply is the single write path for claim transitions.
func (s *ClaimService) apply(ctx context.Context, p transitionPlan) (claim *models.PropertyClaim, err error) {
	ctx, finish := s.start(ctx, "claim.transition",
		attribute.String("claim.id", p.claimID.String()),
		attribute.String("claim.transition", string(p.transition)),
		attribute.String("claim.actor_kind", p.actorKind),
	)
	defer finish(&err)

	if p.claimID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "claim_id is required")
	}
	now := requestcontext.Now(ctx)

	var from models.ClaimStatus
	var bindingCreated bool
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.claims.FindByID(ctx, p.claimID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "claim not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load claim")
		}
		if p.authorize != nil {
			if err := p.authorize(ctx, c); err != nil {
				return err
			}
		}
		if p.expected != "" && p.expected != c.Status {
			return dErrors.New(dErrors.CodeStaleState,
				"claim is "+string(c.Status)+", not "+string(p.expected))
		}
		if err := c.CanTransition(p.transition); err != nil {
			return err
		}

		// A request that started earlier can commit after one that started
		// later. Stamps for one claim never go backwards.
		if now.Before(c.UpdatedAt) {
			now = c.UpdatedAt
		}

		from = c.Status
		c.ApplyTransition(p.transition, p.actor, p.stampReviewer, p.resolution, now)
		if err := s.claims.UpdateIfStatus(ctx, c, from); err != nil {
			switch {
			case errors.Is(err, sentinel.ErrConflict):
				return dErrors.New(dErrors.CodeStaleState, "claim was changed by another request")
			case errors.Is(err, sentinel.ErrNotFound):
				return dErrors.New(dErrors.CodeNotFound, "claim not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update claim")
		}

		actor := p.actor
		entry := models.NewTransitionEntry(c, from, p.resolution, &actor, now)
		if err := s.ledger.Append(ctx, &entry); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to append ledger entry")
		}

		if c.Status == models.StatusApproved {
			_, created, err := s.bindings.materialize(ctx, c, now)
			if err != nil {
				return err
			}
			bindingCreated = created
		}
		claim = c
		return nil
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeStaleState) && s.metrics != nil {
			s.metrics.StaleStateConflicts.Inc()
		}
		return nil, err
	}

	trace.SpanFromContext(ctx).SetAttributes(claimAttrs(claim)...)
	if s.metrics != nil {
		s.metrics.ClaimTransitions.WithLabelValues(string(p.transition), p.actorKind).Inc()
		if bindingCreated {
			s.metrics.BindingsCreated.Inc()
		}
	}
	s.logAudit(ctx, "claim_transitioned",
		"claim_id", claim.ID.String(),
		"actor_id", p.actor.String(),
		"actor_kind", p.actorKind,
		"from", string(from),
		"to", string(claim.Status),
		"template", string(p.resolution.Template),
	)
	if kind, ok := transitionEvents[p.transition]; ok {
		s.dispatch(ctx, claimEvent(claim, kind, now))
	}
	return claim, nil
}

var transitionEvents = map[models.Transition]notify.EventKind{
	models.TransitionReview:           notify.EventClaimUnderReview,
	models.TransitionRequestDocuments: notify.EventClaimDocumentsRequested,
	models.TransitionApprove:          notify.EventClaimApproved,
	models.TransitionReject:           notify.EventClaimRejected,
}

func claimEvent(c *models.PropertyClaim, kind notify.EventKind, now time.Time) notify.Event {
	payload := map[string]string{
		"claim_id":      c.ID.String(),
		"property_kind": string(c.Target.Kind),
		"property_id":   c.Target.ID.String(),
		"role":          string(c.ClaimedRole),
		"status":        string(c.Status),
	}
	if c.AdminComment != "" {
		payload["resolution"] = c.AdminComment
	}
	return notify.Event{UserID: c.UserID, Kind: kind, Payload: payload, OccurredAt: now}
}

// Get returns a claim to its claimant, an admin, or, for resident-class
// claims, an active owner of the unit.
func (s *ClaimService) Get(ctx context.Context, actor Actor, claimID id.ClaimID) (*models.PropertyClaim, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	c, err := s.claims.FindByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "claim not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load claim")
	}
	if err := s.authorizeRead(ctx, actor, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClaimService) authorizeRead(ctx context.Context, actor Actor, c *models.PropertyClaim) error {
	if actor.Admin || c.UserID == actor.UserID {
		return nil
	}
	if c.ClaimedRole.IsResidentClass() {
		owner, err := s.bindings.HasActiveOwnerBinding(ctx, actor.UserID, c.Target)
		if err != nil {
			return err
		}
		if owner {
			return nil
		}
	}
	return dErrors.New(dErrors.CodeForbidden, "not allowed to view this claim")
}

func (s *ClaimService) ListMine(ctx context.Context, actor Actor) ([]*models.PropertyClaim, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	claims, err := s.claims.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load claims")
	}
	return claims, nil
}

// ListByStatus is the admin work queue, oldest first.
func (s *ClaimService) ListByStatus(ctx context.Context, actor Actor, status models.ClaimStatus) ([]*models.PropertyClaim, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if !actor.Admin {
		return nil, dErrors.New(dErrors.CodeForbidden, "admin role required")
	}
	if !status.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown status "+string(status))
	}
	claims, err := s.claims.ListByStatus(ctx, status)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load claims")
	}
	return claims, nil
}

// History returns a claim's ledger, oldest first, to anyone allowed to read
// the claim.
func (s *ClaimService) History(ctx context.Context, actor Actor, claimID id.ClaimID) ([]models.HistoryEntry, error) {
	if _, err := s.Get(ctx, actor, claimID); err != nil {
		return nil, err
	}
	entries, err := s.ledger.ListByClaim(ctx, claimID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load claim history")
	}
	return entries, nil
}

// PropertyHistory returns every ledger entry on a unit across claims. Admins
// and the unit's active owners may read it.
func (s *ClaimService) PropertyHistory(ctx context.Context, actor Actor, target models.Target) ([]models.HistoryEntry, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if target.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "property target is required")
	}
	if !actor.Admin {
		owner, err := s.bindings.HasActiveOwnerBinding(ctx, actor.UserID, target)
		if err != nil {
			return nil, err
		}
		if !owner {
			return nil, dErrors.New(dErrors.CodeForbidden, "only the unit's owners may read its history")
		}
	}
	entries, err := s.ledger.ListByTarget(ctx, target)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load property history")
	}
	return entries, nil
}

// VerifyHistory replays a claim's ledger and checks it lands on the stored
// status.
func (s *ClaimService) VerifyHistory(ctx context.Context, actor Actor, claimID id.ClaimID) (models.ClaimStatus, error) {
	c, err := s.Get(ctx, actor, claimID)
	if err != nil {
		return "", err
	}
	entries, err := s.ledger.ListByClaim(ctx, claimID)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to load claim history")
	}
	replayed, err := models.Replay(entries)
	if err != nil {
		return "", err
	}
	if replayed != c.Status {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "ledger replay mismatch",
				"claim_id", claimID.String(),
				"stored", string(c.Status),
				"replayed", string(replayed),
			)
		}
		return replayed, dErrors.New(dErrors.CodeInvariantViolation,
			"ledger replays to "+string(replayed)+" but claim is "+string(c.Status))
	}
	return replayed, nil
}
