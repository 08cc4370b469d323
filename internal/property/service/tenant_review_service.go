package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"estate/internal/property/models"
	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
)

// TenantReviewService lets a unit's owner adjudicate resident-class claims on
// that unit. Ownership is re-checked inside the transition's transaction, so
// an owner revoked mid-review can no longer decide.
type TenantReviewService struct {
	deps
	claims     *ClaimService
	claimStore ClaimStore
	bindings   *BindingService
}

func NewTenantReviewService(claims *ClaimService, claimStore ClaimStore, bindings *BindingService, opts ...Option) *TenantReviewService {
	return &TenantReviewService{
		deps:       newDeps(opts),
		claims:     claims,
		claimStore: claimStore,
		bindings:   bindings,
	}
}

type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

var decisionTransitions = map[ReviewDecision]models.Transition{
	DecisionApprove: models.TransitionApprove,
	DecisionReject:  models.TransitionReject,
}

type ReviewRequest struct {
	ClaimID        id.ClaimID
	Decision       ReviewDecision
	Resolution     models.Resolution
	ExpectedStatus models.ClaimStatus
}

// Review approves or rejects a resident-class claim as the unit's owner.
func (s *TenantReviewService) Review(ctx context.Context, actor Actor, req ReviewRequest) (*models.PropertyClaim, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	transition, ok := decisionTransitions[req.Decision]
	if !ok {
		return nil, dErrors.New(dErrors.CodeValidation, "decision must be approve or reject")
	}
	if req.ExpectedStatus != "" && !req.ExpectedStatus.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown expected status "+string(req.ExpectedStatus))
	}
	res, err := req.Resolution.Resolve(transition.To())
	if err != nil {
		return nil, err
	}
	return s.claims.apply(ctx, transitionPlan{
		claimID:       req.ClaimID,
		transition:    transition,
		resolution:    res,
		expected:      req.ExpectedStatus,
		actor:         actor.UserID,
		actorKind:     actorOwner,
		stampReviewer: true,
		authorize: func(ctx context.Context, c *models.PropertyClaim) error {
			return s.authorizeReviewer(ctx, actor.UserID, c)
		},
	})
}

func (s *TenantReviewService) authorizeReviewer(ctx context.Context, reviewer id.UserID, c *models.PropertyClaim) error {
	if c.UserID == reviewer {
		return dErrors.New(dErrors.CodeForbidden, "cannot review your own claim")
	}
	if !c.ClaimedRole.IsResidentClass() {
		return dErrors.New(dErrors.CodeForbidden, "only resident claims can be reviewed by an owner")
	}
	owner, err := s.bindings.HasActiveOwnerBinding(ctx, reviewer, c.Target)
	if err != nil {
		return err
	}
	if !owner {
		return dErrors.New(dErrors.CodeForbidden, "reviewer does not hold an active owner binding on "+c.Target.String())
	}
	return nil
}

// Inbox lists live resident-class claims on the units the caller owns.
func (s *TenantReviewService) Inbox(ctx context.Context, actor Actor) (claims []*models.PropertyClaim, err error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	ctx, finish := s.start(ctx, "claim.inbox", attribute.String("user.id", actor.UserID.String()))
	defer finish(&err)

	held, err := s.bindings.ListMine(ctx, actor)
	if err != nil {
		return nil, err
	}
	seen := make(map[models.Target]struct{}, len(held))
	for _, b := range held {
		if !b.Role.IsOwnerClass() {
			continue
		}
		if _, dup := seen[b.Target]; dup {
			continue
		}
		seen[b.Target] = struct{}{}
		live, err := s.claimStore.ListLiveByTarget(ctx, b.Target)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load claims")
		}
		for _, c := range live {
			if c.ClaimedRole.IsResidentClass() && c.UserID != actor.UserID {
				claims = append(claims, c)
			}
		}
	}
	return claims, nil
}
