package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	listingmodels "estate/internal/listing/models"
	"estate/internal/notify"
	"estate/internal/property/models"
	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
	"estate/pkg/platform/sentinel"
	"estate/pkg/platform/tx"
	"estate/pkg/requestcontext"
)

// BindingService owns confirmed rights. Approval creates bindings through
// materialize; revocation soft-deletes them and archives the holder's
// listings on the unit in the same transaction.
type BindingService struct {
	deps
	bindings BindingStore
	listings ListingArchiver
	roles    RoleGranter
	tx       tx.Runner
}

// NewBindingService wires the binding store. roles may be nil, in which case
// approval does not touch the role directory.
func NewBindingService(bindings BindingStore, listings ListingArchiver, roles RoleGranter, runner tx.Runner, opts ...Option) *BindingService {
	return &BindingService{
		deps:     newDeps(opts),
		bindings: bindings,
		listings: listings,
		roles:    roles,
		tx:       runner,
	}
}

// RevokeRequest selects the bindings to revoke. An empty Role revokes every
// active binding the holder has on Target.
type RevokeRequest struct {
	Target   models.Target
	Role     models.Role
	Template models.RevocationTemplate
	Reason   string
}

type RevokeResult struct {
	Revoked          []*models.Binding
	ListingsArchived int
}

const (
	initiatorHolder = "holder"
	initiatorAdmin  = "admin"
)

// RevokeOwn lets a holder give up their own rights on a unit.
func (s *BindingService) RevokeOwn(ctx context.Context, actor Actor, req RevokeRequest) (*RevokeResult, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	return s.revoke(ctx, actor.UserID, actor.UserID, req, models.DefaultSelfRevocation, initiatorHolder)
}

// AdminRevoke revokes holder's rights on a unit on behalf of the
// administration.
func (s *BindingService) AdminRevoke(ctx context.Context, actor Actor, holder id.UserID, req RevokeRequest) (*RevokeResult, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if !actor.Admin {
		return nil, dErrors.New(dErrors.CodeForbidden, "admin role required")
	}
	if holder.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "holder is required")
	}
	return s.revoke(ctx, holder, actor.UserID, req, models.DefaultAdminRevocation, initiatorAdmin)
}

func (s *BindingService) revoke(ctx context.Context, holder, revokedBy id.UserID, req RevokeRequest,
	def models.RevocationTemplate, initiator string) (result *RevokeResult, err error) {
	ctx, finish := s.start(ctx, "binding.revoke",
		attribute.String("binding.target", req.Target.String()),
		attribute.String("binding.initiator", initiator),
	)
	defer finish(&err)

	if req.Target.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "property target is required")
	}
	if req.Role != "" {
		if err := models.ValidateRoleForKind(req.Target.Kind, req.Role); err != nil {
			return nil, err
		}
	}
	template, reason, err := models.ResolveRevocation(req.Template, req.Reason, def)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)

	result = &RevokeResult{}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		active, err := s.bindings.ListActiveByUserTarget(ctx, holder, req.Target)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load bindings")
		}
		for _, b := range active {
			if req.Role != "" && b.Role != req.Role {
				continue
			}
			if err := b.CanRevoke(); err != nil {
				return err
			}
			b.ApplyRevocation(revokedBy, template, reason, now)
			if err := s.bindings.Revoke(ctx, b); err != nil {
				if errors.Is(err, sentinel.ErrNotFound) {
					return dErrors.New(dErrors.CodeNotFound, "binding was revoked concurrently")
				}
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke binding")
			}
			result.Revoked = append(result.Revoked, b)
		}
		if len(result.Revoked) == 0 {
			return dErrors.New(dErrors.CodeNotFound, "no active binding on "+req.Target.String())
		}
		archived, err := s.listings.ArchiveForProperty(ctx, holder, req.Target,
			listingmodels.ArchiveReasonRightsRevoked, reason, revokedBy, now)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to archive listings")
		}
		result.ListingsArchived = archived
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.BindingsRevoked.WithLabelValues(initiator).Add(float64(len(result.Revoked)))
		s.metrics.ListingsArchived.Add(float64(result.ListingsArchived))
	}
	for _, b := range result.Revoked {
		s.logAudit(ctx, "binding_revoked",
			"binding_id", b.ID.String(),
			"user_id", holder.String(),
			"actor_id", revokedBy.String(),
			"target", req.Target.String(),
			"role", string(b.Role),
			"template", string(template),
		)
	}
	s.dispatch(ctx, notify.Event{
		UserID: holder,
		Kind:   notify.EventRightsRevoked,
		Payload: map[string]string{
			"property_kind":     string(req.Target.Kind),
			"property_id":       req.Target.ID.String(),
			"template":          string(template),
			"reason":            reason,
			"listings_archived": strconv.Itoa(result.ListingsArchived),
		},
		OccurredAt: now,
	})
	return result, nil
}

// materialize turns an approved claim into an active binding and grants the
// coarse role it confers. It must run inside the approval transaction.
// created is false when the right was already active.
func (s *BindingService) materialize(ctx context.Context, c *models.PropertyClaim, now time.Time) (b *models.Binding, created bool, err error) {
	if c.Status != models.StatusApproved {
		return nil, false, dErrors.New(dErrors.CodeInvariantViolation,
			"binding requested for a claim in "+string(c.Status))
	}
	candidate := models.NewApprovedBinding(c, now)
	b, err = s.bindings.UpsertActive(ctx, candidate)
	if err != nil {
		return nil, false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store binding")
	}
	if s.roles != nil {
		if err := s.roles.Grant(ctx, c.UserID, c.ClaimedRole.CoarseRole(), now); err != nil {
			return nil, false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to grant role")
		}
	}
	return b, b.ID == candidate.ID, nil
}

// Upsert materializes an approved claim in its own transaction. Approval
// calls it implicitly; it is exposed for repair tooling.
func (s *BindingService) Upsert(ctx context.Context, c *models.PropertyClaim) (*models.Binding, error) {
	var b *models.Binding
	var created bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		b, created, err = s.materialize(ctx, c, requestcontext.Now(ctx))
		return err
	})
	if err != nil {
		return nil, err
	}
	if created && s.metrics != nil {
		s.metrics.BindingsCreated.Inc()
	}
	return b, nil
}

func (s *BindingService) ListMine(ctx context.Context, actor Actor) ([]*models.Binding, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	bindings, err := s.bindings.ListActiveByUser(ctx, actor.UserID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load bindings")
	}
	return bindings, nil
}

// ListActiveForProperty is visible to admins and to the unit's active owners.
func (s *BindingService) ListActiveForProperty(ctx context.Context, actor Actor, target models.Target) ([]*models.Binding, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if !actor.Admin {
		owner, err := s.HasActiveOwnerBinding(ctx, actor.UserID, target)
		if err != nil {
			return nil, err
		}
		if !owner {
			return nil, dErrors.New(dErrors.CodeForbidden, "only the unit's owners may list its bindings")
		}
	}
	bindings, err := s.bindings.ListActiveByTarget(ctx, target)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load bindings")
	}
	return bindings, nil
}

// HasActiveOwnerBinding reports whether userID currently holds an owner-class
// right on target.
func (s *BindingService) HasActiveOwnerBinding(ctx context.Context, userID id.UserID, target models.Target) (bool, error) {
	active, err := s.bindings.ListActiveByUserTarget(ctx, userID, target)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load bindings")
	}
	for _, b := range active {
		if b.Role.IsOwnerClass() {
			return true, nil
		}
	}
	return false, nil
}

// activeOwners lists the distinct users holding an owner-class binding on
// target.
func (s *BindingService) activeOwners(ctx context.Context, target models.Target) ([]id.UserID, error) {
	active, err := s.bindings.ListActiveByTarget(ctx, target)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load bindings")
	}
	seen := make(map[id.UserID]struct{}, len(active))
	var owners []id.UserID
	for _, b := range active {
		if !b.Role.IsOwnerClass() {
			continue
		}
		if _, dup := seen[b.UserID]; dup {
			continue
		}
		seen[b.UserID] = struct{}{}
		owners = append(owners, b.UserID)
	}
	return owners, nil
}
