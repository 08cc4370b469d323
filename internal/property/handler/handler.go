// Package handler exposes claims, bindings and owner review over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"estate/internal/property/models"
	"estate/internal/property/service"
	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
	"estate/pkg/platform/httputil"
	"estate/pkg/requestcontext"
)

type ClaimService interface {
	Submit(ctx context.Context, actor service.Actor, req service.SubmitRequest) (*models.PropertyClaim, error)
	Transition(ctx context.Context, actor service.Actor, req service.TransitionRequest) (*models.PropertyClaim, error)
	Cancel(ctx context.Context, actor service.Actor, claimID id.ClaimID) (*models.PropertyClaim, error)
	Get(ctx context.Context, actor service.Actor, claimID id.ClaimID) (*models.PropertyClaim, error)
	ListMine(ctx context.Context, actor service.Actor) ([]*models.PropertyClaim, error)
	ListByStatus(ctx context.Context, actor service.Actor, status models.ClaimStatus) ([]*models.PropertyClaim, error)
	History(ctx context.Context, actor service.Actor, claimID id.ClaimID) ([]models.HistoryEntry, error)
	PropertyHistory(ctx context.Context, actor service.Actor, target models.Target) ([]models.HistoryEntry, error)
	VerifyHistory(ctx context.Context, actor service.Actor, claimID id.ClaimID) (models.ClaimStatus, error)
}

type BindingService interface {
	RevokeOwn(ctx context.Context, actor service.Actor, req service.RevokeRequest) (*service.RevokeResult, error)
	AdminRevoke(ctx context.Context, actor service.Actor, holder id.UserID, req service.RevokeRequest) (*service.RevokeResult, error)
	ListMine(ctx context.Context, actor service.Actor) ([]*models.Binding, error)
	ListActiveForProperty(ctx context.Context, actor service.Actor, target models.Target) ([]*models.Binding, error)
}

type ReviewService interface {
	Review(ctx context.Context, actor service.Actor, req service.ReviewRequest) (*models.PropertyClaim, error)
	Inbox(ctx context.Context, actor service.Actor) ([]*models.PropertyClaim, error)
}

type RoleService interface {
	Roles(ctx context.Context, userID id.UserID) ([]string, error)
	StripIfUnbound(ctx context.Context, userID id.UserID, role string) error
}

// Handler wires property endpoints to the claim, binding, review and role
// services.
type Handler struct {
	claims   ClaimService
	bindings BindingService
	reviews  ReviewService
	roles    RoleService
	logger   *slog.Logger
}

func New(claims ClaimService, bindings BindingService, reviews ReviewService, roles RoleService, logger *slog.Logger) *Handler {
	return &Handler{
		claims:   claims,
		bindings: bindings,
		reviews:  reviews,
		roles:    roles,
		logger:   logger,
	}
}

// Register mounts the endpoints available to any authenticated user.
func (h *Handler) Register(r chi.Router) {
	r.Post("/claims", h.HandleSubmit)
	r.Get("/claims/mine", h.HandleListMyClaims)
	r.Get("/claims/{claimID}", h.HandleGetClaim)
	r.Get("/claims/{claimID}/history", h.HandleClaimHistory)
	r.Post("/claims/{claimID}/cancel", h.HandleCancel)

	r.Get("/bindings/mine", h.HandleListMyBindings)
	r.Post("/bindings/revoke", h.HandleRevokeOwn)

	r.Get("/properties/{kind}/{propertyID}/history", h.HandlePropertyHistory)
	r.Get("/properties/{kind}/{propertyID}/bindings", h.HandlePropertyBindings)

	r.Get("/reviews/inbox", h.HandleInbox)
	r.Post("/reviews/{claimID}", h.HandleReview)
}

// RegisterAdmin mounts adjudication and admin revocation. The caller is
// expected to guard the router with middleware.RequireAdmin.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/admin/claims", h.HandleListByStatus)
	r.Post("/admin/claims/{claimID}/transitions", h.HandleTransition)
	r.Get("/admin/claims/{claimID}/verify", h.HandleVerify)
	r.Post("/admin/bindings/revoke", h.HandleAdminRevoke)
	r.Get("/admin/users/{userID}/roles", h.HandleRoles)
	r.Delete("/admin/users/{userID}/roles/{role}", h.HandleStripRole)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	level := slog.LevelWarn
	if dErrors.HTTPStatus(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"user_id", requestcontext.UserID(ctx).String(),
		"error", err,
	)
	httputil.WriteError(w, err)
}

func claimIDParam(r *http.Request) (id.ClaimID, error) {
	return id.ParseClaimID(chi.URLParam(r, "claimID"))
}

func targetParam(r *http.Request) (models.Target, error) {
	return models.ParseTarget(chi.URLParam(r, "kind"), chi.URLParam(r, "propertyID"))
}

// HandleSubmit handles POST /claims.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[SubmitClaimRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c, err := h.claims.Submit(ctx, service.ActorFrom(ctx), req.toService())
	if err != nil {
		h.fail(ctx, w, "claim submission failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toClaimResponse(c))
}

func (h *Handler) HandleListMyClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, err := h.claims.ListMine(ctx, service.ActorFrom(ctx))
	if err != nil {
		h.fail(ctx, w, "list claims failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toClaimList(claims))
}

func (h *Handler) HandleGetClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, err := claimIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.claims.Get(ctx, service.ActorFrom(ctx), claimID)
	if err != nil {
		h.fail(ctx, w, "get claim failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toClaimResponse(c))
}

func (h *Handler) HandleClaimHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, err := claimIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	entries, err := h.claims.History(ctx, service.ActorFrom(ctx), claimID)
	if err != nil {
		h.fail(ctx, w, "claim history failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toHistory(entries))
}

// HandleCancel handles POST /claims/{claimID}/cancel.
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, err := claimIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.claims.Cancel(ctx, service.ActorFrom(ctx), claimID)
	if err != nil {
		h.fail(ctx, w, "claim cancel failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toClaimResponse(c))
}

func (h *Handler) HandleListMyBindings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bindings, err := h.bindings.ListMine(ctx, service.ActorFrom(ctx))
	if err != nil {
		h.fail(ctx, w, "list bindings failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toBindingList(bindings))
}

// HandleRevokeOwn handles POST /bindings/revoke.
func (h *Handler) HandleRevokeOwn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[RevokeRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if req.UserID != "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "user_id is only accepted on the admin endpoint"))
		return
	}
	result, err := h.bindings.RevokeOwn(ctx, service.ActorFrom(ctx), req.toService())
	if err != nil {
		h.fail(ctx, w, "self revocation failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRevokeResponse(result))
}

func (h *Handler) HandlePropertyHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	target, err := targetParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	entries, err := h.claims.PropertyHistory(ctx, service.ActorFrom(ctx), target)
	if err != nil {
		h.fail(ctx, w, "property history failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toHistory(entries))
}

func (h *Handler) HandlePropertyBindings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	target, err := targetParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	bindings, err := h.bindings.ListActiveForProperty(ctx, service.ActorFrom(ctx), target)
	if err != nil {
		h.fail(ctx, w, "property bindings failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toBindingList(bindings))
}

func (h *Handler) HandleInbox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, err := h.reviews.Inbox(ctx, service.ActorFrom(ctx))
	if err != nil {
		h.fail(ctx, w, "review inbox failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toClaimList(claims))
}

// HandleReview handles POST /reviews/{claimID}.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, err := claimIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReviewRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c, err := h.reviews.Review(ctx, service.ActorFrom(ctx), service.ReviewRequest{
		ClaimID:        claimID,
		Decision:       service.ReviewDecision(req.Decision),
		Resolution:     req.resolution(),
		ExpectedStatus: models.ClaimStatus(req.ExpectedStatus),
	})
	if err != nil {
		h.fail(ctx, w, "tenant review failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toClaimResponse(c))
}

// HandleListByStatus handles GET /admin/claims?status=pending.
func (h *Handler) HandleListByStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw := r.URL.Query().Get("status")
	if raw == "" {
		raw = string(models.StatusPending)
	}
	status, err := models.ParseClaimStatus(raw)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	claims, err := h.claims.ListByStatus(ctx, service.ActorFrom(ctx), status)
	if err != nil {
		h.fail(ctx, w, "admin claim queue failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toClaimList(claims))
}

// HandleTransition handles POST /admin/claims/{claimID}/transitions.
func (h *Handler) HandleTransition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, err := claimIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[TransitionRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c, err := h.claims.Transition(ctx, service.ActorFrom(ctx), service.TransitionRequest{
		ClaimID:        claimID,
		Transition:     models.Transition(req.Transition),
		Resolution:     req.resolution(),
		ExpectedStatus: models.ClaimStatus(req.ExpectedStatus),
	})
	if err != nil {
		h.fail(ctx, w, "claim transition failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toClaimResponse(c))
}

func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, err := claimIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	status, err := h.claims.VerifyHistory(ctx, service.ActorFrom(ctx), claimID)
	if err != nil {
		h.fail(ctx, w, "ledger verification failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, VerifyResponse{ClaimID: claimID.String(), Replayed: string(status), Verified: true})
}

// HandleAdminRevoke handles POST /admin/bindings/revoke.
func (h *Handler) HandleAdminRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[RevokeRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := req.requireHolder(); err != nil {
		httputil.WriteError(w, err)
		return
	}
	result, err := h.bindings.AdminRevoke(ctx, service.ActorFrom(ctx), req.holder, req.toService())
	if err != nil {
		h.fail(ctx, w, "admin revocation failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRevokeResponse(result))
}

func (h *Handler) HandleRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	roles, err := h.roles.Roles(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "load roles failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RolesResponse{UserID: userID.String(), Roles: roles})
}

// HandleStripRole handles DELETE /admin/users/{userID}/roles/{role}.
func (h *Handler) HandleStripRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.roles.StripIfUnbound(ctx, userID, chi.URLParam(r, "role")); err != nil {
		h.fail(ctx, w, "role strip failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
