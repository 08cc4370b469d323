// Package service exposes the coarse role directory. Roles are granted when a
// claim is approved; removing one is an explicit admin action that refuses
// while any active binding still confers the role.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"estate/internal/property/models"
	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
	"estate/pkg/platform/sentinel"
	"estate/pkg/platform/tx"
	"estate/pkg/requestcontext"
)

type Directory interface {
	Grant(ctx context.Context, userID id.UserID, role string, now time.Time) error
	Revoke(ctx context.Context, userID id.UserID, role string) error
	Roles(ctx context.Context, userID id.UserID) ([]string, error)
}

type BindingLister interface {
	ListActiveByUser(ctx context.Context, userID id.UserID) ([]*models.Binding, error)
}

type Service struct {
	directory Directory
	bindings  BindingLister
	tx        tx.Runner
	logger    *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(directory Directory, bindings BindingLister, runner tx.Runner, opts ...Option) *Service {
	s := &Service{directory: directory, bindings: bindings, tx: runner}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Roles(ctx context.Context, userID id.UserID) ([]string, error) {
	roles, err := s.directory.Roles(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load roles")
	}
	return roles, nil
}

// StripIfUnbound removes a coarse role from a user who no longer holds any
// active binding conferring it.
func (s *Service) StripIfUnbound(ctx context.Context, userID id.UserID, role string) error {
	if role != string(models.ClassOwner) && role != string(models.ClassResident) {
		return dErrors.New(dErrors.CodeValidation, "role must be owner or resident")
	}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		active, err := s.bindings.ListActiveByUser(ctx, userID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load bindings")
		}
		for _, b := range active {
			if b.Role.CoarseRole() == role {
				return dErrors.New(dErrors.CodeConflict,
					"user still holds an active "+string(b.Role)+" binding on "+b.Target.String())
			}
		}
		if err := s.directory.Revoke(ctx, userID, role); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "user does not hold role "+role)
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to strip role")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logAudit(ctx, "role_stripped", "user_id", userID.String(), "role", role)
	return nil
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	if actor := requestcontext.UserID(ctx); !actor.IsNil() {
		attributes = append(attributes, "actor_id", actor.String())
	}
	args := append(attributes, "event", event, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)
}
