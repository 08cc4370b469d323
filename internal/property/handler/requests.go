package handler

import (
	"estate/internal/property/models"
	"estate/internal/property/service"
	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
)

// SubmitClaimRequest is the body of POST /claims.
type SubmitClaimRequest struct {
	PropertyKind string `json:"property_kind" validate:"required,oneof=apartment parking commercial"`
	PropertyID   string `json:"property_id" validate:"required,uuid"`
	Role         string `json:"role" validate:"required"`
	Comment      string `json:"comment" validate:"max=2000"`

	target models.Target
}

func (r *SubmitClaimRequest) Validate() error {
	target, err := models.ParseTarget(r.PropertyKind, r.PropertyID)
	if err != nil {
		return err
	}
	r.target = target
	return models.ValidateRoleForKind(target.Kind, models.Role(r.Role))
}

func (r *SubmitClaimRequest) toService() service.SubmitRequest {
	return service.SubmitRequest{Target: r.target, Role: models.Role(r.Role), Comment: r.Comment}
}

// ResolutionFields is embedded by every adjudication body.
type ResolutionFields struct {
	Template       string `json:"resolution_template"`
	Text           string `json:"resolution_text" validate:"max=2000"`
	ExpectedStatus string `json:"expected_status"`
}

func (f ResolutionFields) resolution() models.Resolution {
	return models.Resolution{Template: models.ResolutionTemplate(f.Template), Text: f.Text}
}

func (f ResolutionFields) validateExpected() error {
	if f.ExpectedStatus == "" {
		return nil
	}
	_, err := models.ParseClaimStatus(f.ExpectedStatus)
	return err
}

// TransitionRequest is the body of POST /admin/claims/{claimID}/transitions.
type TransitionRequest struct {
	Transition string `json:"transition" validate:"required,oneof=review request_documents approve reject"`
	ResolutionFields
}

func (r *TransitionRequest) Validate() error {
	return r.validateExpected()
}

// ReviewRequest is the body of POST /reviews/{claimID}.
type ReviewRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	ResolutionFields
}

func (r *ReviewRequest) Validate() error {
	return r.validateExpected()
}

// RevokeRequest is the body of POST /bindings/revoke and, with UserID set,
// POST /admin/bindings/revoke.
type RevokeRequest struct {
	UserID       string `json:"user_id,omitempty"`
	PropertyKind string `json:"property_kind" validate:"required,oneof=apartment parking commercial"`
	PropertyID   string `json:"property_id" validate:"required,uuid"`
	Role         string `json:"role,omitempty"`
	Template     string `json:"revocation_template,omitempty"`
	Reason       string `json:"revocation_reason,omitempty" validate:"max=2000"`

	target models.Target
	holder id.UserID
}

func (r *RevokeRequest) Validate() error {
	target, err := models.ParseTarget(r.PropertyKind, r.PropertyID)
	if err != nil {
		return err
	}
	r.target = target
	if r.Role != "" {
		if err := models.ValidateRoleForKind(target.Kind, models.Role(r.Role)); err != nil {
			return err
		}
	}
	if r.UserID != "" {
		holder, err := id.ParseUserID(r.UserID)
		if err != nil {
			return err
		}
		r.holder = holder
	}
	return nil
}

func (r *RevokeRequest) toService() service.RevokeRequest {
	return service.RevokeRequest{
		Target:   r.target,
		Role:     models.Role(r.Role),
		Template: models.RevocationTemplate(r.Template),
		Reason:   r.Reason,
	}
}

func (r *RevokeRequest) requireHolder() error {
	if r.holder.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "user_id is required")
	}
	return nil
}
