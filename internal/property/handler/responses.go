package handler

import (
	"time"

	"estate/internal/property/models"
	"estate/internal/property/service"
)

type ClaimResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	PropertyKind    string     `json:"property_kind"`
	PropertyID      string     `json:"property_id"`
	Role            string     `json:"role"`
	Status          string     `json:"status"`
	UserComment     string     `json:"user_comment,omitempty"`
	AdminComment    string     `json:"admin_comment,omitempty"`
	CancelledByUser bool       `json:"cancelled_by_user"`
	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toClaimResponse(c *models.PropertyClaim) ClaimResponse {
	resp := ClaimResponse{
		ID:              c.ID.String(),
		UserID:          c.UserID.String(),
		PropertyKind:    string(c.Target.Kind),
		PropertyID:      c.Target.ID.String(),
		Role:            string(c.ClaimedRole),
		Status:          string(c.Status),
		UserComment:     c.UserComment,
		AdminComment:    c.AdminComment,
		CancelledByUser: c.CancelledByUser,
		ReviewedAt:      c.ReviewedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if c.ReviewedBy != nil {
		reviewer := c.ReviewedBy.String()
		resp.ReviewedBy = &reviewer
	}
	return resp
}

func toClaimList(claims []*models.PropertyClaim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, toClaimResponse(c))
	}
	return out
}

type HistoryEntryResponse struct {
	ID                 string    `json:"id"`
	ClaimID            string    `json:"claim_id"`
	FromStatus         *string   `json:"from_status"`
	ToStatus           string    `json:"to_status"`
	ResolutionTemplate string    `json:"resolution_template,omitempty"`
	ResolutionText     string    `json:"resolution_text,omitempty"`
	ChangedBy          *string   `json:"changed_by"`
	CreatedAt          time.Time `json:"created_at"`
}

func toHistory(entries []models.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp := HistoryEntryResponse{
			ID:                 e.ID.String(),
			ClaimID:            e.ClaimID.String(),
			ToStatus:           string(e.ToStatus),
			ResolutionTemplate: string(e.ResolutionTemplate),
			ResolutionText:     e.ResolutionText,
			CreatedAt:          e.CreatedAt,
		}
		if e.FromStatus != nil {
			from := string(*e.FromStatus)
			resp.FromStatus = &from
		}
		if e.ChangedBy != nil {
			by := e.ChangedBy.String()
			resp.ChangedBy = &by
		}
		out = append(out, resp)
	}
	return out
}

type BindingResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	PropertyKind       string     `json:"property_kind"`
	PropertyID         string     `json:"property_id"`
	Role               string     `json:"role"`
	Status             string     `json:"status"`
	ClaimID            string     `json:"claim_id"`
	CreatedAt          time.Time  `json:"created_at"`
	RevokedAt          *time.Time `json:"revoked_at,omitempty"`
	RevocationTemplate string     `json:"revocation_template,omitempty"`
	RevocationReason   string     `json:"revocation_reason,omitempty"`
}

func toBindingList(bindings []*models.Binding) []BindingResponse {
	out := make([]BindingResponse, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, BindingResponse{
			ID:                 b.ID.String(),
			UserID:             b.UserID.String(),
			PropertyKind:       string(b.Target.Kind),
			PropertyID:         b.Target.ID.String(),
			Role:               string(b.Role),
			Status:             string(b.Status),
			ClaimID:            b.ClaimID.String(),
			CreatedAt:          b.CreatedAt,
			RevokedAt:          b.RevokedAt,
			RevocationTemplate: string(b.RevocationTemplate),
			RevocationReason:   b.RevocationReason,
		})
	}
	return out
}

type RevokeResponse struct {
	Revoked          []BindingResponse `json:"revoked"`
	ListingsArchived int               `json:"listings_archived"`
}

func toRevokeResponse(r *service.RevokeResult) RevokeResponse {
	return RevokeResponse{Revoked: toBindingList(r.Revoked), ListingsArchived: r.ListingsArchived}
}

type VerifyResponse struct {
	ClaimID  string `json:"claim_id"`
	Replayed string `json:"replayed_status"`
	Verified bool   `json:"verified"`
}

type RolesResponse struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
}
