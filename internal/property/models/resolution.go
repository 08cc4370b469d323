package models

import (
	"fmt"
	"slices"
	"strings"

	dErrors "estate/pkg/domain-errors"
)

// ResolutionTemplate is a closed set of reason codes attached to claim
// transitions. Every code except TemplateCustom resolves to canned text;
// TemplateCustom carries the adjudicator's free text instead.
type ResolutionTemplate string

const (
	TemplateCustom ResolutionTemplate = "custom"

	TemplateReviewStarted ResolutionTemplate = "review_started"

	TemplateDocumentsOwnershipProof ResolutionTemplate = "documents_ownership_proof"
	TemplateDocumentsIdentity       ResolutionTemplate = "documents_identity"
	TemplateDocumentsLease          ResolutionTemplate = "documents_lease"

	TemplateApprovedAllCorrect        ResolutionTemplate = "approved_all_correct"
	TemplateApprovedDocumentsVerified ResolutionTemplate = "approved_documents_verified"

	TemplateRejectedDocumentsMissing ResolutionTemplate = "rejected_documents_missing"
	TemplateRejectedNotOwner         ResolutionTemplate = "rejected_not_owner"
	TemplateRejectedDuplicate        ResolutionTemplate = "rejected_duplicate"
	TemplateRejectedInvalidData      ResolutionTemplate = "rejected_invalid_data"

	// TemplateCancelledByUser marks a rejection that the claimant caused by
	// cancelling. Only the cancel transition uses it.
	TemplateCancelledByUser ResolutionTemplate = "cancelled_by_user"
)

type templateInfo struct {
	text    string
	targets []ClaimStatus
}

var resolutionTemplates = map[ResolutionTemplate]templateInfo{
	TemplateReviewStarted:             {"Your claim is being reviewed.", []ClaimStatus{StatusReview}},
	TemplateDocumentsOwnershipProof:   {"Please upload a document proving ownership of the property.", []ClaimStatus{StatusDocumentsRequested}},
	TemplateDocumentsIdentity:         {"Please upload an identity document.", []ClaimStatus{StatusDocumentsRequested}},
	TemplateDocumentsLease:            {"Please upload the lease or rental agreement.", []ClaimStatus{StatusDocumentsRequested}},
	TemplateApprovedAllCorrect:        {"All submitted information is correct. Your rights have been confirmed.", []ClaimStatus{StatusApproved}},
	TemplateApprovedDocumentsVerified: {"Your documents have been verified. Your rights have been confirmed.", []ClaimStatus{StatusApproved}},
	TemplateRejectedDocumentsMissing:  {"The required documents were not provided.", []ClaimStatus{StatusRejected}},
	TemplateRejectedNotOwner:          {"Our records do not show you holding this role for the property.", []ClaimStatus{StatusRejected}},
	TemplateRejectedDuplicate:         {"This right is already registered for you.", []ClaimStatus{StatusRejected}},
	TemplateRejectedInvalidData:       {"The submitted details could not be matched to the property.", []ClaimStatus{StatusRejected}},
	TemplateCancelledByUser:           {"Cancelled by the claimant.", []ClaimStatus{StatusRejected}},
}

func (t ResolutionTemplate) IsValid() bool {
	if t == TemplateCustom {
		return true
	}
	_, ok := resolutionTemplates[t]
	return ok
}

// Text returns the canned text, or "" for TemplateCustom and unknown codes.
func (t ResolutionTemplate) Text() string { return resolutionTemplates[t].text }

// AllowedFor reports whether the template may accompany a move to status.
func (t ResolutionTemplate) AllowedFor(status ClaimStatus) bool {
	if t == TemplateCustom {
		return true
	}
	return slices.Contains(resolutionTemplates[t].targets, status)
}

// Resolution is the adjudicator's input: a template code, plus free text when
// the code is TemplateCustom.
type Resolution struct {
	Template ResolutionTemplate
	Text     string
}

// ResolvedResolution is what gets stored: the code and the final text.
type ResolvedResolution struct {
	Template ResolutionTemplate
	Text     string
}

// Resolve validates r for a move to status. Terminal moves require exactly one
// of a non-custom template or custom free text. Other moves accept an empty
// resolution under the same rules.
func (r Resolution) Resolve(status ClaimStatus) (ResolvedResolution, error) {
	text := strings.TrimSpace(r.Text)
	if r.Template == "" {
		if text != "" {
			return ResolvedResolution{}, dErrors.New(dErrors.CodeValidation,
				"free text requires the custom resolution template")
		}
		if status.IsTerminal() {
			return ResolvedResolution{}, dErrors.New(dErrors.CodeValidation,
				"a resolution template is required for "+string(status))
		}
		return ResolvedResolution{}, nil
	}
	if !r.Template.IsValid() {
		return ResolvedResolution{}, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("unknown resolution template %q", r.Template))
	}
	if r.Template == TemplateCancelledByUser {
		return ResolvedResolution{}, dErrors.New(dErrors.CodeValidation,
			"cancelled_by_user is reserved for claimant cancellation")
	}
	if !r.Template.AllowedFor(status) {
		return ResolvedResolution{}, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("resolution template %q cannot be used for %s", r.Template, status))
	}
	if r.Template == TemplateCustom {
		if text == "" {
			return ResolvedResolution{}, dErrors.New(dErrors.CodeValidation,
				"custom resolution requires text")
		}
		return ResolvedResolution{Template: TemplateCustom, Text: text}, nil
	}
	if text != "" {
		return ResolvedResolution{}, dErrors.New(dErrors.CodeValidation,
			"supply either a template or custom text, not both")
	}
	return ResolvedResolution{Template: r.Template, Text: r.Template.Text()}, nil
}

// CancelResolution is the fixed resolution recorded when a claimant cancels.
func CancelResolution() ResolvedResolution {
	return ResolvedResolution{Template: TemplateCancelledByUser, Text: TemplateCancelledByUser.Text()}
}

// RevocationTemplate is the closed set of reasons a binding can be revoked for.
type RevocationTemplate string

const (
	RevocationCustom         RevocationTemplate = "custom"
	RevocationOwnerChange    RevocationTemplate = "role_owner_change"
	RevocationTenantMovedOut RevocationTemplate = "role_tenant_moved_out"
	RevocationLeaseEnded     RevocationTemplate = "role_lease_ended"
	RevocationByHolder       RevocationTemplate = "revoked_by_holder"
	RevocationAdminDecision  RevocationTemplate = "revoked_admin_decision"
	DefaultSelfRevocation                       = RevocationByHolder
	DefaultAdminRevocation                      = RevocationAdminDecision
)

var revocationTexts = map[RevocationTemplate]string{
	RevocationOwnerChange:    "Ownership of the property has changed.",
	RevocationTenantMovedOut: "The resident has moved out.",
	RevocationLeaseEnded:     "The lease has ended.",
	RevocationByHolder:       "The holder gave up these rights.",
	RevocationAdminDecision:  "Rights were revoked by the administration.",
}

func (t RevocationTemplate) IsValid() bool {
	if t == RevocationCustom {
		return true
	}
	_, ok := revocationTexts[t]
	return ok
}

func (t RevocationTemplate) Text() string { return revocationTexts[t] }

// ResolveRevocation applies the same one-of rule as claim resolutions. An empty
// template falls back to def.
func ResolveRevocation(template RevocationTemplate, reason string, def RevocationTemplate) (RevocationTemplate, string, error) {
	reason = strings.TrimSpace(reason)
	if template == "" {
		if reason != "" {
			return "", "", dErrors.New(dErrors.CodeValidation, "free text requires the custom revocation template")
		}
		template = def
	}
	if !template.IsValid() {
		return "", "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown revocation template %q", template))
	}
	if template == RevocationCustom {
		if reason == "" {
			return "", "", dErrors.New(dErrors.CodeValidation, "custom revocation requires a reason")
		}
		return template, reason, nil
	}
	if reason != "" {
		return "", "", dErrors.New(dErrors.CodeValidation, "supply either a template or custom reason, not both")
	}
	return template, template.Text(), nil
}
