package models

import (
	"fmt"
	"slices"

	dErrors "estate/pkg/domain-errors"
)

// ClaimStatus is the state of a PropertyClaim.
type ClaimStatus string

const (
	StatusPending            ClaimStatus = "pending"
	StatusReview             ClaimStatus = "review"
	StatusDocumentsRequested ClaimStatus = "documents_requested"
	StatusApproved           ClaimStatus = "approved"
	StatusRejected           ClaimStatus = "rejected"
)

var liveStatuses = []ClaimStatus{StatusPending, StatusReview, StatusDocumentsRequested}

func (s ClaimStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusReview, StatusDocumentsRequested, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsLive reports whether the claim still awaits a decision.
func (s ClaimStatus) IsLive() bool { return slices.Contains(liveStatuses, s) }

func (s ClaimStatus) IsTerminal() bool { return s == StatusApproved || s == StatusRejected }

func (s ClaimStatus) String() string { return string(s) }

// LiveStatuses returns the statuses counted by the one-live-claim rule.
func LiveStatuses() []ClaimStatus { return slices.Clone(liveStatuses) }

func ParseClaimStatus(s string) (ClaimStatus, error) {
	st := ClaimStatus(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown claim status %q", s))
	}
	return st, nil
}

// Transition is an adjudication event on a claim. Submission is not a
// Transition; it is the claim's construction.
type Transition string

const (
	TransitionReview           Transition = "review"
	TransitionRequestDocuments Transition = "request_documents"
	TransitionApprove          Transition = "approve"
	TransitionReject           Transition = "reject"
	TransitionCancel           Transition = "cancel"
)

var transitionTargets = map[Transition]ClaimStatus{
	TransitionReview:           StatusReview,
	TransitionRequestDocuments: StatusDocumentsRequested,
	TransitionApprove:          StatusApproved,
	TransitionReject:           StatusRejected,
	TransitionCancel:           StatusRejected,
}

func (t Transition) IsValid() bool {
	_, ok := transitionTargets[t]
	return ok
}

// To returns the status a claim lands in after the transition.
func (t Transition) To() ClaimStatus { return transitionTargets[t] }

// Sources returns the statuses the transition may start from.
func (t Transition) Sources() []ClaimStatus {
	if t == TransitionCancel {
		return []ClaimStatus{StatusPending}
	}
	return LiveStatuses()
}
