package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestClaim(t *testing.T, kind PropertyKind, role Role) *PropertyClaim {
	t.Helper()
	target, err := NewTarget(kind, id.PropertyID(uuid.New()))
	require.NoError(t, err)
	c, err := NewClaim(id.NewClaimID(), id.UserID(uuid.New()), target, role, "", now)
	require.NoError(t, err)
	return c
}

func TestNewClaim(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		c := newTestClaim(t, KindApartment, RoleOwner)
		assert.Equal(t, StatusPending, c.Status)
		assert.Nil(t, c.ReviewedBy)
		assert.Equal(t, now, c.CreatedAt)
	})

	t.Run("rejects role from another kind", func(t *testing.T) {
		target, err := NewTarget(KindParking, id.PropertyID(uuid.New()))
		require.NoError(t, err)
		_, err = NewClaim(id.NewClaimID(), id.UserID(uuid.New()), target, RoleTenant, "", now)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects zero target", func(t *testing.T) {
		_, err := NewClaim(id.NewClaimID(), id.UserID(uuid.New()), Target{}, RoleOwner, "", now)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := ParseTarget("garden", uuid.NewString())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestRoleSetsAreDisjoint(t *testing.T) {
	seen := map[Role]PropertyKind{}
	for _, kind := range PropertyKinds() {
		for _, r := range RolesFor(kind) {
			prev, dup := seen[r]
			assert.False(t, dup, "role %s listed for %s and %s", r, prev, kind)
			seen[r] = kind
		}
		assert.NotEmpty(t, RolesFor(kind))
	}
	assert.True(t, RoleOwner.IsOwnerClass())
	assert.True(t, RoleTenant.IsResidentClass())
	assert.Equal(t, "owner", RoleParkingOwner.CoarseRole())
	assert.ElementsMatch(t, []Role{RoleOwner, RoleParkingOwner, RoleCommercialOwner}, RolesConferring("owner"))
}

func TestTransitions(t *testing.T) {
	t.Run("live statuses accept adjudication", func(t *testing.T) {
		for _, from := range LiveStatuses() {
			c := newTestClaim(t, KindApartment, RoleOwner)
			c.Status = from
			for _, tr := range []Transition{TransitionReview, TransitionRequestDocuments, TransitionApprove, TransitionReject} {
				assert.NoError(t, c.CanTransition(tr), "%s from %s", tr, from)
			}
		}
	})

	t.Run("terminal status reports stale state", func(t *testing.T) {
		c := newTestClaim(t, KindApartment, RoleOwner)
		c.Status = StatusApproved
		err := c.CanTransition(TransitionApprove)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeStaleState))
	})

	t.Run("cancel only from pending", func(t *testing.T) {
		c := newTestClaim(t, KindApartment, RoleOwner)
		require.NoError(t, c.CanTransition(TransitionCancel))
		c.Status = StatusReview
		err := c.CanTransition(TransitionCancel)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("terminal move stamps reviewer", func(t *testing.T) {
		c := newTestClaim(t, KindApartment, RoleOwner)
		admin := id.UserID(uuid.New())
		c.ApplyTransition(TransitionApprove, admin, false, ResolvedResolution{Template: TemplateApprovedAllCorrect, Text: "ok"}, now)
		assert.Equal(t, StatusApproved, c.Status)
		require.NotNil(t, c.ReviewedBy)
		assert.Equal(t, admin, *c.ReviewedBy)
		assert.Equal(t, "ok", c.AdminComment)
	})

	t.Run("admin review move leaves reviewer unset", func(t *testing.T) {
		c := newTestClaim(t, KindApartment, RoleOwner)
		c.ApplyTransition(TransitionReview, id.UserID(uuid.New()), false, ResolvedResolution{}, now)
		assert.Equal(t, StatusReview, c.Status)
		assert.Nil(t, c.ReviewedBy)
	})

	t.Run("cancel marks self-cancelled rejection", func(t *testing.T) {
		c := newTestClaim(t, KindApartment, RoleOwner)
		c.ApplyTransition(TransitionCancel, c.UserID, false, CancelResolution(), now)
		assert.Equal(t, StatusRejected, c.Status)
		assert.True(t, c.CancelledByUser)
	})
}

func TestResolution(t *testing.T) {
	tests := []struct {
		name    string
		res     Resolution
		to      ClaimStatus
		want    ResolvedResolution
		wantErr bool
	}{
		{"template resolves canned text", Resolution{Template: TemplateApprovedAllCorrect}, StatusApproved,
			ResolvedResolution{TemplateApprovedAllCorrect, TemplateApprovedAllCorrect.Text()}, false},
		{"custom keeps free text", Resolution{Template: TemplateCustom, Text: "  see notes "}, StatusRejected,
			ResolvedResolution{TemplateCustom, "see notes"}, false},
		{"terminal without anything", Resolution{}, StatusRejected, ResolvedResolution{}, true},
		{"custom without text", Resolution{Template: TemplateCustom}, StatusApproved, ResolvedResolution{}, true},
		{"template plus text", Resolution{Template: TemplateRejectedNotOwner, Text: "extra"}, StatusRejected, ResolvedResolution{}, true},
		{"text without template", Resolution{Text: "why"}, StatusReview, ResolvedResolution{}, true},
		{"template for wrong status", Resolution{Template: TemplateApprovedAllCorrect}, StatusRejected, ResolvedResolution{}, true},
		{"reserved cancel template", Resolution{Template: TemplateCancelledByUser}, StatusRejected, ResolvedResolution{}, true},
		{"unknown template", Resolution{Template: "nope"}, StatusApproved, ResolvedResolution{}, true},
		{"empty non-terminal is fine", Resolution{}, StatusReview, ResolvedResolution{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.res.Resolve(tt.to)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRevocation(t *testing.T) {
	tmpl, reason, err := ResolveRevocation("", "", DefaultSelfRevocation)
	require.NoError(t, err)
	assert.Equal(t, RevocationByHolder, tmpl)
	assert.Equal(t, RevocationByHolder.Text(), reason)

	tmpl, reason, err = ResolveRevocation(RevocationCustom, "sold the flat", DefaultAdminRevocation)
	require.NoError(t, err)
	assert.Equal(t, RevocationCustom, tmpl)
	assert.Equal(t, "sold the flat", reason)

	_, _, err = ResolveRevocation(RevocationCustom, " ", DefaultAdminRevocation)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	_, _, err = ResolveRevocation(RevocationOwnerChange, "and text", DefaultAdminRevocation)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestReplay(t *testing.T) {
	c := newTestClaim(t, KindApartment, RoleOwner)
	entries := []HistoryEntry{NewSubmissionEntry(c)}

	c.ApplyTransition(TransitionReview, id.UserID(uuid.New()), false, ResolvedResolution{}, now)
	entries = append(entries, NewTransitionEntry(c, StatusPending, ResolvedResolution{}, nil, now))
	c.ApplyTransition(TransitionReject, id.UserID(uuid.New()), false, ResolvedResolution{TemplateRejectedDuplicate, "dup"}, now)
	entries = append(entries, NewTransitionEntry(c, StatusReview, ResolvedResolution{}, nil, now))

	got, err := Replay(entries)
	require.NoError(t, err)
	assert.Equal(t, c.Status, got)

	t.Run("empty ledger", func(t *testing.T) {
		_, err := Replay(nil)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("broken chain", func(t *testing.T) {
		broken := []HistoryEntry{entries[0], entries[2]}
		_, err := Replay(broken)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestBindingRevocation(t *testing.T) {
	c := newTestClaim(t, KindParking, RoleParkingOwner)
	b := NewApprovedBinding(c, now)
	require.True(t, b.IsActive())
	require.NoError(t, b.CanRevoke())

	admin := id.UserID(uuid.New())
	b.ApplyRevocation(admin, RevocationOwnerChange, RevocationOwnerChange.Text(), now)
	assert.False(t, b.IsActive())
	assert.Equal(t, admin, *b.RevokedBy)
	assert.True(t, dErrors.HasCode(b.CanRevoke(), dErrors.CodeNotFound))
}
