// Package domain holds typed identifiers shared across modules.
//
// Each identifier wraps a UUID so a ClaimID can never be passed where a
// PropertyID is expected. Construct them with the Parse* functions at trust
// boundaries; those reject empty, malformed and nil UUIDs.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "estate/pkg/domain-errors"
)

type (
	UserID     uuid.UUID
	ClaimID    uuid.UUID
	PropertyID uuid.UUID
	BindingID  uuid.UUID
	ListingID  uuid.UUID
	EntryID    uuid.UUID
)

func (id UserID) String() string     { return uuid.UUID(id).String() }
func (id ClaimID) String() string    { return uuid.UUID(id).String() }
func (id PropertyID) String() string { return uuid.UUID(id).String() }
func (id BindingID) String() string  { return uuid.UUID(id).String() }
func (id ListingID) String() string  { return uuid.UUID(id).String() }
func (id EntryID) String() string    { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id ClaimID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id PropertyID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id BindingID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id ListingID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id EntryID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func NewClaimID() ClaimID     { return ClaimID(uuid.New()) }
func NewBindingID() BindingID { return BindingID(uuid.New()) }
func NewListingID() ListingID { return ListingID(uuid.New()) }
func NewEntryID() EntryID     { return EntryID(uuid.New()) }

func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user_id")
	return UserID(u), err
}

func ParseClaimID(s string) (ClaimID, error) {
	u, err := parseUUID(s, "claim_id")
	return ClaimID(u), err
}

func ParsePropertyID(s string) (PropertyID, error) {
	u, err := parseUUID(s, "property_id")
	return PropertyID(u), err
}

func ParseBindingID(s string) (BindingID, error) {
	u, err := parseUUID(s, "binding_id")
	return BindingID(u), err
}

func ParseListingID(s string) (ListingID, error) {
	u, err := parseUUID(s, "listing_id")
	return ListingID(u), err
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, field+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, field+" must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, field+" must not be the nil UUID")
	}
	return u, nil
}
