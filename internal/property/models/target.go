package models

import (
	"fmt"

	id "estate/pkg/domain"
	dErrors "estate/pkg/domain-errors"
)

// PropertyKind tags which kind of unit a Target points at.
type PropertyKind string

const (
	KindApartment  PropertyKind = "apartment"
	KindParking    PropertyKind = "parking"
	KindCommercial PropertyKind = "commercial"
)

var propertyKinds = []PropertyKind{KindApartment, KindParking, KindCommercial}

func (k PropertyKind) IsValid() bool {
	switch k {
	case KindApartment, KindParking, KindCommercial:
		return true
	}
	return false
}

func (k PropertyKind) String() string { return string(k) }

// PropertyKinds lists every kind in a stable order.
func PropertyKinds() []PropertyKind {
	return append([]PropertyKind(nil), propertyKinds...)
}

func ParsePropertyKind(s string) (PropertyKind, error) {
	k := PropertyKind(s)
	if !k.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown property kind %q", s))
	}
	return k, nil
}

// Target references exactly one apartment, parking spot or commercial unit.
// The zero value is not a valid target; build one with NewTarget.
type Target struct {
	Kind PropertyKind
	ID   id.PropertyID
}

func NewTarget(kind PropertyKind, propertyID id.PropertyID) (Target, error) {
	if !kind.IsValid() {
		return Target{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown property kind %q", kind))
	}
	if propertyID.IsNil() {
		return Target{}, dErrors.New(dErrors.CodeValidation, "property id is required")
	}
	return Target{Kind: kind, ID: propertyID}, nil
}

// ParseTarget builds a Target from untrusted input.
func ParseTarget(kind, propertyID string) (Target, error) {
	k, err := ParsePropertyKind(kind)
	if err != nil {
		return Target{}, err
	}
	pid, err := id.ParsePropertyID(propertyID)
	if err != nil {
		return Target{}, err
	}
	return NewTarget(k, pid)
}

func (t Target) IsZero() bool { return t.Kind == "" && t.ID.IsNil() }

func (t Target) String() string { return string(t.Kind) + ":" + t.ID.String() }
