package models

import (
	"fmt"

	dErrors "estate/pkg/domain-errors"
)

// Role is the right asserted by a claim and confirmed by a binding.
// Each property kind has its own disjoint set of roles.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleResident Role = "resident"
	RoleTenant   Role = "tenant"

	RoleParkingOwner  Role = "parking_owner"
	RoleParkingRenter Role = "parking_renter"

	RoleCommercialOwner  Role = "commercial_owner"
	RoleCommercialTenant Role = "commercial_tenant"
	RoleRepresentative   Role = "representative"
)

// RoleClass partitions roles into those that own a unit and those that live
// or work in it. Owners adjudicate resident-class claims on their units.
type RoleClass string

const (
	ClassOwner    RoleClass = "owner"
	ClassResident RoleClass = "resident"
)

type roleInfo struct {
	kind  PropertyKind
	class RoleClass
}

var roles = map[Role]roleInfo{
	RoleOwner:            {KindApartment, ClassOwner},
	RoleResident:         {KindApartment, ClassResident},
	RoleTenant:           {KindApartment, ClassResident},
	RoleParkingOwner:     {KindParking, ClassOwner},
	RoleParkingRenter:    {KindParking, ClassResident},
	RoleCommercialOwner:  {KindCommercial, ClassOwner},
	RoleCommercialTenant: {KindCommercial, ClassResident},
	RoleRepresentative:   {KindCommercial, ClassResident},
}

func (r Role) IsValid() bool {
	_, ok := roles[r]
	return ok
}

func (r Role) String() string { return string(r) }

// Kind returns the property kind the role belongs to.
func (r Role) Kind() PropertyKind { return roles[r].kind }

// Class returns the owner/resident partition of the role.
func (r Role) Class() RoleClass { return roles[r].class }

func (r Role) IsOwnerClass() bool { return r.IsValid() && r.Class() == ClassOwner }

func (r Role) IsResidentClass() bool { return r.IsValid() && r.Class() == ClassResident }

// CoarseRole is the global role an active binding with this role confers.
func (r Role) CoarseRole() string { return string(r.Class()) }

// RolesFor lists the roles that may be claimed on a property kind.
func RolesFor(kind PropertyKind) []Role {
	var out []Role
	for _, r := range []Role{
		RoleOwner, RoleResident, RoleTenant,
		RoleParkingOwner, RoleParkingRenter,
		RoleCommercialOwner, RoleCommercialTenant, RoleRepresentative,
	} {
		if roles[r].kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// RolesConferring lists every role whose bindings confer the coarse role.
func RolesConferring(coarse string) []Role {
	var out []Role
	for r, info := range roles {
		if string(info.class) == coarse {
			out = append(out, r)
		}
	}
	return out
}

// ValidateRoleForKind rejects a role that does not belong to kind.
func ValidateRoleForKind(kind PropertyKind, role Role) error {
	if !role.IsValid() {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown role %q", role))
	}
	if role.Kind() != kind {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("role %q cannot be claimed on a %s", role, kind))
	}
	return nil
}
