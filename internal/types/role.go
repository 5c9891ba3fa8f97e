package types

import (
	"errors"
	"fmt"
)

// Role describes how a resident relates to their unit.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleTenant Role = "tenant"
	// RoleOwnerTenant marks a resident who both owns and occupies the unit.
	RoleOwnerTenant Role = "owner-tenant"
)

var ErrInvalidRole = errors.New("the resident role must be one of owner, tenant, owner-tenant")

// Valid reports whether r is a defined role.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleTenant, RoleOwnerTenant:
		return true
	}

	return false
}

// PaysAsOwner reports whether the role is charged owner shares.
func (r Role) PaysAsOwner() bool {
	return r == RoleOwner || r == RoleOwnerTenant
}

// PaysAsTenant reports whether the role is charged tenant shares.
func (r Role) PaysAsTenant() bool {
	return r == RoleTenant || r == RoleOwnerTenant
}

// ParseRole parses a role string.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w, got %q", ErrInvalidRole, s)
	}

	return r, nil
}

func (r Role) String() string {
	return string(r)
}
