// Package entity contains the core business objects of foodbridge.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role is the single role a user holds.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleStaff     Role = "STAFF"
	RoleSupplier  Role = "SUPPLIER"
	RoleNonprofit Role = "NONPROFIT"
	// RoleOther is the implicit role of a user that has not finished onboarding.
	RoleOther Role = "OTHER"
)

// CountedRoles are the roles reported by system analytics, in display order.
var CountedRoles = []Role{RoleAdmin, RoleStaff, RoleSupplier, RoleNonprofit}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleSupplier, RoleNonprofit, RoleOther:
		return true
	default:
		return false
	}
}

// IsPrivileged reports whether the role belongs to platform operators.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Roles is a convenience slice used by role guards.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Principal is the resolved caller identity handed to every usecase.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// Is reports whether the principal holds any of the given roles.
func (p Principal) Is(roles ...Role) bool {
	return slices.Contains(roles, p.Role)
}
