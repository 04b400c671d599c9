// Package auth verifies identity tokens issued by the authentication provider
// and turns verified claims into the capability values the services require.
package auth

import (
	"errors"

	"github.com/google/uuid"
)

// Role is the coarse permission claim carried in the identity token
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleStore    Role = "store"
)

// ErrForbidden is returned when a principal lacks the role a capability needs
var ErrForbidden = errors.New("forbidden")

// Principal is the verified caller of a request
type Principal struct {
	Role   Role
	UserID uuid.UUID
}

// IsStaff reports whether the principal may operate on deliveries
func (p Principal) IsStaff() bool {
	return p.Role == RoleAdmin || p.Role == RoleStore
}

// AdminContext proves the holder was verified as an admin. The zero value is
// not valid and is rejected by every operation that takes one.
type AdminContext struct {
	adminID uuid.UUID
}

// NewAdminContext builds an AdminContext from a verified principal
func NewAdminContext(p Principal) (AdminContext, error) {
	if p.Role != RoleAdmin || p.UserID == uuid.Nil {
		return AdminContext{}, ErrForbidden
	}
	return AdminContext{adminID: p.UserID}, nil
}

// AdminID returns the verified admin's user id
func (a AdminContext) AdminID() uuid.UUID { return a.adminID }

// Valid reports whether a was built from a verified admin principal
func (a AdminContext) Valid() bool { return a.adminID != uuid.Nil }

// StaffContext proves the holder was verified as an admin or store operator.
type StaffContext struct {
	role    Role
	actorID uuid.UUID
}

// NewStaffContext builds a StaffContext from a verified principal
func NewStaffContext(p Principal) (StaffContext, error) {
	if !p.IsStaff() || p.UserID == uuid.Nil {
		return StaffContext{}, ErrForbidden
	}
	return StaffContext{actorID: p.UserID, role: p.Role}, nil
}

// ActorID returns the verified staff member's user id
func (s StaffContext) ActorID() uuid.UUID { return s.actorID }

// Role returns the staff member's role
func (s StaffContext) Role() Role { return s.role }

// Valid reports whether s was built from a verified staff principal
func (s StaffContext) Valid() bool { return s.actorID != uuid.Nil }
