package domain

import (
	"strings"
	"time"
)

// Role tags the identity variant a token was issued for.
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
	RoleAdmin     Role = "admin"
)

// Roles lists every role that maps to an identity variant.
var Roles = []Role{RoleStudent, RoleProfessor, RoleAdmin}

// Valid reports whether the role maps to an identity variant.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleAdmin:
		return true
	}
	return false
}

// RoleSet is an allow-list of roles fixed when an endpoint is wired.
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return set
}

// Contains reports whether role is allowed.
func (s RoleSet) Contains(role Role) bool {
	_, ok := s[role]
	return ok
}

// Identity is implemented only by Student, Professor and Admin.
type Identity interface {
	IdentityID() int64
	IdentityEmail() string
	IdentityRole() Role
	identity()
}

// Token describes an issued access token.
type Token struct {
	AccessToken string
	TokenType   string
	Role        Role
	ExpiresAt   time.Time
}

// NormalizeEmail lower-cases and trims an email so lookups stay unique per variant.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
