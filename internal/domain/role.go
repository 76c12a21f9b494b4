package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleGuest   Role = "guest"
	RoleStudent Role = "student"
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
)

var Roles = []Role{RoleGuest, RoleStudent, RoleOwner, RoleAdmin}

// ParseRole accepts only the known roles, so an unknown tag never reaches
// the capability switches below.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleGuest, RoleStudent, RoleOwner, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

// CanManageListings reports whether the role may publish listings.
func (r Role) CanManageListings() bool {
	switch r {
	case RoleOwner, RoleAdmin:
		return true
	case RoleGuest, RoleStudent:
		return false
	}
	return false
}

// CanBook reports whether the role may book and bookmark listings.
func (r Role) CanBook() bool {
	switch r {
	case RoleStudent:
		return true
	case RoleGuest, RoleOwner, RoleAdmin:
		return false
	}
	return false
}

func (r Role) HasDashboard() bool {
	switch r {
	case RoleStudent, RoleOwner, RoleAdmin:
		return true
	case RoleGuest:
		return false
	}
	return false
}
