package user

import "strings"

// Role is a closed enum; free-form role strings from requests must go
// through ParseRole.
type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// CanPromote reports whether the role change is one of the two supported
// promotions: user to admin, or user to seller. Demotions and lateral
// moves are rejected.
func CanPromote(from, to Role) bool {
	if from != RoleUser {
		return false
	}
	return to == RoleAdmin || to == RoleSeller
}
