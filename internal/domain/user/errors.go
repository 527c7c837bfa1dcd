package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidRole       = errors.New("invalid role provided")
	ErrInvalidRoleChange = errors.New("role change not allowed")
)
