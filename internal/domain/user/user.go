package user

// User is keyed by email; authentication itself is handled by an external
// identity provider, the server only stores the profile and role.
type User struct {
	Email string
	Name  string
	Role  Role
}
