package user

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" Admin ")
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, role)

	_, err = ParseRole("superuser")
	require.ErrorIs(t, err, ErrInvalidRole)

	_, err = ParseRole("")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestCanPromote(t *testing.T) {
	require.True(t, CanPromote(RoleUser, RoleAdmin))
	require.True(t, CanPromote(RoleUser, RoleSeller))
	require.False(t, CanPromote(RoleSeller, RoleAdmin))
	require.False(t, CanPromote(RoleAdmin, RoleUser))
	require.False(t, CanPromote(RoleUser, RoleUser))
}
