package user

import (
	"context"
	"errors"

	domuser "example.com/bookbarn/app/internal/domain/user"
)

type UserRepository interface {
	domuser.Repository
}

type Service struct {
	userRepo UserRepository
}

func NewService(userRepo UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// Upsert stores a new user, or reports an existing one without touching it.
// The external auth provider posts the profile on every sign-in, so a
// repeat is the common case.
func (s *Service) Upsert(ctx context.Context, u domuser.User) (created bool, err error) {
	existing, err := s.userRepo.GetByEmail(ctx, u.Email)
	if err != nil && !errors.Is(err, domuser.ErrUserNotFound) {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	if u.Role == "" {
		u.Role = domuser.RoleUser
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]domuser.User, error) {
	return s.userRepo.List(ctx)
}

// ChangeRole promotes a user. Only the two supported promotions are
// accepted; everything else fails with ErrInvalidRoleChange.
func (s *Service) ChangeRole(ctx context.Context, email string, roleStr string) error {
	role, err := domuser.ParseRole(roleStr)
	if err != nil {
		return err
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if u.Role == role {
		return nil
	}
	if !domuser.CanPromote(u.Role, role) {
		return domuser.ErrInvalidRoleChange
	}

	return s.userRepo.UpdateRole(ctx, email, role)
}
