package user

import "context"

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u User) error
	UpdateRole(ctx context.Context, email string, role Role) error
}
