package review

import "context"

type Repository interface {
	List(ctx context.Context) ([]Review, error)
	Create(ctx context.Context, r Review) (*Review, error)
}
