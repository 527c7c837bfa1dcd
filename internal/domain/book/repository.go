package book

import "context"

type Repository interface {
	List(ctx context.Context) ([]Book, error)
	ListByCategory(ctx context.Context, category string) ([]Book, error)
	Create(ctx context.Context, b Book) error
	Delete(ctx context.Context, id int64) error
}
