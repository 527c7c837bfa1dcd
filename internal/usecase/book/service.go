package book

import (
	"context"

	dombook "example.com/bookbarn/app/internal/domain/book"
)

type BookRepository interface {
	dombook.Repository
}

type Service struct {
	bookRepo BookRepository
}

func NewService(bookRepo BookRepository) *Service {
	return &Service{bookRepo: bookRepo}
}

func (s *Service) List(ctx context.Context) ([]dombook.Book, error) {
	return s.bookRepo.List(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]dombook.Book, error) {
	return s.bookRepo.ListByCategory(ctx, category)
}

func (s *Service) Create(ctx context.Context, b dombook.Book) error {
	return s.bookRepo.Create(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.bookRepo.Delete(ctx, id)
}
