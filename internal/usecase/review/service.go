package review

import (
	"context"
	"time"

	domreview "example.com/bookbarn/app/internal/domain/review"
)

type ReviewRepository interface {
	domreview.Repository
}

type Service struct {
	reviewRepo ReviewRepository
}

func NewService(reviewRepo ReviewRepository) *Service {
	return &Service{reviewRepo: reviewRepo}
}

func (s *Service) List(ctx context.Context) ([]domreview.Review, error) {
	return s.reviewRepo.List(ctx)
}

func (s *Service) Submit(ctx context.Context, r domreview.Review) (*domreview.Review, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return s.reviewRepo.Create(ctx, r)
}
