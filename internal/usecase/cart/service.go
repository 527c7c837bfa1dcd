package cart

import (
	"context"

	domcart "example.com/bookbarn/app/internal/domain/cart"
)

type CartRepository interface {
	domcart.Repository
}

type Service struct {
	cartRepo CartRepository
}

func NewService(cartRepo CartRepository) *Service {
	return &Service{cartRepo: cartRepo}
}

// Add upserts a cart line. Later writes win: adding a book already in the
// cart overwrites the stored count with the supplied one.
func (s *Service) Add(ctx context.Context, line domcart.Line) (*domcart.Line, error) {
	if line.Count < 1 {
		line.Count = 1
	}
	return s.cartRepo.AddOrUpdate(ctx, line)
}

// SetCount stores an absolute count for an existing line. Callers that
// want to drop a line must use Remove; zero and negative counts are
// rejected here.
func (s *Service) SetCount(ctx context.Context, email string, lineID int64, count int64) error {
	if count < 1 {
		return domcart.ErrInvalidQuantity
	}
	return s.cartRepo.SetCount(ctx, email, lineID, count)
}

func (s *Service) Remove(ctx context.Context, email string, lineID int64) error {
	return s.cartRepo.Remove(ctx, email, lineID)
}

func (s *Service) List(ctx context.Context, email string) ([]domcart.Line, error) {
	return s.cartRepo.ListFor(ctx, email)
}

func (s *Service) Clear(ctx context.Context, email string) error {
	return s.cartRepo.ClearFor(ctx, email)
}
