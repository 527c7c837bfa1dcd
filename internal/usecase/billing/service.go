package billing

import (
	"context"

	dombilling "example.com/bookbarn/app/internal/domain/billing"
)

type BillingRepository interface {
	ListFor(ctx context.Context, email string) ([]dombilling.Record, error)
}

type Service struct {
	billingRepo BillingRepository
}

func NewService(billingRepo BillingRepository) *Service {
	return &Service{billingRepo: billingRepo}
}

func (s *Service) History(ctx context.Context, email string) ([]dombilling.Record, error) {
	return s.billingRepo.ListFor(ctx, email)
}
