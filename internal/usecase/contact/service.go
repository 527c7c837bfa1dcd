package contact

import (
	"context"
	"time"

	domcontact "example.com/bookbarn/app/internal/domain/contact"
)

type ContactRepository interface {
	domcontact.Repository
}

type Service struct {
	contactRepo ContactRepository
}

func NewService(contactRepo ContactRepository) *Service {
	return &Service{contactRepo: contactRepo}
}

func (s *Service) Submit(ctx context.Context, m domcontact.Message) (*domcontact.Message, error) {
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return nil, domcontact.ErrMissingFields
	}
	m.CreatedAt = time.Now().UTC()
	return s.contactRepo.Create(ctx, m)
}

func (s *Service) List(ctx context.Context) ([]domcontact.Message, error) {
	return s.contactRepo.List(ctx)
}
