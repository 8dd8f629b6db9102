package customer

import (
	"context"
	"strings"

	"github.com/google/uuid"

	dom "example.com/flowpos/internal/domain/customer"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, c *dom.Customer) (*dom.Customer, error) {
	if !c.Type.IsValid() {
		return nil, dom.ErrInvalidType
	}
	c.Email = strings.TrimSpace(strings.ToLower(c.Email))
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, c *dom.Customer) (*dom.Customer, error) {
	existed, err := s.repo.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	if c.Name != "" {
		existed.Name = c.Name
	}
	if c.Email != "" {
		existed.Email = strings.TrimSpace(strings.ToLower(c.Email))
	}
	if c.Phone != "" {
		existed.Phone = c.Phone
	}
	if c.Address != "" {
		existed.Address = c.Address
	}
	if c.Type != "" {
		if !c.Type.IsValid() {
			return nil, dom.ErrInvalidType
		}
		existed.Type = c.Type
	}

	return s.repo.Update(ctx, existed)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Customer, error) {
	return s.repo.List(ctx, filter)
}
