package catalog

import (
	"context"

	"github.com/google/uuid"

	dom "example.com/flowpos/internal/domain/catalog"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	existed, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	if p.Name != "" {
		existed.Name = p.Name
	}
	if p.SKU != "" {
		existed.SKU = p.SKU
	}
	if p.Category != "" {
		existed.Category = p.Category
	}
	if p.Price.IsPositive() {
		existed.Price = p.Price
	}
	if !p.Cost.IsNegative() {
		existed.Cost = p.Cost
	}
	if p.Stock >= 0 {
		existed.Stock = p.Stock
	}
	existed.IsActive = p.IsActive

	return s.repo.Update(ctx, existed)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	return s.repo.List(ctx, filter)
}
