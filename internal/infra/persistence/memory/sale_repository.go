package memory

import (
	"context"
	"sync"

	domsale "example.com/flowpos/internal/domain/sale"
)

type SaleRepository struct {
	mu    sync.RWMutex
	sales []*domsale.Sale
	byID  map[string]*domsale.Sale
}

func NewSaleRepository() *SaleRepository {
	return &SaleRepository{byID: make(map[string]*domsale.Sale)}
}

func (r *SaleRepository) Create(ctx context.Context, s *domsale.Sale) (*domsale.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cloned := cloneSale(s)
	r.sales = append(r.sales, cloned)
	r.byID[s.ID] = cloned
	return cloneSale(cloned), nil
}

func (r *SaleRepository) GetByID(ctx context.Context, id string) (*domsale.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, domsale.ErrSaleNotFound
	}
	return cloneSale(s), nil
}

func (r *SaleRepository) List(ctx context.Context, filter domsale.ListFilter) ([]*domsale.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domsale.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		if filter.RegisterID != "" && s.RegisterID != filter.RegisterID {
			continue
		}
		if !filter.From.IsZero() && s.CreatedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && s.CreatedAt.After(filter.To) {
			continue
		}
		out = append(out, cloneSale(s))
	}
	return out, nil
}

func cloneSale(s *domsale.Sale) *domsale.Sale {
	cloned := *s
	cloned.Lines = make([]domsale.Line, len(s.Lines))
	copy(cloned.Lines, s.Lines)
	return &cloned
}
