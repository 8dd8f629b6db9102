package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	domcatalog "example.com/flowpos/internal/domain/catalog"
)

// CatalogRepository keeps the product catalog in process memory. It backs the
// demo/mock-data mode of the dashboard; the MySQL implementation replaces it
// when a DSN is configured.
type CatalogRepository struct {
	mu       sync.RWMutex
	products map[string]*domcatalog.Product
	order    []string
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{products: make(map[string]*domcatalog.Product)}
}

func (r *CatalogRepository) Create(ctx context.Context, p *domcatalog.Product) (*domcatalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.SKU != "" && existing.SKU == p.SKU {
			return nil, domcatalog.ErrSKUAlreadyUsed
		}
	}

	cloned := *p
	r.products[p.ID] = &cloned
	r.order = append(r.order, p.ID)
	out := cloned
	return &out, nil
}

func (r *CatalogRepository) Update(ctx context.Context, p *domcatalog.Product) (*domcatalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return nil, domcatalog.ErrProductNotFound
	}
	cloned := *p
	r.products[p.ID] = &cloned
	out := cloned
	return &out, nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domcatalog.ErrProductNotFound
	}
	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*domcatalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domcatalog.ErrProductNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *CatalogRepository) GetByIDs(ctx context.Context, ids []string) ([]*domcatalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domcatalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			cloned := *p
			out = append(out, &cloned)
		}
	}
	return out, nil
}

func (r *CatalogRepository) List(ctx context.Context, filter domcatalog.ListFilter) ([]*domcatalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domcatalog.Product, 0, len(r.products))
	for _, id := range r.order {
		p := r.products[id]
		if filter.OnlyActive && !p.IsActive {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Search != "" {
			q := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), q) &&
				!strings.Contains(strings.ToLower(p.SKU), q) {
				continue
			}
		}
		cloned := *p
		out = append(out, &cloned)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CatalogRepository) AdjustStock(ctx context.Context, id string, delta int64) (*domcatalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domcatalog.ErrProductNotFound
	}
	if p.Stock+delta < 0 {
		return nil, domcatalog.ErrOutOfStock
	}
	p.Stock += delta
	cloned := *p
	return &cloned, nil
}
