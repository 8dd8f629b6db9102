package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domcustomer "example.com/flowpos/internal/domain/customer"
)

type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domcustomer.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: make(map[string]*domcustomer.Customer)}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domcustomer.Customer) (*domcustomer.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.customers {
		if existing.Email != "" && existing.Email == c.Email {
			return nil, domcustomer.ErrEmailAlreadyUsed
		}
	}

	cloned := *c
	r.customers[c.ID] = &cloned
	out := cloned
	return &out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domcustomer.Customer) (*domcustomer.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[c.ID]; !ok {
		return nil, domcustomer.ErrCustomerNotFound
	}
	cloned := *c
	r.customers[c.ID] = &cloned
	out := cloned
	return &out, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[id]; !ok {
		return domcustomer.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domcustomer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, domcustomer.ErrCustomerNotFound
	}
	cloned := *c
	return &cloned, nil
}

func (r *CustomerRepository) List(ctx context.Context, filter domcustomer.ListFilter) ([]*domcustomer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domcustomer.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if filter.Type != nil && c.Type != *filter.Type {
			continue
		}
		if filter.Search != "" {
			q := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(c.Name), q) &&
				!strings.Contains(strings.ToLower(c.Email), q) &&
				!strings.Contains(c.Phone, filter.Search) {
				continue
			}
		}
		cloned := *c
		out = append(out, &cloned)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CustomerRepository) RecordPurchase(ctx context.Context, id string, amount decimal.Decimal, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.customers[id]
	if !ok {
		return domcustomer.ErrCustomerNotFound
	}
	c.TotalSpent = c.TotalSpent.Add(amount)
	if at.After(c.LastPurchase) {
		c.LastPurchase = at
	}
	return nil
}
