package memory

import (
	"context"
	"sync"

	domsettings "example.com/flowpos/internal/domain/settings"
)

type SettingsRepository struct {
	mu       sync.RWMutex
	taxRules map[string]*domsettings.TaxRule
	order    []string
	profile  domsettings.StoreProfile
	receipt  domsettings.ReceiptConfig
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{taxRules: make(map[string]*domsettings.TaxRule)}
}

func (r *SettingsRepository) ListTaxRules(ctx context.Context) ([]*domsettings.TaxRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domsettings.TaxRule, 0, len(r.order))
	for _, id := range r.order {
		cloned := *r.taxRules[id]
		out = append(out, &cloned)
	}
	return out, nil
}

func (r *SettingsRepository) GetTaxRule(ctx context.Context, id string) (*domsettings.TaxRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.taxRules[id]
	if !ok {
		return nil, domsettings.ErrTaxRuleNotFound
	}
	cloned := *t
	return &cloned, nil
}

func (r *SettingsRepository) CreateTaxRule(ctx context.Context, t *domsettings.TaxRule) (*domsettings.TaxRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cloned := *t
	r.taxRules[t.ID] = &cloned
	r.order = append(r.order, t.ID)
	out := cloned
	return &out, nil
}

func (r *SettingsRepository) UpdateTaxRule(ctx context.Context, t *domsettings.TaxRule) (*domsettings.TaxRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.taxRules[t.ID]; !ok {
		return nil, domsettings.ErrTaxRuleNotFound
	}
	cloned := *t
	r.taxRules[t.ID] = &cloned
	out := cloned
	return &out, nil
}

func (r *SettingsRepository) DeleteTaxRule(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.taxRules[id]; !ok {
		return domsettings.ErrTaxRuleNotFound
	}
	delete(r.taxRules, id)
	for i, tid := range r.order {
		if tid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *SettingsRepository) GetProfile(ctx context.Context) (*domsettings.StoreProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := r.profile
	return &cloned, nil
}

func (r *SettingsRepository) UpdateProfile(ctx context.Context, p *domsettings.StoreProfile) (*domsettings.StoreProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile = *p
	cloned := r.profile
	return &cloned, nil
}

func (r *SettingsRepository) GetReceiptConfig(ctx context.Context) (*domsettings.ReceiptConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := r.receipt
	return &cloned, nil
}

func (r *SettingsRepository) UpdateReceiptConfig(ctx context.Context, c *domsettings.ReceiptConfig) (*domsettings.ReceiptConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.receipt = *c
	cloned := r.receipt
	return &cloned, nil
}
