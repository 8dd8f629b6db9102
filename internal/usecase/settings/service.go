package settings

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dom "example.com/flowpos/internal/domain/settings"
)

var oneHundred = decimal.NewFromInt(100)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListTaxRules(ctx context.Context) ([]*dom.TaxRule, error) {
	return s.repo.ListTaxRules(ctx)
}

func (s *Service) GetTaxRule(ctx context.Context, id string) (*dom.TaxRule, error) {
	return s.repo.GetTaxRule(ctx, id)
}

func (s *Service) CreateTaxRule(ctx context.Context, t *dom.TaxRule) (*dom.TaxRule, error) {
	if err := validateTaxRule(t); err != nil {
		return nil, err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return s.repo.CreateTaxRule(ctx, t)
}

func (s *Service) UpdateTaxRule(ctx context.Context, t *dom.TaxRule) (*dom.TaxRule, error) {
	existed, err := s.repo.GetTaxRule(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	if t.Name != "" {
		existed.Name = t.Name
	}
	if t.AppliesTo != "" {
		existed.AppliesTo = t.AppliesTo
	}
	existed.Rate = t.Rate
	existed.IncludedInPrices = t.IncludedInPrices
	existed.Enabled = t.Enabled

	if err := validateTaxRule(existed); err != nil {
		return nil, err
	}
	return s.repo.UpdateTaxRule(ctx, existed)
}

func (s *Service) DeleteTaxRule(ctx context.Context, id string) error {
	return s.repo.DeleteTaxRule(ctx, id)
}

// CombinedTaxRate is the sum of all enabled tax rule rates, as a fraction
// (8% -> 0.08). The register applies it to every sale subtotal.
func (s *Service) CombinedTaxRate(ctx context.Context) (decimal.Decimal, error) {
	rules, err := s.repo.ListTaxRules(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	percent := decimal.Zero
	for _, r := range rules {
		if r.Enabled {
			percent = percent.Add(r.Rate)
		}
	}
	return percent.Div(oneHundred), nil
}

func (s *Service) GetProfile(ctx context.Context) (*dom.StoreProfile, error) {
	return s.repo.GetProfile(ctx)
}

func (s *Service) UpdateProfile(ctx context.Context, p *dom.StoreProfile) (*dom.StoreProfile, error) {
	return s.repo.UpdateProfile(ctx, p)
}

func (s *Service) GetReceiptConfig(ctx context.Context) (*dom.ReceiptConfig, error) {
	return s.repo.GetReceiptConfig(ctx)
}

func (s *Service) UpdateReceiptConfig(ctx context.Context, c *dom.ReceiptConfig) (*dom.ReceiptConfig, error) {
	return s.repo.UpdateReceiptConfig(ctx, c)
}

func validateTaxRule(t *dom.TaxRule) error {
	if strings.TrimSpace(t.Name) == "" {
		return dom.ErrInvalidTaxName
	}
	if t.Rate.IsNegative() || t.Rate.GreaterThan(oneHundred) {
		return dom.ErrInvalidTaxRate
	}
	return nil
}
