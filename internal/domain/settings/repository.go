package settings

import "context"

type Repository interface {
	ListTaxRules(ctx context.Context) ([]*TaxRule, error)
	GetTaxRule(ctx context.Context, id string) (*TaxRule, error)
	CreateTaxRule(ctx context.Context, t *TaxRule) (*TaxRule, error)
	UpdateTaxRule(ctx context.Context, t *TaxRule) (*TaxRule, error)
	DeleteTaxRule(ctx context.Context, id string) error

	GetProfile(ctx context.Context) (*StoreProfile, error)
	UpdateProfile(ctx context.Context, p *StoreProfile) (*StoreProfile, error)

	GetReceiptConfig(ctx context.Context) (*ReceiptConfig, error)
	UpdateReceiptConfig(ctx context.Context, c *ReceiptConfig) (*ReceiptConfig, error)
}
