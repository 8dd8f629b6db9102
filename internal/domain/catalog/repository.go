package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, error)

	// AdjustStock changes stock by delta (negative for a sale) and fails
	// with ErrOutOfStock when the result would drop below zero.
	AdjustStock(ctx context.Context, id string, delta int64) (*Product, error)
}
