package sale

import "context"

type Repository interface {
	Create(ctx context.Context, s *Sale) (*Sale, error)
	GetByID(ctx context.Context, id string) (*Sale, error)
	List(ctx context.Context, filter ListFilter) ([]*Sale, error)
}
