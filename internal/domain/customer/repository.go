package customer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, c *Customer) (*Customer, error)
	Update(ctx context.Context, c *Customer) (*Customer, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, filter ListFilter) ([]*Customer, error)

	// RecordPurchase adds amount to the customer's running total and moves
	// their last-purchase date forward.
	RecordPurchase(ctx context.Context, id string, amount decimal.Decimal, at time.Time) error
}
