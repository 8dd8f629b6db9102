package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	dom "example.com/flowpos/internal/domain/catalog"
)

type StockStatus string

const (
	StatusInStock    StockStatus = "IN_STOCK"
	StatusLowStock   StockStatus = "LOW_STOCK"
	StatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

// lowStockThreshold splits IN_STOCK from LOW_STOCK; anything at zero is out.
const lowStockThreshold = 10

// Item is a catalog product with the derived figures the inventory screen
// shows: margin percentage and a stock status band.
type Item struct {
	dom.Product
	Margin decimal.Decimal
	Status StockStatus
}

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*Item, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*Item, 0, len(products))
	for _, p := range products {
		items = append(items, &Item{
			Product: *p,
			Margin:  margin(p),
			Status:  status(p.Stock),
		})
	}
	return items, nil
}

// AdjustStock applies a manual correction (recount, damage, restock). The
// repository rejects adjustments that would take stock below zero.
func (s *Service) AdjustStock(ctx context.Context, id string, delta int64) (*Item, error) {
	p, err := s.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	return &Item{Product: *p, Margin: margin(p), Status: status(p.Stock)}, nil
}

func margin(p *dom.Product) decimal.Decimal {
	if !p.Price.IsPositive() {
		return decimal.Zero
	}
	return p.Price.Sub(p.Cost).Div(p.Price).Mul(decimal.NewFromInt(100)).Round(1)
}

func status(stock int64) StockStatus {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock <= lowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
