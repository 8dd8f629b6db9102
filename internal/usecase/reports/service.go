package reports

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	domcatalog "example.com/flowpos/internal/domain/catalog"
	domsale "example.com/flowpos/internal/domain/sale"
)

type CatalogRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*domcatalog.Product, error)
}

type Service struct {
	saleRepo    domsale.Repository
	catalogRepo CatalogRepository
}

func NewService(saleRepo domsale.Repository, catalogRepo CatalogRepository) *Service {
	return &Service{saleRepo: saleRepo, catalogRepo: catalogRepo}
}

func (s *Service) ListSales(ctx context.Context, filter domsale.ListFilter) ([]*domsale.Sale, error) {
	return s.saleRepo.List(ctx, filter)
}

func (s *Service) GetSale(ctx context.Context, id string) (*domsale.Sale, error) {
	return s.saleRepo.GetByID(ctx, id)
}

type DailyTotal struct {
	Date  string
	Sales int
	Total decimal.Decimal
}

// DailySales buckets committed sales by calendar day over [from, to].
func (s *Service) DailySales(ctx context.Context, from, to time.Time) ([]DailyTotal, error) {
	sales, err := s.saleRepo.List(ctx, domsale.ListFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DailyTotal)
	for _, sl := range sales {
		day := sl.CreatedAt.Format("2006-01-02")
		t, ok := byDay[day]
		if !ok {
			t = &DailyTotal{Date: day, Total: decimal.Zero}
			byDay[day] = t
		}
		t.Sales++
		t.Total = t.Total.Add(sl.Total)
	}

	out := make([]DailyTotal, 0, len(byDay))
	for _, t := range byDay {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

type ProductSales struct {
	ProductID string
	Name      string
	Units     int64
	Revenue   decimal.Decimal
}

// TopProducts ranks products by units sold in [from, to], revenue as the
// tiebreaker.
func (s *Service) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]ProductSales, error) {
	sales, err := s.saleRepo.List(ctx, domsale.ListFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]*ProductSales)
	for _, sl := range sales {
		for _, l := range sl.Lines {
			p, ok := byProduct[l.ProductID]
			if !ok {
				p = &ProductSales{ProductID: l.ProductID, Name: l.Name, Revenue: decimal.Zero}
				byProduct[l.ProductID] = p
			}
			p.Units += l.Quantity
			p.Revenue = p.Revenue.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
		}
	}

	out := make([]ProductSales, 0, len(byProduct))
	for _, p := range byProduct {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Units != out[j].Units {
			return out[i].Units > out[j].Units
		}
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type CategorySales struct {
	Category string
	Total    decimal.Decimal
}

// SalesByCategory totals sale lines per product category. Lines whose product
// no longer exists in the catalog fall under "Other".
func (s *Service) SalesByCategory(ctx context.Context, from, to time.Time) ([]CategorySales, error) {
	sales, err := s.saleRepo.List(ctx, domsale.ListFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, sl := range sales {
		for _, l := range sl.Lines {
			if !seen[l.ProductID] {
				seen[l.ProductID] = true
				ids = append(ids, l.ProductID)
			}
		}
	}

	products, err := s.catalogRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	categoryOf := make(map[string]string, len(products))
	for _, p := range products {
		categoryOf[p.ID] = p.Category
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, sl := range sales {
		for _, l := range sl.Lines {
			cat, ok := categoryOf[l.ProductID]
			if !ok {
				cat = "Other"
			}
			byCategory[cat] = byCategory[cat].Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
		}
	}

	out := make([]CategorySales, 0, len(byCategory))
	for cat, total := range byCategory {
		out = append(out, CategorySales{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total.GreaterThan(out[j].Total) })
	return out, nil
}
