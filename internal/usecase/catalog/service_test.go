package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	dom "example.com/flowpos/internal/domain/catalog"
	"example.com/flowpos/internal/infra/persistence/memory"
)

func seedProduct(t *testing.T, svc *Service, name, sku, category, price string, stock int64) *dom.Product {
	t.Helper()
	p, err := svc.Create(context.Background(), &dom.Product{
		Name:     name,
		SKU:      sku,
		Category: category,
		Price:    decimal.RequireFromString(price),
		Cost:     decimal.RequireFromString(price).Div(decimal.NewFromInt(2)).Round(2),
		Stock:    stock,
		IsActive: true,
	})
	require.NoError(t, err)
	return p
}

func TestCreate_AssignsID(t *testing.T) {
	svc := NewService(memory.NewCatalogRepository())

	p := seedProduct(t, svc, "Headphones", "SKU-001", "Electronics", "59.99", 15)

	require.NotEmpty(t, p.ID)
	got, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, "Headphones", got.Name)
	require.True(t, got.Price.Equal(decimal.RequireFromString("59.99")))
}

func TestCreate_DuplicateSKU(t *testing.T) {
	svc := NewService(memory.NewCatalogRepository())
	seedProduct(t, svc, "Headphones", "SKU-001", "Electronics", "59.99", 15)

	_, err := svc.Create(context.Background(), &dom.Product{
		Name:  "Other",
		SKU:   "SKU-001",
		Price: decimal.RequireFromString("9.99"),
	})

	require.ErrorIs(t, err, dom.ErrSKUAlreadyUsed)
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	svc := NewService(memory.NewCatalogRepository())
	p := seedProduct(t, svc, "Headphones", "SKU-001", "Electronics", "59.99", 15)

	updated, err := svc.Update(context.Background(), &dom.Product{
		ID:       p.ID,
		Price:    decimal.RequireFromString("64.99"),
		Stock:    12,
		IsActive: true,
	})

	require.NoError(t, err)
	require.Equal(t, "Headphones", updated.Name, "empty name must keep the old value")
	require.Equal(t, "SKU-001", updated.SKU)
	require.True(t, updated.Price.Equal(decimal.RequireFromString("64.99")))
	require.Equal(t, int64(12), updated.Stock)
}

func TestUpdate_UnknownProduct(t *testing.T) {
	svc := NewService(memory.NewCatalogRepository())

	_, err := svc.Update(context.Background(), &dom.Product{ID: "nope", Name: "X"})

	require.ErrorIs(t, err, dom.ErrProductNotFound)
}

func TestDelete_RemovesProduct(t *testing.T) {
	svc := NewService(memory.NewCatalogRepository())
	p := seedProduct(t, svc, "Headphones", "SKU-001", "Electronics", "59.99", 15)

	require.NoError(t, svc.Delete(context.Background(), p.ID))

	_, err := svc.GetByID(context.Background(), p.ID)
	require.ErrorIs(t, err, dom.ErrProductNotFound)
}

func TestList_Filters(t *testing.T) {
	svc := NewService(memory.NewCatalogRepository())
	seedProduct(t, svc, "Bluetooth Headphones", "SKU-001", "Electronics", "59.99", 15)
	seedProduct(t, svc, "USB Cable", "SKU-002", "Electronics", "9.99", 50)
	coffee := seedProduct(t, svc, "Coffee Beans", "SKU-003", "Grocery", "12.99", 30)

	byCategory, err := svc.List(context.Background(), dom.ListFilter{Category: "Electronics"})
	require.NoError(t, err)
	require.Len(t, byCategory, 2)

	bySearch, err := svc.List(context.Background(), dom.ListFilter{Search: "coffee"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	require.Equal(t, coffee.ID, bySearch[0].ID)

	_, err = svc.Update(context.Background(), &dom.Product{ID: coffee.ID, IsActive: false, Stock: coffee.Stock})
	require.NoError(t, err)

	active, err := svc.List(context.Background(), dom.ListFilter{OnlyActive: true})
	require.NoError(t, err)
	require.Len(t, active, 2)
}
