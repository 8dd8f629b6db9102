package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	dom "example.com/flowpos/internal/domain/catalog"
	"example.com/flowpos/internal/infra/persistence/memory"
)

func seed(t *testing.T, repo *memory.CatalogRepository, id, price, cost string, stock int64) {
	t.Helper()
	_, err := repo.Create(context.Background(), &dom.Product{
		ID:       id,
		Name:     "Item " + id,
		SKU:      "SKU-" + id,
		Price:    decimal.RequireFromString(price),
		Cost:     decimal.RequireFromString(cost),
		Stock:    stock,
		IsActive: true,
	})
	require.NoError(t, err)
}

func TestList_ComputesMarginAndStatus(t *testing.T) {
	repo := memory.NewCatalogRepository()
	seed(t, repo, "a", "59.99", "35.00", 15)
	seed(t, repo, "b", "24.99", "12.00", 8)
	seed(t, repo, "c", "9.99", "4.00", 0)

	svc := NewService(repo)
	items, err := svc.List(context.Background(), dom.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)

	byID := make(map[string]*Item)
	for _, it := range items {
		byID[it.ID] = it
	}

	// (59.99 - 35.00) / 59.99 * 100 = 41.657... -> 41.7
	require.Equal(t, "41.7", byID["a"].Margin.StringFixed(1))
	require.Equal(t, StatusInStock, byID["a"].Status)

	require.Equal(t, StatusLowStock, byID["b"].Status)
	require.Equal(t, StatusOutOfStock, byID["c"].Status)
}

func TestList_ZeroPriceHasZeroMargin(t *testing.T) {
	repo := memory.NewCatalogRepository()
	seed(t, repo, "free", "0", "0", 5)

	svc := NewService(repo)
	items, err := svc.List(context.Background(), dom.ListFilter{})
	require.NoError(t, err)
	require.True(t, items[0].Margin.IsZero())
}

func TestAdjustStock_Restock(t *testing.T) {
	repo := memory.NewCatalogRepository()
	seed(t, repo, "a", "59.99", "35.00", 2)

	svc := NewService(repo)
	item, err := svc.AdjustStock(context.Background(), "a", 20)

	require.NoError(t, err)
	require.Equal(t, int64(22), item.Stock)
	require.Equal(t, StatusInStock, item.Status)
}

func TestAdjustStock_CannotGoNegative(t *testing.T) {
	repo := memory.NewCatalogRepository()
	seed(t, repo, "a", "59.99", "35.00", 2)

	svc := NewService(repo)
	_, err := svc.AdjustStock(context.Background(), "a", -3)

	require.ErrorIs(t, err, dom.ErrOutOfStock)

	// Stock unchanged after the rejected adjustment.
	p, err := repo.GetByID(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, int64(2), p.Stock)
}

func TestAdjustStock_BoundaryStatuses(t *testing.T) {
	repo := memory.NewCatalogRepository()
	seed(t, repo, "a", "10.00", "5.00", 11)

	svc := NewService(repo)

	item, err := svc.AdjustStock(context.Background(), "a", -1)
	require.NoError(t, err)
	require.Equal(t, StatusLowStock, item.Status, "stock 10 is low")

	item, err = svc.AdjustStock(context.Background(), "a", -10)
	require.NoError(t, err)
	require.Equal(t, StatusOutOfStock, item.Status)
}
