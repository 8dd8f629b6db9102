package pos

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domcart "example.com/flowpos/internal/domain/cart"
	domcatalog "example.com/flowpos/internal/domain/catalog"
	domcustomer "example.com/flowpos/internal/domain/customer"
	domsale "example.com/flowpos/internal/domain/sale"
	checkoutuc "example.com/flowpos/internal/usecase/checkout"
)

type mockCatalogRepository struct {
	products map[string]*domcatalog.Product
}

func newMockCatalogRepository() *mockCatalogRepository {
	return &mockCatalogRepository{products: make(map[string]*domcatalog.Product)}
}

func (m *mockCatalogRepository) GetByID(ctx context.Context, id string) (*domcatalog.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, domcatalog.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockCatalogRepository) add(p *domcatalog.Product) {
	m.products[p.ID] = p
}

type mockCustomerRepository struct {
	customers map[string]*domcustomer.Customer
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id string) (*domcustomer.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, domcustomer.ErrCustomerNotFound
	}
	return c, nil
}

type fixedTaxRate struct {
	rate decimal.Decimal
	err  error
}

func (f fixedTaxRate) CombinedTaxRate(ctx context.Context) (decimal.Decimal, error) {
	return f.rate, f.err
}

type mockCheckoutService struct {
	committed []checkoutuc.CommitInput
	sale      *domsale.Sale
	err       error
}

func (m *mockCheckoutService) Commit(ctx context.Context, in checkoutuc.CommitInput) (*domsale.Sale, error) {
	m.committed = append(m.committed, in)
	if m.err != nil {
		return nil, m.err
	}
	return m.sale, nil
}

func newTestService(rate string) (*Service, *mockCatalogRepository, *mockCheckoutService) {
	catalogRepo := newMockCatalogRepository()
	checkoutSvc := &mockCheckoutService{sale: &domsale.Sale{ID: "sale-1"}}
	svc := NewService(
		catalogRepo,
		&mockCustomerRepository{customers: map[string]*domcustomer.Customer{
			"c1": {ID: "c1", Name: "Alice", Email: "alice@example.com"},
		}},
		fixedTaxRate{rate: decimal.RequireFromString(rate)},
		checkoutSvc,
	)
	return svc, catalogRepo, checkoutSvc
}

func widget(stock int64) *domcatalog.Product {
	return &domcatalog.Product{
		ID:       "p1",
		Name:     "Widget",
		Price:    decimal.RequireFromString("10.00"),
		Stock:    stock,
		IsActive: true,
	}
}

func TestAddItem_ReturnsViewWithTotals(t *testing.T) {
	svc, catalogRepo, _ := newTestService("0.08")
	catalogRepo.add(widget(5))

	view, err := svc.AddItem(context.Background(), "reg-1", "p1")

	require.NoError(t, err)
	require.Equal(t, "reg-1", view.RegisterID)
	require.Len(t, view.Lines, 1)
	require.Equal(t, "10.00", view.Subtotal.StringFixed(2))
	require.Equal(t, "0.80", view.Tax.StringFixed(2))
	require.Equal(t, "10.80", view.Total.StringFixed(2))
}

func TestAddItem_UnknownProduct(t *testing.T) {
	svc, _, _ := newTestService("0.08")

	view, err := svc.AddItem(context.Background(), "reg-1", "nope")

	require.ErrorIs(t, err, domcatalog.ErrProductNotFound)
	require.Nil(t, view)
}

func TestAddItem_InactiveProductHidden(t *testing.T) {
	svc, catalogRepo, _ := newTestService("0.08")
	p := widget(5)
	p.IsActive = false
	catalogRepo.add(p)

	_, err := svc.AddItem(context.Background(), "reg-1", "p1")

	require.ErrorIs(t, err, domcatalog.ErrProductNotFound)
}

func TestAddItem_StockExceededLeavesCartUsable(t *testing.T) {
	svc, catalogRepo, _ := newTestService("0.08")
	catalogRepo.add(widget(1))

	_, err := svc.AddItem(context.Background(), "reg-1", "p1")
	require.NoError(t, err)

	_, err = svc.AddItem(context.Background(), "reg-1", "p1")
	require.ErrorIs(t, err, domcart.ErrStockExceeded)

	view, err := svc.GetCart(context.Background(), "reg-1")
	require.NoError(t, err)
	require.Equal(t, int64(1), view.Lines[0].Quantity)
}

func TestSetQuantity_ClampSurfacesError(t *testing.T) {
	svc, catalogRepo, _ := newTestService("0.08")
	catalogRepo.add(widget(5))

	_, err := svc.AddItem(context.Background(), "reg-1", "p1")
	require.NoError(t, err)

	_, err = svc.SetQuantity(context.Background(), "reg-1", "p1", 10)
	require.ErrorIs(t, err, domcart.ErrStockExceeded)

	// Clamp is kept even though the call errored.
	view, err := svc.GetCart(context.Background(), "reg-1")
	require.NoError(t, err)
	require.Equal(t, int64(5), view.Lines[0].Quantity)
	require.Equal(t, "50.00", view.Subtotal.StringFixed(2))
}

func TestRegistersAreIsolated(t *testing.T) {
	svc, catalogRepo, _ := newTestService("0.08")
	catalogRepo.add(widget(5))

	_, err := svc.AddItem(context.Background(), "reg-1", "p1")
	require.NoError(t, err)

	view, err := svc.GetCart(context.Background(), "reg-2")
	require.NoError(t, err)
	require.Empty(t, view.Lines)
}

func TestCancel_AbandonsSale(t *testing.T) {
	svc, catalogRepo, _ := newTestService("0.08")
	catalogRepo.add(widget(5))

	_, err := svc.AddItem(context.Background(), "reg-1", "p1")
	require.NoError(t, err)

	svc.Cancel(context.Background(), "reg-1")

	view, err := svc.GetCart(context.Background(), "reg-1")
	require.NoError(t, err)
	require.Empty(t, view.Lines)
	require.Equal(t, "0.00", view.Total.StringFixed(2))
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _, checkoutSvc := newTestService("0.08")

	sale, err := svc.Checkout(context.Background(), CheckoutInput{
		RegisterID: "reg-1",
		Payment:    domsale.PaymentCash,
	})

	require.ErrorIs(t, err, domsale.ErrEmptySale)
	require.Nil(t, sale)
	require.Empty(t, checkoutSvc.committed)
}

func TestCheckout_SuccessClearsCart(t *testing.T) {
	svc, catalogRepo, checkoutSvc := newTestService("0.08")
	catalogRepo.add(widget(5))

	_, err := svc.AddItem(context.Background(), "reg-1", "p1")
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), "reg-1", "p1")
	require.NoError(t, err)

	sale, err := svc.Checkout(context.Background(), CheckoutInput{
		RegisterID: "reg-1",
		CustomerID: "c1",
		CashierID:  1,
		Payment:    domsale.PaymentCard,
	})

	require.NoError(t, err)
	require.Equal(t, "sale-1", sale.ID)
	require.Len(t, checkoutSvc.committed, 1)
	in := checkoutSvc.committed[0]
	require.Equal(t, "20.00", in.Subtotal.StringFixed(2))
	require.Equal(t, "1.60", in.Tax.StringFixed(2))
	require.Equal(t, "21.60", in.Total.StringFixed(2))
	require.Equal(t, "alice@example.com", in.CustomerEmail)

	view, err := svc.GetCart(context.Background(), "reg-1")
	require.NoError(t, err)
	require.Empty(t, view.Lines)
}

func TestCheckout_FailureKeepsCart(t *testing.T) {
	svc, catalogRepo, checkoutSvc := newTestService("0.08")
	catalogRepo.add(widget(5))
	checkoutSvc.err = errors.New("payment gateway down")

	_, err := svc.AddItem(context.Background(), "reg-1", "p1")
	require.NoError(t, err)

	sale, err := svc.Checkout(context.Background(), CheckoutInput{
		RegisterID: "reg-1",
		Payment:    domsale.PaymentCash,
	})

	require.ErrorIs(t, err, domsale.ErrCheckoutFailed)
	require.Nil(t, sale)

	// Cart is intact so the cashier can retry.
	view, err := svc.GetCart(context.Background(), "reg-1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	require.Equal(t, "10.00", view.Subtotal.StringFixed(2))
}

func TestCheckout_UnknownCustomer(t *testing.T) {
	svc, catalogRepo, checkoutSvc := newTestService("0.08")
	catalogRepo.add(widget(5))

	_, err := svc.AddItem(context.Background(), "reg-1", "p1")
	require.NoError(t, err)

	sale, err := svc.Checkout(context.Background(), CheckoutInput{
		RegisterID: "reg-1",
		CustomerID: "ghost",
		Payment:    domsale.PaymentCash,
	})

	require.ErrorIs(t, err, domcustomer.ErrCustomerNotFound)
	require.Nil(t, sale)
	require.Empty(t, checkoutSvc.committed)
}
