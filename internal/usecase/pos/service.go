package pos

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	domcart "example.com/flowpos/internal/domain/cart"
	domcatalog "example.com/flowpos/internal/domain/catalog"
	domcustomer "example.com/flowpos/internal/domain/customer"
	domsale "example.com/flowpos/internal/domain/sale"
	checkoutuc "example.com/flowpos/internal/usecase/checkout"
)

type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domcatalog.Product, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domcustomer.Customer, error)
}

type TaxRateProvider interface {
	CombinedTaxRate(ctx context.Context) (decimal.Decimal, error)
}

type CheckoutService interface {
	Commit(ctx context.Context, in checkoutuc.CommitInput) (*domsale.Sale, error)
}

// Service owns one cart per register. Each register has a single cashier
// driving it, so the engine itself is unsynchronized; the map lock only
// serializes lookups across registers.
type Service struct {
	mu    sync.Mutex
	carts map[string]*domcart.Cart

	catalogRepo  CatalogRepository
	customerRepo CustomerRepository
	taxes        TaxRateProvider
	checkoutSvc  CheckoutService
}

func NewService(
	catalogRepo CatalogRepository,
	customerRepo CustomerRepository,
	taxes TaxRateProvider,
	checkoutSvc CheckoutService,
) *Service {
	return &Service{
		carts:        make(map[string]*domcart.Cart),
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
		taxes:        taxes,
		checkoutSvc:  checkoutSvc,
	}
}

// CartView is a read-only snapshot of a register cart with derived totals.
type CartView struct {
	RegisterID string
	Lines      []domcart.Line
	TaxRate    decimal.Decimal
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
}

func (s *Service) AddItem(ctx context.Context, registerID, itemID string) (*CartView, error) {
	item, err := s.lookupItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(registerID)
	if err := c.Add(item); err != nil {
		return nil, err
	}
	return s.view(ctx, registerID, c)
}

func (s *Service) SetQuantity(ctx context.Context, registerID, itemID string, quantity int64) (*CartView, error) {
	item, err := s.lookupItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(registerID)
	if err := c.SetQuantity(item, quantity); err != nil {
		return nil, err
	}
	return s.view(ctx, registerID, c)
}

func (s *Service) RemoveItem(ctx context.Context, registerID, itemID string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(registerID)
	c.Remove(itemID)
	return s.view(ctx, registerID, c)
}

func (s *Service) GetCart(ctx context.Context, registerID string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(ctx, registerID, s.cart(registerID))
}

// Cancel abandons the in-progress sale for a register.
func (s *Service) Cancel(ctx context.Context, registerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(registerID).Clear()
}

type CheckoutInput struct {
	RegisterID string
	CustomerID string
	CashierID  int64
	Payment    domsale.PaymentMethod
}

// Checkout commits the register's cart. On success the cart is cleared; on
// any failure the cart is left exactly as it was so the cashier can retry
// or cancel.
func (s *Service) Checkout(ctx context.Context, in CheckoutInput) (*domsale.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(in.RegisterID)
	if c.Empty() {
		return nil, domsale.ErrEmptySale
	}

	rate, err := s.taxes.CombinedTaxRate(ctx)
	if err != nil {
		return nil, err
	}

	var customerEmail string
	if in.CustomerID != "" {
		cust, err := s.customerRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		customerEmail = cust.Email
	}

	created, err := s.checkoutSvc.Commit(ctx, checkoutuc.CommitInput{
		RegisterID:    in.RegisterID,
		CustomerID:    in.CustomerID,
		CashierID:     in.CashierID,
		Lines:         c.Lines(),
		Subtotal:      c.Subtotal(),
		Tax:           c.Tax(rate),
		Total:         c.Total(rate),
		TaxRate:       rate,
		Payment:       in.Payment,
		CustomerEmail: customerEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domsale.ErrCheckoutFailed, err)
	}

	c.Clear()
	return created, nil
}

func (s *Service) lookupItem(ctx context.Context, itemID string) (*domcatalog.Product, error) {
	item, err := s.catalogRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, domcatalog.ErrProductNotFound
	}
	return item, nil
}

func (s *Service) cart(registerID string) *domcart.Cart {
	c, ok := s.carts[registerID]
	if !ok {
		c = domcart.New()
		s.carts[registerID] = c
	}
	return c
}

func (s *Service) view(ctx context.Context, registerID string, c *domcart.Cart) (*CartView, error) {
	rate, err := s.taxes.CombinedTaxRate(ctx)
	if err != nil {
		return nil, err
	}
	return &CartView{
		RegisterID: registerID,
		Lines:      c.Lines(),
		TaxRate:    rate,
		Subtotal:   c.Subtotal(),
		Tax:        c.Tax(rate),
		Total:      c.Total(rate),
	}, nil
}
