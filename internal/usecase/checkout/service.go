package checkout

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domcart "example.com/flowpos/internal/domain/cart"
	domcatalog "example.com/flowpos/internal/domain/catalog"
	domsale "example.com/flowpos/internal/domain/sale"
	domsettings "example.com/flowpos/internal/domain/settings"
)

type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domcatalog.Product, error)
	AdjustStock(ctx context.Context, id string, delta int64) (*domcatalog.Product, error)
}

type CustomerRepository interface {
	RecordPurchase(ctx context.Context, id string, amount decimal.Decimal, at time.Time) error
}

type SettingsRepository interface {
	GetReceiptConfig(ctx context.Context) (*domsettings.ReceiptConfig, error)
}

// ReceiptSender delivers an emailed copy of the receipt. Delivery problems
// never fail the sale.
type ReceiptSender interface {
	Send(ctx context.Context, s *domsale.Sale, email string) error
}

type CommitInput struct {
	RegisterID string
	CustomerID string
	CashierID  int64
	Lines      []domcart.Line
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	TaxRate    decimal.Decimal
	Payment    domsale.PaymentMethod

	// CustomerEmail, when set with an email-receipt config, gets a receipt.
	CustomerEmail string
}

type Service struct {
	saleRepo     domsale.Repository
	catalogRepo  CatalogRepository
	customerRepo CustomerRepository
	settingsRepo SettingsRepository
	receipts     ReceiptSender
}

func NewService(
	saleRepo domsale.Repository,
	catalogRepo CatalogRepository,
	customerRepo CustomerRepository,
	settingsRepo SettingsRepository,
	receipts ReceiptSender,
) *Service {
	return &Service{
		saleRepo:     saleRepo,
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		receipts:     receipts,
	}
}

// Commit finalizes a sale: validates payment and stock, persists the sale,
// decrements stock, and updates the customer record. Any error before the
// sale is persisted leaves every collaborator untouched.
func (s *Service) Commit(ctx context.Context, in CommitInput) (*domsale.Sale, error) {
	if !in.Payment.IsValid() {
		return nil, domsale.ErrInvalidPayment
	}
	if len(in.Lines) == 0 {
		return nil, domsale.ErrEmptySale
	}

	lines := make([]domsale.Line, 0, len(in.Lines))
	for _, l := range in.Lines {
		item, err := s.catalogRepo.GetByID(ctx, l.ItemID)
		if err != nil {
			return nil, err
		}
		if item.Stock < l.Quantity {
			return nil, domcatalog.ErrOutOfStock
		}
		lines = append(lines, domsale.Line{
			ProductID: l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	created, err := s.saleRepo.Create(ctx, &domsale.Sale{
		ID:         uuid.NewString(),
		RegisterID: in.RegisterID,
		CustomerID: in.CustomerID,
		CashierID:  in.CashierID,
		Lines:      lines,
		Subtotal:   in.Subtotal,
		Tax:        in.Tax,
		Total:      in.Total,
		TaxRate:    in.TaxRate,
		Payment:    in.Payment,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		if _, err := s.catalogRepo.AdjustStock(ctx, l.ProductID, -l.Quantity); err != nil {
			log.Printf("checkout: stock adjust failed for %s: %v", l.ProductID, err)
		}
	}

	if in.CustomerID != "" {
		if err := s.customerRepo.RecordPurchase(ctx, in.CustomerID, created.Total, created.CreatedAt); err != nil {
			log.Printf("checkout: record purchase failed for %s: %v", in.CustomerID, err)
		}
	}

	s.sendReceipt(ctx, created, in.CustomerEmail)

	return created, nil
}

func (s *Service) sendReceipt(ctx context.Context, sl *domsale.Sale, email string) {
	if s.receipts == nil || email == "" {
		return
	}
	cfg, err := s.settingsRepo.GetReceiptConfig(ctx)
	if err != nil || !cfg.EmailReceipt {
		return
	}
	if err := s.receipts.Send(ctx, sl, email); err != nil {
		log.Printf("checkout: receipt email failed for sale %s: %v", sl.ID, err)
	}
}
