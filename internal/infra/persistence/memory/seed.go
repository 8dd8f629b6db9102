package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domcatalog "example.com/flowpos/internal/domain/catalog"
	domcustomer "example.com/flowpos/internal/domain/customer"
	domsettings "example.com/flowpos/internal/domain/settings"
	domuser "example.com/flowpos/internal/domain/user"
)

// Stores bundles the in-memory repositories behind one seedable unit, the
// demo mode the dashboard runs in when no database is configured.
type Stores struct {
	Catalog   *CatalogRepository
	Customers *CustomerRepository
	Sales     *SaleRepository
	Settings  *SettingsRepository
	Users     *UserRepository
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

func NewStores() *Stores {
	return &Stores{
		Catalog:   NewCatalogRepository(),
		Customers: NewCustomerRepository(),
		Sales:     NewSaleRepository(),
		Settings:  NewSettingsRepository(),
		Users:     NewUserRepository(),
	}
}

// Seed loads the demo dataset: the sample catalog, customer directory, tax
// rules, store profile, and the demo admin login (admin / password).
func (s *Stores) Seed(ctx context.Context, hasher PasswordHasher) error {
	for _, p := range seedProducts() {
		if _, err := s.Catalog.Create(ctx, p); err != nil {
			return err
		}
	}
	for _, c := range seedCustomers() {
		if _, err := s.Customers.Create(ctx, c); err != nil {
			return err
		}
	}
	for _, t := range seedTaxRules() {
		if _, err := s.Settings.CreateTaxRule(ctx, t); err != nil {
			return err
		}
	}

	if _, err := s.Settings.UpdateProfile(ctx, &domsettings.StoreProfile{
		Name:     "FlowPOS Demo Store",
		Address:  "100 Market St",
		Phone:    "(555) 010-0100",
		Currency: "USD",
	}); err != nil {
		return err
	}
	if _, err := s.Settings.UpdateReceiptConfig(ctx, &domsettings.ReceiptConfig{
		HeaderText:   "Thank you for shopping at FlowPOS Demo Store",
		FooterText:   "Returns within 30 days with receipt",
		PrintReceipt: true,
		EmailReceipt: true,
	}); err != nil {
		return err
	}

	hash, err := hasher.Hash("password")
	if err != nil {
		return err
	}
	_, err = s.Users.Create(ctx, &domuser.User{
		Name:         "Store Admin",
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		RoleCode:     domuser.RoleCodeAdmin,
	})
	return err
}

func seedProducts() []*domcatalog.Product {
	mk := func(id, name, sku, category string, price, cost string, stock int64) *domcatalog.Product {
		return &domcatalog.Product{
			ID:       id,
			Name:     name,
			SKU:      sku,
			Category: category,
			Price:    decimal.RequireFromString(price),
			Cost:     decimal.RequireFromString(cost),
			Stock:    stock,
			IsActive: true,
		}
	}
	return []*domcatalog.Product{
		mk("1", "Bluetooth Headphones", "BT-HP-001", "Electronics", "59.99", "35.00", 15),
		mk("2", "USB-C Charger Cable", "USB-C-001", "Electronics", "12.99", "5.50", 23),
		mk("3", "Wireless Mouse", "WL-MS-001", "Electronics", "24.95", "14.20", 7),
		mk("4", "T-Shirt (Black)", "APP-TS-BLK", "Clothing", "19.99", "8.75", 42),
		mk("5", "Baseball Cap", "APP-CAP-001", "Clothing", "14.99", "6.25", 19),
		mk("6", "Coffee Mug", "HW-MUG-001", "Accessories", "8.99", "3.15", 31),
		mk("7", "Protein Bar", "FB-BAR-001", "Food & Beverages", "2.49", "1.20", 54),
		mk("8", "Energy Drink", "FB-DRK-001", "Food & Beverages", "3.49", "1.75", 62),
	}
}

func seedCustomers() []*domcustomer.Customer {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []*domcustomer.Customer{
		{ID: "1", Name: "Alex Johnson", Email: "alex@example.com", Phone: "(555) 123-4567", Address: "123 Main St, City, State", Type: domcustomer.TypeRetail, TotalSpent: decimal.RequireFromString("1250.50"), LastPurchase: day("2025-04-01")},
		{ID: "2", Name: "Maria Garcia", Email: "maria@example.com", Phone: "(555) 234-5678", Address: "456 Oak Ave, Town, State", Type: domcustomer.TypeWholesale, TotalSpent: decimal.RequireFromString("3420.75"), LastPurchase: day("2025-04-05")},
		{ID: "3", Name: "Sam Taylor", Email: "sam@example.com", Phone: "(555) 345-6789", Address: "789 Pine Rd, Village, State", Type: domcustomer.TypeOnline, TotalSpent: decimal.RequireFromString("750.25"), LastPurchase: day("2025-03-28")},
		{ID: "4", Name: "Jordan Williams", Email: "jordan@example.com", Phone: "(555) 456-7890", Address: "101 Elm Blvd, County, State", Type: domcustomer.TypeRetail, TotalSpent: decimal.RequireFromString("2150.00"), LastPurchase: day("2025-04-10")},
		{ID: "5", Name: "Taylor Lee", Email: "taylor@example.com", Phone: "(555) 567-8901", Address: "202 Maple Dr, District, State", Type: domcustomer.TypeWholesale, TotalSpent: decimal.RequireFromString("4750.80"), LastPurchase: day("2025-04-08")},
	}
}

// The register applies the sum of enabled rules: 8% out of the box.
func seedTaxRules() []*domsettings.TaxRule {
	return []*domsettings.TaxRule{
		{ID: "1", Name: "Sales Tax", Rate: decimal.RequireFromString("8"), AppliesTo: "all", Enabled: true},
		{ID: "2", Name: "City Tax", Rate: decimal.RequireFromString("1.5"), AppliesTo: "all", Enabled: false},
		{ID: "3", Name: "Luxury Tax", Rate: decimal.RequireFromString("10"), AppliesTo: "luxury", Enabled: false},
	}
}
