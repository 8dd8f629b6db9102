package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	domcatalog "example.com/flowpos/internal/domain/catalog"
	domcustomer "example.com/flowpos/internal/domain/customer"
	domsale "example.com/flowpos/internal/domain/sale"
	domsettings "example.com/flowpos/internal/domain/settings"
	domuser "example.com/flowpos/internal/domain/user"
	"example.com/flowpos/internal/infra/mail"
	"example.com/flowpos/internal/infra/persistence/memory"
	mysqlrepo "example.com/flowpos/internal/infra/persistence/mysql"
	"example.com/flowpos/internal/infra/security"
	httpapi "example.com/flowpos/internal/interface/http"
	authuc "example.com/flowpos/internal/usecase/auth"
	cataloguc "example.com/flowpos/internal/usecase/catalog"
	checkoutuc "example.com/flowpos/internal/usecase/checkout"
	customeruc "example.com/flowpos/internal/usecase/customer"
	inventoryuc "example.com/flowpos/internal/usecase/inventory"
	posuc "example.com/flowpos/internal/usecase/pos"
	reportsuc "example.com/flowpos/internal/usecase/reports"
	settingsuc "example.com/flowpos/internal/usecase/settings"
	useruc "example.com/flowpos/internal/usecase/user"
)

func main() {
	port := getenv("APP_PORT", "8080")
	jwtSecret := getenv("JWT_SECRET", "flowpos-dev-secret")
	mysqlDSN := os.Getenv("MYSQL_DSN")
	smtpAddr := os.Getenv("SMTP_ADDR")
	smtpFrom := getenv("SMTP_FROM", "receipts@flowpos.local")

	hasher := security.NewBcryptHasher(0)
	tokenSvc := security.NewJWTService(jwtSecret, 12*time.Hour)

	var (
		catalogRepo  domcatalog.Repository
		customerRepo domcustomer.Repository
		saleRepo     domsale.Repository
		settingsRepo domsettings.Repository
		userRepo     domuser.Repository
	)

	if mysqlDSN != "" {
		db, err := sql.Open("mysql", mysqlDSN)
		if err != nil {
			log.Fatalf("mysql open: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err != nil {
			log.Fatalf("mysql ping: %v", err)
		}

		catalogRepo = mysqlrepo.NewCatalogRepository(db)
		customerRepo = mysqlrepo.NewCustomerRepository(db)
		saleRepo = mysqlrepo.NewSaleRepository(db)
		settingsRepo = mysqlrepo.NewSettingsRepository(db)
		userRepo = mysqlrepo.NewUserRepository(db)
		log.Println("using mysql store")
	} else {
		stores := memory.NewStores()
		if err := stores.Seed(context.Background(), hasher); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
		catalogRepo = stores.Catalog
		customerRepo = stores.Customers
		saleRepo = stores.Sales
		settingsRepo = stores.Settings
		userRepo = stores.Users
		log.Println("using in-memory demo store (set MYSQL_DSN for persistence)")
	}

	var receipts checkoutuc.ReceiptSender
	if smtpAddr != "" {
		receipts = mail.NewReceiptMailer(smtpAddr, smtpFrom, settingsRepo)
	}

	settingsSvc := settingsuc.NewService(settingsRepo)
	checkoutSvc := checkoutuc.NewService(saleRepo, catalogRepo, customerRepo, settingsRepo, receipts)
	posSvc := posuc.NewService(catalogRepo, customerRepo, settingsSvc, checkoutSvc)

	api := httpapi.NewAPI(httpapi.Dependencies{
		AuthService:      authuc.NewService(userRepo, hasher, tokenSvc),
		UserService:      useruc.NewService(userRepo, hasher),
		CatalogService:   cataloguc.NewService(catalogRepo),
		CustomerService:  customeruc.NewService(customerRepo),
		InventoryService: inventoryuc.NewService(catalogRepo),
		POSService:       posSvc,
		ReportsService:   reportsuc.NewService(saleRepo, catalogRepo),
		SettingsService:  settingsSvc,
		TokenService:     tokenSvc,
	})

	log.Printf("listening on :%s ...", port)
	if err := http.ListenAndServe(":"+port, api.Router()); err != nil {
		log.Fatal(err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
