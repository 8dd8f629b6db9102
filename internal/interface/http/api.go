package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "example.com/flowpos/internal/domain/cart"
	domcatalog "example.com/flowpos/internal/domain/catalog"
	domcustomer "example.com/flowpos/internal/domain/customer"
	domsale "example.com/flowpos/internal/domain/sale"
	domsettings "example.com/flowpos/internal/domain/settings"
	domuser "example.com/flowpos/internal/domain/user"
	authuc "example.com/flowpos/internal/usecase/auth"
	cataloguc "example.com/flowpos/internal/usecase/catalog"
	customeruc "example.com/flowpos/internal/usecase/customer"
	inventoryuc "example.com/flowpos/internal/usecase/inventory"
	posuc "example.com/flowpos/internal/usecase/pos"
	reportsuc "example.com/flowpos/internal/usecase/reports"
	settingsuc "example.com/flowpos/internal/usecase/settings"
	useruc "example.com/flowpos/internal/usecase/user"
)

type API struct {
	authSvc      *authuc.Service
	userSvc      *useruc.Service
	catalogSvc   *cataloguc.Service
	customerSvc  *customeruc.Service
	inventorySvc *inventoryuc.Service
	posSvc       *posuc.Service
	reportsSvc   *reportsuc.Service
	settingsSvc  *settingsuc.Service
	validator    *validator.Validate
	tokenSvc     authuc.TokenService
}

type Dependencies struct {
	AuthService      *authuc.Service
	UserService      *useruc.Service
	CatalogService   *cataloguc.Service
	CustomerService  *customeruc.Service
	InventoryService *inventoryuc.Service
	POSService       *posuc.Service
	ReportsService   *reportsuc.Service
	SettingsService  *settingsuc.Service
	TokenService     authuc.TokenService
}

func NewAPI(deps Dependencies) *API {
	validate := validator.New()
	return &API{
		authSvc:      deps.AuthService,
		userSvc:      deps.UserService,
		catalogSvc:   deps.CatalogService,
		customerSvc:  deps.CustomerService,
		inventorySvc: deps.InventoryService,
		posSvc:       deps.POSService,
		reportsSvc:   deps.ReportsService,
		settingsSvc:  deps.SettingsService,
		tokenSvc:     deps.TokenService,
		validator:    validate,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", a.handleLogin)
		r.Get("/products", a.handleListProducts)
		r.Get("/products/{id}", a.handleGetProduct)

		// Register operations: any signed-in staff member.
		r.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Route("/registers/{registerID}", func(reg chi.Router) {
				reg.Get("/cart", a.handleGetCart)
				reg.Delete("/cart", a.handleCancelSale)
				reg.Post("/cart/items", a.handleAddCartItem)
				reg.Put("/cart/items/{itemID}", a.handleSetCartQuantity)
				reg.Delete("/cart/items/{itemID}", a.handleRemoveCartItem)
				reg.Post("/checkout", a.handleCheckout)
			})
		})

		r.Group(func(ar chi.Router) {
			ar.Use(a.authMiddleware)
			ar.Use(a.requireRoles(domuser.RoleCodeAdmin, domuser.RoleCodeManager))

			ar.Route("/admin", func(admin chi.Router) {
				admin.Route("/products", func(rr chi.Router) {
					rr.Get("/", a.handleListProductsAdmin)
					rr.Post("/", a.handleCreateProduct)
					rr.Put("/{id}", a.handleUpdateProduct)
					rr.Delete("/{id}", a.handleDeleteProduct)
				})

				admin.Route("/customers", func(rr chi.Router) {
					rr.Get("/", a.handleListCustomers)
					rr.Post("/", a.handleCreateCustomer)
					rr.Get("/{id}", a.handleGetCustomer)
					rr.Put("/{id}", a.handleUpdateCustomer)
					rr.Delete("/{id}", a.handleDeleteCustomer)
				})

				admin.Route("/inventory", func(rr chi.Router) {
					rr.Get("/", a.handleListInventory)
					rr.Post("/{id}/adjust", a.handleAdjustStock)
				})

				admin.Route("/reports", func(rr chi.Router) {
					rr.Get("/sales", a.handleListSales)
					rr.Get("/sales/{id}", a.handleGetSale)
					rr.Get("/daily", a.handleDailySales)
					rr.Get("/top-products", a.handleTopProducts)
					rr.Get("/by-category", a.handleSalesByCategory)
				})

				admin.Route("/settings", func(rr chi.Router) {
					rr.Get("/taxes", a.handleListTaxRules)
					rr.Post("/taxes", a.handleCreateTaxRule)
					rr.Put("/taxes/{id}", a.handleUpdateTaxRule)
					rr.Delete("/taxes/{id}", a.handleDeleteTaxRule)
					rr.Get("/profile", a.handleGetProfile)
					rr.Put("/profile", a.handleUpdateProfile)
					rr.Get("/receipt", a.handleGetReceiptConfig)
					rr.Put("/receipt", a.handleUpdateReceiptConfig)
				})

				admin.Route("/users", func(rr chi.Router) {
					rr.Get("/", a.handleListUsers)
					rr.Post("/", a.handleCreateUser)
					rr.Get("/{id}", a.handleGetUser)
					rr.Put("/{id}", a.handleUpdateUser)
					rr.Delete("/{id}", a.handleDeleteUser)
				})
			})
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func mapUser(u *domuser.User) map[string]any {
	return map[string]any{
		"id":        u.ID,
		"name":      u.Name,
		"username":  u.Username,
		"email":     u.Email,
		"role_code": u.RoleCode,
	}
}

func mapProduct(p *domcatalog.Product) map[string]any {
	return map[string]any{
		"id":        p.ID,
		"name":      p.Name,
		"sku":       p.SKU,
		"price":     p.Price.InexactFloat64(),
		"cost":      p.Cost.InexactFloat64(),
		"category":  p.Category,
		"stock":     p.Stock,
		"is_active": p.IsActive,
	}
}

func mapCustomer(c *domcustomer.Customer) map[string]any {
	return map[string]any{
		"id":            c.ID,
		"name":          c.Name,
		"email":         c.Email,
		"phone":         c.Phone,
		"address":       c.Address,
		"type":          c.Type,
		"total_spent":   c.TotalSpent.InexactFloat64(),
		"last_purchase": c.LastPurchase.Format("2006-01-02"),
	}
}

func mapCartLine(l domcart.Line) map[string]any {
	return map[string]any{
		"item_id":    l.ItemID,
		"name":       l.Name,
		"unit_price": l.UnitPrice.InexactFloat64(),
		"quantity":   l.Quantity,
	}
}

func mapCartView(v *posuc.CartView) map[string]any {
	lines := make([]map[string]any, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, mapCartLine(l))
	}
	return map[string]any{
		"register_id": v.RegisterID,
		"lines":       lines,
		"tax_rate":    v.TaxRate.InexactFloat64(),
		"subtotal":    v.Subtotal.InexactFloat64(),
		"tax":         v.Tax.InexactFloat64(),
		"total":       v.Total.InexactFloat64(),
	}
}

func mapSale(s *domsale.Sale) map[string]any {
	lines := make([]map[string]any, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, map[string]any{
			"product_id": l.ProductID,
			"name":       l.Name,
			"unit_price": l.UnitPrice.InexactFloat64(),
			"quantity":   l.Quantity,
		})
	}
	return map[string]any{
		"id":             s.ID,
		"register_id":    s.RegisterID,
		"customer_id":    s.CustomerID,
		"cashier_id":     s.CashierID,
		"lines":          lines,
		"subtotal":       s.Subtotal.InexactFloat64(),
		"tax":            s.Tax.InexactFloat64(),
		"total":          s.Total.InexactFloat64(),
		"tax_rate":       s.TaxRate.InexactFloat64(),
		"payment_method": s.Payment,
		"created_at":     s.CreatedAt,
	}
}

func mapTaxRule(t *domsettings.TaxRule) map[string]any {
	return map[string]any{
		"id":                 t.ID,
		"name":               t.Name,
		"rate":               t.Rate.InexactFloat64(),
		"applies_to":         t.AppliesTo,
		"included_in_prices": t.IncludedInPrices,
		"enabled":            t.Enabled,
	}
}

func mapInventoryItem(item *inventoryuc.Item) map[string]any {
	out := mapProduct(&item.Product)
	out["margin"] = item.Margin.InexactFloat64()
	out["status"] = item.Status
	return out
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domcatalog.ErrProductNotFound),
		errors.Is(err, domcustomer.ErrCustomerNotFound),
		errors.Is(err, domsale.ErrSaleNotFound),
		errors.Is(err, domsettings.ErrTaxRuleNotFound),
		errors.Is(err, domuser.ErrUserNotFound),
		errors.Is(err, domcart.ErrLineNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domcatalog.ErrSKUAlreadyUsed),
		errors.Is(err, domcustomer.ErrEmailAlreadyUsed),
		errors.Is(err, domuser.ErrUsernameAlreadyUsed):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domuser.ErrUnauthorized),
		errors.Is(err, domuser.ErrInvalidCredential):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domcart.ErrStockExceeded),
		errors.Is(err, domcatalog.ErrOutOfStock),
		errors.Is(err, domsale.ErrEmptySale),
		errors.Is(err, domsale.ErrInvalidPayment),
		errors.Is(err, domsale.ErrCheckoutFailed),
		errors.Is(err, domsettings.ErrInvalidTaxRate),
		errors.Is(err, domsettings.ErrInvalidTaxName),
		errors.Is(err, domcustomer.ErrInvalidType),
		errors.Is(err, domuser.ErrInvalidRoleCode):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
