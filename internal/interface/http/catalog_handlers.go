package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	domcatalog "example.com/flowpos/internal/domain/catalog"
)

type createProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	SKU      string  `json:"sku" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Cost     float64 `json:"cost" validate:"gte=0"`
	Category string  `json:"category" validate:"required"`
	Stock    int64   `json:"stock" validate:"gte=0"`
	IsActive bool    `json:"is_active"`
}

type updateProductRequest struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price" validate:"gte=0"`
	Cost     float64 `json:"cost" validate:"gte=0"`
	Category string  `json:"category"`
	Stock    int64   `json:"stock" validate:"gte=0"`
	IsActive bool    `json:"is_active"`
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter := domcatalog.ListFilter{
		OnlyActive: true,
		Search:     r.URL.Query().Get("q"),
		Category:   r.URL.Query().Get("category"),
	}

	products, err := a.catalogSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.catalogSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleListProductsAdmin(w http.ResponseWriter, r *http.Request) {
	filter := domcatalog.ListFilter{
		Search:   r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	if status := r.URL.Query().Get("only_active"); status == "1" || status == "true" {
		filter.OnlyActive = true
	}

	products, err := a.catalogSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.catalogSvc.Create(r.Context(), &domcatalog.Product{
		Name:     req.Name,
		SKU:      req.SKU,
		Price:    decimal.NewFromFloat(req.Price).Round(2),
		Cost:     decimal.NewFromFloat(req.Cost).Round(2),
		Category: req.Category,
		Stock:    req.Stock,
		IsActive: req.IsActive,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapProduct(created))
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := a.catalogSvc.Update(r.Context(), &domcatalog.Product{
		ID:       chi.URLParam(r, "id"),
		Name:     req.Name,
		SKU:      req.SKU,
		Price:    decimal.NewFromFloat(req.Price).Round(2),
		Cost:     decimal.NewFromFloat(req.Cost).Round(2),
		Category: req.Category,
		Stock:    req.Stock,
		IsActive: req.IsActive,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(updated))
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := a.catalogSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
