package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domcatalog "example.com/flowpos/internal/domain/catalog"
)

type adjustStockRequest struct {
	Delta int64 `json:"delta" validate:"required"`
}

func (a *API) handleListInventory(w http.ResponseWriter, r *http.Request) {
	filter := domcatalog.ListFilter{
		Search:   r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	items, err := a.inventorySvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(items))
	for _, item := range items {
		resp = append(resp, mapInventoryItem(item))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleAdjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	item, err := a.inventorySvc.AdjustStock(r.Context(), chi.URLParam(r, "id"), req.Delta)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapInventoryItem(item))
}
