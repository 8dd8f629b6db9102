package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	domsale "example.com/flowpos/internal/domain/sale"
)

// reportRange parses from/to query params (YYYY-MM-DD); default is the last
// seven days, matching the dashboard's initial view.
func reportRange(r *http.Request) (time.Time, time.Time) {
	now := time.Now()
	from := now.AddDate(0, 0, -7)
	to := now

	if v := r.URL.Query().Get("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return from, to
}

func (a *API) handleListSales(w http.ResponseWriter, r *http.Request) {
	from, to := reportRange(r)
	sales, err := a.reportsSvc.ListSales(r.Context(), domsale.ListFilter{
		RegisterID: r.URL.Query().Get("register_id"),
		From:       from,
		To:         to,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(sales))
	for _, s := range sales {
		resp = append(resp, mapSale(s))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetSale(w http.ResponseWriter, r *http.Request) {
	s, err := a.reportsSvc.GetSale(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSale(s))
}

func (a *API) handleDailySales(w http.ResponseWriter, r *http.Request) {
	from, to := reportRange(r)
	totals, err := a.reportsSvc.DailySales(r.Context(), from, to)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(totals))
	for _, t := range totals {
		resp = append(resp, map[string]any{
			"date":  t.Date,
			"sales": t.Sales,
			"total": t.Total.InexactFloat64(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleTopProducts(w http.ResponseWriter, r *http.Request) {
	from, to := reportRange(r)
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	products, err := a.reportsSvc.TopProducts(r.Context(), from, to, limit)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, map[string]any{
			"product_id": p.ProductID,
			"name":       p.Name,
			"units":      p.Units,
			"revenue":    p.Revenue.InexactFloat64(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleSalesByCategory(w http.ResponseWriter, r *http.Request) {
	from, to := reportRange(r)
	categories, err := a.reportsSvc.SalesByCategory(r.Context(), from, to)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, map[string]any{
			"category": c.Category,
			"total":    c.Total.InexactFloat64(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}
