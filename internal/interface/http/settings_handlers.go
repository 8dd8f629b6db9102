package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	domsettings "example.com/flowpos/internal/domain/settings"
)

type taxRuleRequest struct {
	Name             string  `json:"name" validate:"required"`
	Rate             float64 `json:"rate" validate:"gte=0,lte=100"`
	AppliesTo        string  `json:"applies_to" validate:"required"`
	IncludedInPrices bool    `json:"included_in_prices"`
	Enabled          bool    `json:"enabled"`
}

type profileRequest struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Currency string `json:"currency" validate:"required,len=3"`
}

type receiptConfigRequest struct {
	HeaderText   string `json:"header_text"`
	FooterText   string `json:"footer_text"`
	PrintReceipt bool   `json:"print_receipt"`
	EmailReceipt bool   `json:"email_receipt"`
}

func (a *API) handleListTaxRules(w http.ResponseWriter, r *http.Request) {
	rules, err := a.settingsSvc.ListTaxRules(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(rules))
	for _, t := range rules {
		resp = append(resp, mapTaxRule(t))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleCreateTaxRule(w http.ResponseWriter, r *http.Request) {
	var req taxRuleRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.settingsSvc.CreateTaxRule(r.Context(), &domsettings.TaxRule{
		Name:             req.Name,
		Rate:             decimal.NewFromFloat(req.Rate),
		AppliesTo:        req.AppliesTo,
		IncludedInPrices: req.IncludedInPrices,
		Enabled:          req.Enabled,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapTaxRule(created))
}

func (a *API) handleUpdateTaxRule(w http.ResponseWriter, r *http.Request) {
	var req taxRuleRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := a.settingsSvc.UpdateTaxRule(r.Context(), &domsettings.TaxRule{
		ID:               chi.URLParam(r, "id"),
		Name:             req.Name,
		Rate:             decimal.NewFromFloat(req.Rate),
		AppliesTo:        req.AppliesTo,
		IncludedInPrices: req.IncludedInPrices,
		Enabled:          req.Enabled,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapTaxRule(updated))
}

func (a *API) handleDeleteTaxRule(w http.ResponseWriter, r *http.Request) {
	if err := a.settingsSvc.DeleteTaxRule(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (a *API) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := a.settingsSvc.GetProfile(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":     p.Name,
		"address":  p.Address,
		"phone":    p.Phone,
		"currency": p.Currency,
	})
}

func (a *API) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.settingsSvc.UpdateProfile(r.Context(), &domsettings.StoreProfile{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Currency: req.Currency,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":     p.Name,
		"address":  p.Address,
		"phone":    p.Phone,
		"currency": p.Currency,
	})
}

func (a *API) handleGetReceiptConfig(w http.ResponseWriter, r *http.Request) {
	c, err := a.settingsSvc.GetReceiptConfig(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapReceiptConfig(c))
}

func (a *API) handleUpdateReceiptConfig(w http.ResponseWriter, r *http.Request) {
	var req receiptConfigRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	c, err := a.settingsSvc.UpdateReceiptConfig(r.Context(), &domsettings.ReceiptConfig{
		HeaderText:   req.HeaderText,
		FooterText:   req.FooterText,
		PrintReceipt: req.PrintReceipt,
		EmailReceipt: req.EmailReceipt,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapReceiptConfig(c))
}

func mapReceiptConfig(c *domsettings.ReceiptConfig) map[string]any {
	return map[string]any{
		"header_text":   c.HeaderText,
		"footer_text":   c.FooterText,
		"print_receipt": c.PrintReceipt,
		"email_receipt": c.EmailReceipt,
	}
}
