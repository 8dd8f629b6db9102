package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domcustomer "example.com/flowpos/internal/domain/customer"
)

type createCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=6"`
	Address string `json:"address" validate:"required,min=5"`
	Type    string `json:"type" validate:"required"`
}

type updateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

func (a *API) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	filter := domcustomer.ListFilter{
		Search: r.URL.Query().Get("q"),
	}
	if t := r.URL.Query().Get("type"); t != "" {
		ct := domcustomer.Type(t)
		filter.Type = &ct
	}

	customers, err := a.customerSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, mapCustomer(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := a.customerSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCustomer(c))
}

func (a *API) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.customerSvc.Create(r.Context(), &domcustomer.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Type:    domcustomer.Type(req.Type),
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapCustomer(created))
}

func (a *API) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req updateCustomerRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := a.customerSvc.Update(r.Context(), &domcustomer.Customer{
		ID:      chi.URLParam(r, "id"),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Type:    domcustomer.Type(req.Type),
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCustomer(updated))
}

func (a *API) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := a.customerSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
