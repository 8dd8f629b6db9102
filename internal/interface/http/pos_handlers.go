package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domsale "example.com/flowpos/internal/domain/sale"
	posuc "example.com/flowpos/internal/usecase/pos"
)

type addCartItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

type setCartQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
	CustomerID    string `json:"customer_id"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	view, err := a.posSvc.GetCart(r.Context(), chi.URLParam(r, "registerID"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCartView(view))
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	view, err := a.posSvc.AddItem(r.Context(), chi.URLParam(r, "registerID"), req.ItemID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapCartView(view))
}

func (a *API) handleSetCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req setCartQuantityRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	view, err := a.posSvc.SetQuantity(r.Context(), chi.URLParam(r, "registerID"), chi.URLParam(r, "itemID"), req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCartView(view))
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	view, err := a.posSvc.RemoveItem(r.Context(), chi.URLParam(r, "registerID"), chi.URLParam(r, "itemID"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCartView(view))
}

func (a *API) handleCancelSale(w http.ResponseWriter, r *http.Request) {
	a.posSvc.Cancel(r.Context(), chi.URLParam(r, "registerID"))
	writeJSON(w, http.StatusOK, map[string]string{"status": "canceled"})
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	var req checkoutRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.posSvc.Checkout(r.Context(), posuc.CheckoutInput{
		RegisterID: chi.URLParam(r, "registerID"),
		CustomerID: req.CustomerID,
		CashierID:  user.UserID,
		Payment:    domsale.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapSale(created))
}
