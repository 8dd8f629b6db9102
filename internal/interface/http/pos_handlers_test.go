package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	domuser "example.com/flowpos/internal/domain/user"
)

func TestCart_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/registers/reg-1/cart", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddCartItem(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/cart/items", token,
		map[string]any{"item_id": "1"})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "reg-1", body["register_id"])
	lines := body["lines"].([]any)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	require.Equal(t, "Bluetooth Headphones", line["name"])
	require.InDelta(t, 59.99, line["unit_price"], 0.001)
	require.InDelta(t, 59.99, body["subtotal"], 0.001)
	require.InDelta(t, 4.80, body["tax"], 0.001)
	require.InDelta(t, 64.79, body["total"], 0.001)
}

func TestAddCartItem_UnknownProduct(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/cart/items", token,
		map[string]any{"item_id": "999"})

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddCartItem_MissingItemID(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/cart/items", token,
		map[string]any{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetCartQuantity_ClampReturnsUnprocessable(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/cart/items", token,
		map[string]any{"item_id": "1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Seeded stock for product 1 is 15.
	rec = env.do(t, http.MethodPut, "/api/v1/registers/reg-1/cart/items/1", token,
		map[string]any{"quantity": 100})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Clamp was applied despite the error response.
	rec = env.do(t, http.MethodGet, "/api/v1/registers/reg-1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	line := decodeBody(t, rec)["lines"].([]any)[0].(map[string]any)
	require.EqualValues(t, 15, line["quantity"])
}

func TestSetCartQuantity_ZeroRemovesLine(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/cart/items", token,
		map[string]any{"item_id": "1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/registers/reg-1/cart/items/1", token,
		map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody(t, rec)["lines"])
}

func TestSetCartQuantity_UnknownLine(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	rec := env.do(t, http.MethodPut, "/api/v1/registers/reg-1/cart/items/2", token,
		map[string]any{"quantity": 3})

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveCartItem(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/cart/items", token,
		map[string]any{"item_id": "1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/registers/reg-1/cart/items/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Empty(t, body["lines"])
	require.InDelta(t, 0, body["total"], 0.001)

	// Removing it again is still a 200.
	rec = env.do(t, http.MethodDelete, "/api/v1/registers/reg-1/cart/items/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelSale(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/cart/items", token,
		map[string]any{"item_id": "1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/registers/reg-1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/registers/reg-1/cart", token, nil)
	require.Empty(t, decodeBody(t, rec)["lines"])
}

func TestCartsIsolatedPerRegister(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/cart/items", token,
		map[string]any{"item_id": "1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/registers/reg-2/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody(t, rec)["lines"])
}

func TestCheckout_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/checkout", token,
		map[string]any{"payment_method": "CASH"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCheckout_Success(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	for i := 0; i < 2; i++ {
		rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/cart/items", token,
			map[string]any{"item_id": "7"})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/checkout", token,
		map[string]any{"payment_method": "CASH", "customer_id": "1"})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.NotEmpty(t, body["id"])
	require.Equal(t, "reg-1", body["register_id"])
	require.EqualValues(t, 42, body["cashier_id"])
	// 2 * 2.49 = 4.98; 8% tax = 0.40; total 5.38.
	require.InDelta(t, 4.98, body["subtotal"], 0.001)
	require.InDelta(t, 0.40, body["tax"], 0.001)
	require.InDelta(t, 5.38, body["total"], 0.001)

	// Cart is cleared and stock decremented.
	rec = env.do(t, http.MethodGet, "/api/v1/registers/reg-1/cart", token, nil)
	require.Empty(t, decodeBody(t, rec)["lines"])

	rec = env.do(t, http.MethodGet, "/api/v1/products/7", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 52, decodeBody(t, rec)["stock"])
}

func TestCheckout_InvalidPayment(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, domuser.RoleCodeCashier)

	rec := env.do(t, http.MethodPost, "/api/v1/registers/reg-1/cart/items", token,
		map[string]any{"item_id": "1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/registers/reg-1/checkout", token,
		map[string]any{"payment_method": "CRYPTO"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Failure leaves the cart intact.
	rec = env.do(t, http.MethodGet, "/api/v1/registers/reg-1/cart", token, nil)
	require.Len(t, decodeBody(t, rec)["lines"], 1)
}
