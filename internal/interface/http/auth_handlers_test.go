package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	domuser "example.com/flowpos/internal/domain/user"
)

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]any{"username": "admin", "password": "password"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	require.Equal(t, "admin", user["username"])
	require.Equal(t, "ADMIN", user["role_code"])

	// The issued token works against an authed route.
	token := body["token"].(string)
	rec = env.do(t, http.MethodGet, "/api/v1/registers/reg-1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]any{"username": "admin", "password": "not-the-password"})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	// Password shorter than the minimum never reaches the user store.
	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]any{"username": "admin", "password": "abc"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthMiddleware_RejectsGarbageToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/registers/reg-1/cart", "not-a-jwt", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutes_RequireManagerOrAdmin(t *testing.T) {
	env := newTestEnv(t)

	cashier := env.tokenFor(t, domuser.RoleCodeCashier)
	rec := env.do(t, http.MethodGet, "/api/v1/admin/products/", cashier, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	manager := env.tokenFor(t, domuser.RoleCodeManager)
	rec = env.do(t, http.MethodGet, "/api/v1/admin/products/", manager, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/products/", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
