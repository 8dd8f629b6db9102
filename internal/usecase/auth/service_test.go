package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domuser "example.com/flowpos/internal/domain/user"
	"example.com/flowpos/internal/infra/persistence/memory"
)

type mockPasswordComparer struct {
	valid map[string]string
}

func (m *mockPasswordComparer) Compare(hash string, password string) error {
	if m.valid[hash] == password {
		return nil
	}
	return errors.New("mismatch")
}

type mockTokenService struct {
	token string
	err   error
}

func (m *mockTokenService) GenerateToken(u *domuser.User) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func (m *mockTokenService) ParseToken(token string) (*Claims, error) {
	return nil, errors.New("not implemented")
}

func newTestService(t *testing.T) (*Service, *memory.UserRepository) {
	t.Helper()
	repo := memory.NewUserRepository()
	_, err := repo.Create(context.Background(), &domuser.User{
		Name:         "Admin User",
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: "hash-admin",
		RoleCode:     domuser.RoleCodeAdmin,
	})
	require.NoError(t, err)

	svc := NewService(
		repo,
		&mockPasswordComparer{valid: map[string]string{"hash-admin": "password"}},
		&mockTokenService{token: "signed-token"},
	)
	return svc, repo
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "password"})

	require.NoError(t, err)
	require.Equal(t, "signed-token", res.Token)
	require.Equal(t, "admin", res.User.Username)
	require.Equal(t, domuser.RoleCodeAdmin, res.User.RoleCode)
}

func TestLogin_UsernameIsCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Login(context.Background(), LoginInput{Username: "  Admin ", Password: "password"})

	require.NoError(t, err)
	require.Equal(t, "admin", res.User.Username)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), LoginInput{Username: "", Password: "password"})
	require.ErrorIs(t, err, domuser.ErrInvalidCredential)

	_, err = svc.Login(context.Background(), LoginInput{Username: "admin", Password: ""})
	require.ErrorIs(t, err, domuser.ErrInvalidCredential)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "password"})

	require.ErrorIs(t, err, domuser.ErrUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "wrong"})

	require.ErrorIs(t, err, domuser.ErrUnauthorized)
}
