package auth

import (
	"context"
	"strings"

	domuser "example.com/flowpos/internal/domain/user"
)

type PasswordComparer interface {
	Compare(hash string, password string) error
}

type Claims struct {
	UserID   int64
	RoleCode domuser.RoleCode
	Username string
	Name     string
}

type TokenService interface {
	GenerateToken(u *domuser.User) (string, error)
	ParseToken(token string) (*Claims, error)
}

type Service struct {
	userRepo domuser.Repository
	checker  PasswordComparer
	tokens   TokenService
}

func NewService(
	userRepo domuser.Repository,
	checker PasswordComparer,
	tokens TokenService,
) *Service {
	return &Service{
		userRepo: userRepo,
		checker:  checker,
		tokens:   tokens,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token string
	User  *domuser.User
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(strings.ToLower(in.Username))
	if username == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, domuser.ErrUnauthorized
	}

	if err := s.checker.Compare(u.PasswordHash, in.Password); err != nil {
		return nil, domuser.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  u,
	}, nil
}
