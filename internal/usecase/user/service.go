package user

import (
	"context"
	"strings"

	dom "example.com/flowpos/internal/domain/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	repo   dom.Repository
	hasher PasswordHasher
}

func NewService(repo dom.Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

type CreateUserInput struct {
	Name     string
	Username string
	Email    string
	Password string
	RoleCode dom.RoleCode
}

type UpdateUserInput struct {
	ID       int64
	Name     *string
	Email    *string
	Password *string
	RoleCode *dom.RoleCode
}

func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*dom.User, error) {
	if !in.RoleCode.IsValid() {
		return nil, dom.ErrInvalidRoleCode
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &dom.User{
		Name:         in.Name,
		Username:     strings.TrimSpace(strings.ToLower(in.Username)),
		Email:        strings.TrimSpace(strings.ToLower(in.Email)),
		PasswordHash: hash,
		RoleCode:     in.RoleCode,
	}

	return s.repo.Create(ctx, u)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*dom.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, filter dom.ListFilter) ([]*dom.User, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) UpdateUser(ctx context.Context, in UpdateUserInput) (*dom.User, error) {
	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.RoleCode != nil {
		if !in.RoleCode.IsValid() {
			return nil, dom.ErrInvalidRoleCode
		}
		u.RoleCode = *in.RoleCode
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(strings.ToLower(*in.Email))
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	return s.repo.Update(ctx, u)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
