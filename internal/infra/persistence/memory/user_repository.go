package memory

import (
	"context"
	"sort"
	"sync"

	domuser "example.com/flowpos/internal/domain/user"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]*domuser.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]*domuser.User), nextID: 1}
}

func (r *UserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, domuser.ErrUsernameAlreadyUsed
		}
	}

	cloned := *u
	cloned.ID = r.nextID
	r.nextID++
	r.users[cloned.ID] = &cloned
	out := cloned
	return &out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domuser.ErrUserNotFound
	}
	cloned := *u
	return &cloned, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			cloned := *u
			return &cloned, nil
		}
	}
	return nil, domuser.ErrUserNotFound
}

func (r *UserRepository) List(ctx context.Context, filter domuser.ListFilter) ([]*domuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domuser.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.RoleCode != nil && u.RoleCode != *filter.RoleCode {
			continue
		}
		cloned := *u
		out = append(out, &cloned)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return nil, domuser.ErrUserNotFound
	}
	cloned := *u
	r.users[u.ID] = &cloned
	out := cloned
	return &out, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domuser.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}
