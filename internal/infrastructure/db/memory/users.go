package memory

import (
	"context"
	"sync"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

type UserRepository struct {
	mu         sync.RWMutex
	items      map[string]domain.User
	byUsername map[string]string
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{
		items:      make(map[string]domain.User),
		byUsername: make(map[string]string),
	}
}

func (r *UserRepository) Insert(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[u.Username]; taken {
		return domain.ErrUserExists
	}
	u.ID = newID()
	r.items[u.ID] = *u
	r.byUsername[u.Username] = u.ID
	return nil
}

func (r *UserRepository) Get(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := r.items[id]
	return &u, nil
}
