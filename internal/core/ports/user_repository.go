package ports

import (
	"context"

	"github.com/mmemodas/storefront/internal/core/domain"
)

type UserRepository interface {
	// Insert assigns a fresh ID. Returns domain.ErrUserExists on a taken username.
	Insert(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
