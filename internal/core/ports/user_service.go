package ports

import (
	"context"

	"github.com/mmemodas/storefront/internal/core/domain"
)

type CreateUserInput struct {
	Username string
	Password string
}

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
