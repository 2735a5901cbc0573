package ports

import (
	"context"

	"github.com/mmemodas/storefront/internal/core/domain"
)

type CreateProductInput struct {
	Name     string
	Price    float64
	Image    string
	Category string
}

type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
