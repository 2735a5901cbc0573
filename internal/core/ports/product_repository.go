package ports

import (
	"context"

	"github.com/mmemodas/storefront/internal/core/domain"
)

type ProductFilter struct {
	ActiveOnly bool
}

// ProductRepository persists products. Removal is logical (Deactivate).
type ProductRepository interface {
	// Insert assigns a fresh ID (and CreatedAt when zero) and stores p.
	Insert(ctx context.Context, p *domain.Product) error
	Get(ctx context.Context, id string) (*domain.Product, error)
	// List returns matching products, oldest first.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Deactivate(ctx context.Context, id string) error
}
