package ports

import (
	"context"

	"github.com/mmemodas/storefront/internal/core/domain"
)

type CreateGalleryImageInput struct {
	Title string
	Image string
}

type GalleryService interface {
	List(ctx context.Context) ([]*domain.GalleryImage, error)
	Get(ctx context.Context, id string) (*domain.GalleryImage, error)
	Create(ctx context.Context, in CreateGalleryImageInput) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}
