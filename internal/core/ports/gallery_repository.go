package ports

import (
	"context"

	"github.com/mmemodas/storefront/internal/core/domain"
)

// GalleryRepository persists gallery images. Removal is physical.
type GalleryRepository interface {
	Insert(ctx context.Context, img *domain.GalleryImage) error
	Get(ctx context.Context, id string) (*domain.GalleryImage, error)
	// List returns all images, newest first.
	List(ctx context.Context) ([]*domain.GalleryImage, error)
	// Delete returns domain.ErrGalleryImageNotFound for an unknown id.
	Delete(ctx context.Context, id string) error
}
