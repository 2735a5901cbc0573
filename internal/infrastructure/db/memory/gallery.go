package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

type GalleryRepository struct {
	mu    sync.RWMutex
	items map[string]domain.GalleryImage
}

var _ ports.GalleryRepository = (*GalleryRepository)(nil)

func NewGalleryRepository() *GalleryRepository {
	return &GalleryRepository{items: make(map[string]domain.GalleryImage)}
}

func (r *GalleryRepository) Insert(_ context.Context, img *domain.GalleryImage) error {
	img.ID = newID()
	img.CreatedAt = stamp(img.CreatedAt)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[img.ID] = *img
	return nil
}

func (r *GalleryRepository) Get(_ context.Context, id string) (*domain.GalleryImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	img, ok := r.items[id]
	if !ok {
		return nil, domain.ErrGalleryImageNotFound
	}
	return &img, nil
}

func (r *GalleryRepository) List(_ context.Context) ([]*domain.GalleryImage, error) {
	r.mu.RLock()
	out := make([]*domain.GalleryImage, 0, len(r.items))
	for _, img := range r.items {
		clone := img
		out = append(out, &clone)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(x, y *domain.GalleryImage) int {
		if c := y.CreatedAt.Compare(x.CreatedAt); c != 0 {
			return c
		}
		return compareStrings(x.ID, y.ID)
	})
	return out, nil
}

func (r *GalleryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrGalleryImageNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *GalleryRepository) put(img domain.GalleryImage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[img.ID] = img
}
