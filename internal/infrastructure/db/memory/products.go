package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

type ProductRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Product
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository() *ProductRepository {
	return &ProductRepository{items: make(map[string]domain.Product)}
}

func (r *ProductRepository) Insert(_ context.Context, p *domain.Product) error {
	p.ID = newID()
	p.CreatedAt = stamp(p.CreatedAt)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = *p
	return nil
}

func (r *ProductRepository) Get(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepository) List(_ context.Context, f ports.ProductFilter) ([]*domain.Product, error) {
	r.mu.RLock()
	out := make([]*domain.Product, 0, len(r.items))
	for _, p := range r.items {
		if f.ActiveOnly && !p.Active {
			continue
		}
		clone := p
		out = append(out, &clone)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(x, y *domain.Product) int {
		if c := x.CreatedAt.Compare(y.CreatedAt); c != 0 {
			return c
		}
		return compareStrings(x.ID, y.ID)
	})
	return out, nil
}

func (r *ProductRepository) Update(_ context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p.Apply(patch)
	r.items[id] = p
	return &p, nil
}

func (r *ProductRepository) Deactivate(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Active = false
	r.items[id] = p
	return nil
}

// put stores p verbatim, keeping its ID. Used for seeding.
func (r *ProductRepository) put(p domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
}
