package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger, now: time.Now}
}

// List returns the active products only.
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	list, err := s.repo.List(ctx, ports.ProductFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Get resolves a product by id whether or not it is active.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	p := &domain.Product{
		Name:      strings.TrimSpace(in.Name),
		Price:     in.Price,
		Image:     strings.TrimSpace(in.Image),
		Category:  strings.TrimSpace(in.Category),
		Active:    true,
		CreatedAt: s.now().UTC(),
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to insert product")
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info().Str("product_id", p.ID).Str("category", p.Category).Msg("product created")
	return p, nil
}

// Update merges the allow-listed fields of patch into the product.
func (s *ProductService) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	patch = trimPatch(patch)
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return s.Get(ctx, id)
	}

	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return p, nil
}

// Delete deactivates the product. Deleting an unknown id is a no-op.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	err := s.repo.Deactivate(ctx, id)
	if errors.Is(err, domain.ErrProductNotFound) {
		s.logger.Debug().Str("product_id", id).Msg("delete of unknown product ignored")
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.logger.Info().
		Str("product_id", id).
		Str("policy", string(domain.ProductDeletePolicy)).
		Msg("product deleted")
	return nil
}

func validateProduct(p *domain.Product) error {
	switch {
	case p.Name == "":
		return domain.InvalidInput("name is required")
	case p.Image == "":
		return domain.InvalidInput("image is required")
	case p.Category == "":
		return domain.InvalidInput("category is required")
	}
	return validatePrice(p.Price)
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return domain.InvalidInput("price must be a finite number")
	}
	if price < 0 {
		return domain.InvalidInput("price must not be negative")
	}
	return nil
}

func trimPatch(p domain.ProductPatch) domain.ProductPatch {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	return domain.ProductPatch{
		Name:     trim(p.Name),
		Price:    p.Price,
		Image:    trim(p.Image),
		Category: trim(p.Category),
	}
}

func validatePatch(p domain.ProductPatch) error {
	switch {
	case p.Name != nil && *p.Name == "":
		return domain.InvalidInput("name must not be empty")
	case p.Image != nil && *p.Image == "":
		return domain.InvalidInput("image must not be empty")
	case p.Category != nil && *p.Category == "":
		return domain.InvalidInput("category must not be empty")
	}
	if p.Price != nil {
		return validatePrice(*p.Price)
	}
	return nil
}
