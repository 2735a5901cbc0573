package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

type GalleryService struct {
	repo   ports.GalleryRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewGalleryService(repo ports.GalleryRepository, logger zerolog.Logger) *GalleryService {
	return &GalleryService{repo: repo, logger: logger, now: time.Now}
}

func (s *GalleryService) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return list, nil
}

func (s *GalleryService) Get(ctx context.Context, id string) (*domain.GalleryImage, error) {
	img, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get gallery image: %w", err)
	}
	return img, nil
}

func (s *GalleryService) Create(ctx context.Context, in ports.CreateGalleryImageInput) (*domain.GalleryImage, error) {
	img := &domain.GalleryImage{
		Title:     strings.TrimSpace(in.Title),
		Image:     strings.TrimSpace(in.Image),
		CreatedAt: s.now().UTC(),
	}
	switch {
	case img.Title == "":
		return nil, domain.InvalidInput("title is required")
	case img.Image == "":
		return nil, domain.InvalidInput("image is required")
	}

	if err := s.repo.Insert(ctx, img); err != nil {
		s.logger.Error().Err(err).Msg("failed to insert gallery image")
		return nil, fmt.Errorf("create gallery image: %w", err)
	}

	s.logger.Info().Str("image_id", img.ID).Msg("gallery image created")
	return img, nil
}

// Delete removes the image for good. Deleting an unknown id is a no-op.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrGalleryImageNotFound) {
		s.logger.Debug().Str("image_id", id).Msg("delete of unknown gallery image ignored")
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}

	s.logger.Info().
		Str("image_id", id).
		Str("policy", string(domain.GalleryDeletePolicy)).
		Msg("gallery image deleted")
	return nil
}
