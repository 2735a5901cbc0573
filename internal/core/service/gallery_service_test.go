package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
	"github.com/mmemodas/storefront/internal/infrastructure/db/memory"
)

func TestGalleryService_CreateListDelete(t *testing.T) {
	svc := NewGalleryService(memory.NewGalleryRepository(), zerolog.Nop())
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	step := 0
	svc.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}
	ctx := context.Background()

	older, err := svc.Create(ctx, ports.CreateGalleryImageInput{Title: "Fade", Image: "https://img/fade.jpg"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	newer, _ := svc.Create(ctx, ports.CreateGalleryImageInput{Title: "Barba", Image: "https://img/barba.jpg"})

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 || list[0].ID != newer.ID || list[1].ID != older.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}

	if err := svc.Delete(ctx, older.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(ctx, older.ID); !errors.Is(err, domain.ErrGalleryImageNotFound) {
		t.Errorf("deleted image must be gone, got %v", err)
	}
	if err := svc.Delete(ctx, older.ID); err != nil {
		t.Errorf("second delete should be a no-op, got %v", err)
	}
}

func TestGalleryService_Create_Validation(t *testing.T) {
	svc := NewGalleryService(memory.NewGalleryRepository(), zerolog.Nop())

	for _, in := range []ports.CreateGalleryImageInput{
		{Title: "", Image: "https://img/x.jpg"},
		{Title: "Corte", Image: " "},
	} {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}
