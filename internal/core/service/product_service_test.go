package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
	"github.com/mmemodas/storefront/internal/infrastructure/db/memory"
)

type faultyProductRepo struct {
	*memory.ProductRepository
	deactivateErr error
}

func (r *faultyProductRepo) Deactivate(ctx context.Context, id string) error {
	if r.deactivateErr != nil {
		return r.deactivateErr
	}
	return r.ProductRepository.Deactivate(ctx, id)
}

func newProductFixture() (*ProductService, *faultyProductRepo) {
	repo := &faultyProductRepo{ProductRepository: memory.NewProductRepository()}
	return NewProductService(repo, zerolog.Nop()), repo
}

func blazer() ports.CreateProductInput {
	return ports.CreateProductInput{Name: "Blazer", Price: 389.9, Image: "https://img/blazer.jpg", Category: "blazers"}
}

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestProductService_Create(t *testing.T) {
	svc, _ := newProductFixture()

	p, err := svc.Create(context.Background(), blazer())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID == "" || !p.Active {
		t.Errorf("expected id and active=true, got %+v", p)
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	svc, _ := newProductFixture()

	cases := map[string]func(*ports.CreateProductInput){
		"no name":        func(in *ports.CreateProductInput) { in.Name = "" },
		"no image":       func(in *ports.CreateProductInput) { in.Image = "  " },
		"no category":    func(in *ports.CreateProductInput) { in.Category = "" },
		"negative price": func(in *ports.CreateProductInput) { in.Price = -1 },
		"nan price":      func(in *ports.CreateProductInput) { in.Price = math.NaN() },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := blazer()
			mutate(&in)
			if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	in := blazer()
	in.Price = 0
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Errorf("zero price should be accepted: %v", err)
	}
}

func TestProductService_Update(t *testing.T) {
	svc, _ := newProductFixture()
	ctx := context.Background()
	p, _ := svc.Create(ctx, blazer())

	got, err := svc.Update(ctx, p.ID, domain.ProductPatch{Price: floatPtr(299.9), Name: strPtr(" Blazer Slim ")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got.Price != 299.9 || got.Name != "Blazer Slim" || got.Category != "blazers" {
		t.Errorf("unexpected product after update: %+v", got)
	}

	same, err := svc.Update(ctx, p.ID, domain.ProductPatch{})
	if err != nil || same.Price != 299.9 {
		t.Errorf("empty patch should return current product, got %+v, %v", same, err)
	}

	if _, err := svc.Update(ctx, p.ID, domain.ProductPatch{Price: floatPtr(-5)}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for negative price, got %v", err)
	}
	if _, err := svc.Update(ctx, p.ID, domain.ProductPatch{Category: strPtr("")}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for blank category, got %v", err)
	}
	if _, err := svc.Update(ctx, "missing", domain.ProductPatch{Name: strPtr("x")}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete_IsLogical(t *testing.T) {
	svc, repo := newProductFixture()
	ctx := context.Background()
	p, _ := svc.Create(ctx, blazer())
	keep, _ := svc.Create(ctx, blazer())

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	list, _ := svc.List(ctx)
	if len(list) != 1 || list[0].ID != keep.ID {
		t.Fatalf("deleted product must vanish from listing, got %d items", len(list))
	}

	stored, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("deleted product should still resolve by id: %v", err)
	}
	if stored.Active {
		t.Error("expected active=false after delete")
	}

	if err := svc.Delete(ctx, "missing"); err != nil {
		t.Errorf("deleting unknown id should be a no-op, got %v", err)
	}

	boom := errors.New("db down")
	repo.deactivateErr = boom
	if err := svc.Delete(ctx, keep.ID); !errors.Is(err, boom) {
		t.Errorf("expected wrapped repo error, got %v", err)
	}
}
