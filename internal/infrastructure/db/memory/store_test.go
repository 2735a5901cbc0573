package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

func TestNewSeeded_Catalog(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	products, err := s.Products().List(ctx, ports.ProductFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("expected 6 seeded products, got %d", len(products))
	}
	for i, p := range products {
		if want := string(rune('1' + i)); p.ID != want {
			t.Errorf("position %d: expected product %s, got %s", i, want, p.ID)
		}
	}

	gallery, _ := s.Gallery().List(ctx)
	if len(gallery) != 6 || gallery[0].ID != "1" || gallery[5].ID != "6" {
		t.Fatalf("expected gallery 1..6 newest first, got %d items", len(gallery))
	}

	appts, _ := s.Appointments().List(ctx, ports.AppointmentFilter{})
	if len(appts) != 0 {
		t.Errorf("appointments start empty, got %d", len(appts))
	}
}

func TestNew_IsEmpty(t *testing.T) {
	s := New()
	list, _ := s.Products().List(context.Background(), ports.ProductFilter{})
	if len(list) != 0 {
		t.Fatalf("expected empty store, got %d products", len(list))
	}
}

func TestSeed_NewRecordsSortAfterSeed(t *testing.T) {
	s := New()
	s.Seed(time.Now().UTC())
	ctx := context.Background()

	p := &domain.Product{Name: "Gravata", Price: 59.9, Image: "x", Category: "acessorios", Active: true}
	if err := s.Products().Insert(ctx, p); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	list, _ := s.Products().List(ctx, ports.ProductFilter{})
	if list[len(list)-1].ID != p.ID {
		t.Errorf("new product should be listed last")
	}

	img := &domain.GalleryImage{Title: "Novo", Image: "x"}
	_ = s.Gallery().Insert(ctx, img)
	gallery, _ := s.Gallery().List(ctx)
	if gallery[0].ID != img.ID {
		t.Errorf("new image should be listed first")
	}
}

func TestAppointmentRepository_ReturnsCopies(t *testing.T) {
	r := NewAppointmentRepository()
	ctx := context.Background()

	a := &domain.Appointment{Name: "Ana", Date: "2025-03-10", Time: "09:00", Status: domain.StatusConfirmed}
	if err := r.Insert(ctx, a); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	a.Name = "changed"

	got, _ := r.Get(ctx, a.ID)
	if got.Name != "Ana" {
		t.Fatalf("store shares memory with caller")
	}
	got.Status = domain.StatusCancelled
	again, _ := r.Get(ctx, a.ID)
	if again.Status != domain.StatusConfirmed {
		t.Fatalf("store shares memory with reader")
	}
}

func TestAppointmentRepository_Filters(t *testing.T) {
	r := NewAppointmentRepository()
	ctx := context.Background()
	for _, a := range []*domain.Appointment{
		{Date: "2025-03-09", Time: "09:00", Status: domain.StatusConfirmed},
		{Date: "2025-03-10", Time: "09:00", Status: domain.StatusCancelled},
		{Date: "2025-03-10", Time: "09:30", Status: domain.StatusConfirmed},
	} {
		_ = r.Insert(ctx, a)
	}

	cases := []struct {
		name   string
		filter ports.AppointmentFilter
		want   int
	}{
		{"all", ports.AppointmentFilter{}, 3},
		{"by date", ports.AppointmentFilter{Date: "2025-03-10"}, 2},
		{"holding", ports.AppointmentFilter{Date: "2025-03-10", ExcludeCancelled: true}, 1},
		{"by status", ports.AppointmentFilter{Status: domain.StatusConfirmed}, 2},
		{"before", ports.AppointmentFilter{Before: "2025-03-10"}, 1},
	}
	for _, tc := range cases {
		list, _ := r.List(ctx, tc.filter)
		if len(list) != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, len(list))
		}
	}

	if _, err := r.UpdateStatus(ctx, "missing", domain.StatusCompleted); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestProductRepository_UpdateAndDeactivate(t *testing.T) {
	r := NewProductRepository()
	ctx := context.Background()
	p := &domain.Product{Name: "Camisa", Price: 10, Image: "x", Category: "camisas", Active: true}
	_ = r.Insert(ctx, p)

	price := 12.5
	got, err := r.Update(ctx, p.ID, domain.ProductPatch{Price: &price})
	if err != nil || got.Price != 12.5 || got.Name != "Camisa" {
		t.Fatalf("Update: got %+v, %v", got, err)
	}

	if err := r.Deactivate(ctx, p.ID); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}
	active, _ := r.List(ctx, ports.ProductFilter{ActiveOnly: true})
	all, _ := r.List(ctx, ports.ProductFilter{})
	if len(active) != 0 || len(all) != 1 {
		t.Fatalf("expected product hidden from active listing only, got %d/%d", len(active), len(all))
	}

	if err := r.Deactivate(ctx, "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestUserRepository_UniqueUsername(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	if err := r.Insert(ctx, &domain.User{Username: "admin", PasswordHash: "h"}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if err := r.Insert(ctx, &domain.User{Username: "admin", PasswordHash: "h2"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := r.GetByUsername(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSlotLocker(t *testing.T) {
	l := NewSlotLocker()
	ctx := context.Background()

	tok, ok, err := l.Acquire(ctx, "2025-03-10", "09:00")
	if err != nil || !ok || tok == "" {
		t.Fatalf("first Acquire: tok=%q ok=%v err=%v", tok, ok, err)
	}
	if _, ok, _ := l.Acquire(ctx, "2025-03-10", "09:00"); ok {
		t.Fatal("second Acquire on held slot should fail")
	}
	if _, ok, _ := l.Acquire(ctx, "2025-03-10", "09:30"); !ok {
		t.Fatal("other slot should be free")
	}

	_ = l.Release(ctx, "2025-03-10", "09:00", "stale-token")
	if _, ok, _ := l.Acquire(ctx, "2025-03-10", "09:00"); ok {
		t.Fatal("release with foreign token must not free the slot")
	}

	_ = l.Release(ctx, "2025-03-10", "09:00", tok)
	if _, ok, _ := l.Acquire(ctx, "2025-03-10", "09:00"); !ok {
		t.Fatal("slot should be free after release")
	}
}
