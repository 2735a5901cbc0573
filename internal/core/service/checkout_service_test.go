package service

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
	"github.com/mmemodas/storefront/internal/infrastructure/db/memory"
)

func newCheckoutFixture() (*CheckoutService, *memory.Store) {
	store := memory.New()
	store.Seed(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	return NewCheckoutService(store.Products(), "5535987116814", zerolog.Nop()), store
}

func TestCheckoutService_Checkout(t *testing.T) {
	svc, _ := newCheckoutFixture()

	res, err := svc.Checkout(context.Background(), []ports.CheckoutItemInput{
		{ProductID: "1", Quantity: 1},
		{ProductID: "5", Quantity: 1},
		{ProductID: "1", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}

	if len(res.Items) != 2 {
		t.Fatalf("expected repeated product merged into 2 lines, got %d", len(res.Items))
	}
	if res.Items[0].ProductID != "1" || res.Items[0].Quantity != 2 || res.Items[0].Subtotal != 379.8 {
		t.Errorf("unexpected first line: %+v", res.Items[0])
	}
	if res.Total != 469.7 {
		t.Errorf("expected total 469.7, got %v", res.Total)
	}

	want := "Olá! Gostaria de fazer o seguinte pedido:\n\n" +
		"2x Camisa Social Premium - R$ 379,80\n" +
		"1x Camiseta Premium - R$ 89,90\n\n" +
		"*Total: R$ 469,70*"
	if res.Message != want {
		t.Errorf("message mismatch:\n got %q\nwant %q", res.Message, want)
	}

	prefix := "https://wa.me/5535987116814?text="
	if !strings.HasPrefix(res.Link, prefix) {
		t.Fatalf("unexpected link %q", res.Link)
	}
	if strings.Contains(res.Link, "+") {
		t.Errorf("spaces must be percent-encoded, got %q", res.Link)
	}
	text, err := url.QueryUnescape(strings.TrimPrefix(res.Link, prefix))
	if err != nil || text != want {
		t.Errorf("link does not round-trip to the message: %q, %v", text, err)
	}
}

func TestCheckoutService_RejectsBadCarts(t *testing.T) {
	svc, store := newCheckoutFixture()
	ctx := context.Background()
	_ = store.Products().Deactivate(ctx, "6")

	cases := map[string][]ports.CheckoutItemInput{
		"empty":        nil,
		"blank id":     {{ProductID: " ", Quantity: 1}},
		"zero qty":     {{ProductID: "1", Quantity: 0}},
		"unknown":      {{ProductID: "nope", Quantity: 1}},
		"inactive":     {{ProductID: "6", Quantity: 1}},
		"mixed errors": {{ProductID: "1", Quantity: 1}, {ProductID: "nope", Quantity: 2}},
		"qty over cap": {{ProductID: "2", Quantity: MaxLineQuantity + 1}},
		"huge qty":     {{ProductID: "2", Quantity: math.MaxInt64}, {ProductID: "2", Quantity: math.MaxInt64}},
		"merged cap":   {{ProductID: "2", Quantity: 600}, {ProductID: "2", Quantity: 600}},
	}
	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Checkout(ctx, items); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCheckoutService_QuantityAtCap(t *testing.T) {
	svc, _ := newCheckoutFixture()

	res, err := svc.Checkout(context.Background(), []ports.CheckoutItemInput{
		{ProductID: "2", Quantity: 500},
		{ProductID: "2", Quantity: MaxLineQuantity - 500},
	})
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}
	if res.Items[0].Quantity != MaxLineQuantity || res.Total <= 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestCheckoutService_RejectsUnrepresentablePrice(t *testing.T) {
	svc, store := newCheckoutFixture()
	ctx := context.Background()

	huge := 1e17
	if _, err := store.Products().Update(ctx, "1", domain.ProductPatch{Price: &huge}); err != nil {
		t.Fatalf("seed update failed: %v", err)
	}
	if _, err := svc.Checkout(ctx, []ports.CheckoutItemInput{{ProductID: "1", Quantity: 10}}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFormatBRL(t *testing.T) {
	cases := map[int64]string{
		0:        "R$ 0,00",
		8990:     "R$ 89,90",
		107980:   "R$ 1.079,80",
		12345678: "R$ 123.456,78",
		-500:     "-R$ 5,00",
	}
	for in, want := range cases {
		if got := formatBRL(in); got != want {
			t.Errorf("formatBRL(%d) = %q, want %q", in, got, want)
		}
	}
}
