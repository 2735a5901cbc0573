package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

const (
	whatsAppBaseURL = "https://wa.me/"
	orderGreeting   = "Olá! Gostaria de fazer o seguinte pedido:"

	// MaxLineQuantity caps the merged quantity of one product in a cart.
	MaxLineQuantity = 999
)

// CheckoutService prices a cart against the product store and renders the
// WhatsApp order message the storefront hands the customer off with.
type CheckoutService struct {
	products ports.ProductRepository
	phone    string
	logger   zerolog.Logger
}

func NewCheckoutService(products ports.ProductRepository, whatsAppNumber string, logger zerolog.Logger) *CheckoutService {
	return &CheckoutService{products: products, phone: whatsAppNumber, logger: logger}
}

// Checkout merges repeated products, prices each line in cents and returns
// the order summary with the chat link. Inactive or unknown products are
// rejected as invalid input.
func (s *CheckoutService) Checkout(ctx context.Context, items []ports.CheckoutItemInput) (*ports.CheckoutResult, error) {
	if len(items) == 0 {
		return nil, domain.InvalidInput("cart is empty")
	}

	order := make([]string, 0, len(items))
	qty := make(map[string]int, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" {
			return nil, domain.InvalidInput("productId is required")
		}
		if it.Quantity < 1 {
			return nil, domain.InvalidInput("quantity for product %s must be at least 1", id)
		}
		if it.Quantity > MaxLineQuantity {
			return nil, domain.InvalidInput("quantity for product %s must be at most %d", id, MaxLineQuantity)
		}
		if _, seen := qty[id]; !seen {
			order = append(order, id)
		}
		qty[id] += it.Quantity
		if qty[id] > MaxLineQuantity {
			return nil, domain.InvalidInput("quantity for product %s must be at most %d", id, MaxLineQuantity)
		}
	}

	lines := make([]ports.CheckoutLine, 0, len(order))
	msgLines := make([]string, 0, len(order))
	var totalCents int64
	for _, id := range order {
		p, err := s.products.Get(ctx, id)
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.InvalidInput("product %s is not available", id)
		}
		if err != nil {
			return nil, fmt.Errorf("checkout: %w", err)
		}
		if !p.Active {
			return nil, domain.InvalidInput("product %s is not available", id)
		}

		unit, ok := toCents(p.Price)
		if !ok || unit > math.MaxInt64/int64(qty[id]) {
			return nil, domain.InvalidInput("order total for product %s is out of range", id)
		}
		sub := unit * int64(qty[id])
		if totalCents > math.MaxInt64-sub {
			return nil, domain.InvalidInput("order total is out of range")
		}
		totalCents += sub

		lines = append(lines, ports.CheckoutLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  qty[id],
			UnitPrice: fromCents(unit),
			Subtotal:  fromCents(sub),
		})
		msgLines = append(msgLines, fmt.Sprintf("%dx %s - %s", qty[id], p.Name, formatBRL(sub)))
	}

	msg := fmt.Sprintf("%s\n\n%s\n\n*Total: %s*", orderGreeting, strings.Join(msgLines, "\n"), formatBRL(totalCents))

	s.logger.Info().Int("lines", len(lines)).Int64("total_cents", totalCents).Msg("checkout priced")

	return &ports.CheckoutResult{
		Items:   lines,
		Total:   fromCents(totalCents),
		Message: msg,
		Link:    whatsAppLink(s.phone, msg),
	}, nil
}

func whatsAppLink(phone, text string) string {
	return whatsAppBaseURL + phone + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// toCents reports false when v cannot be represented as int64 cents.
func toCents(v float64) (int64, bool) {
	c := math.Round(v * 100)
	if math.IsNaN(c) || c < 0 || c >= math.MaxInt64 {
		return 0, false
	}
	return int64(c), true
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}

// formatBRL renders cents as Brazilian reais, e.g. 107980 -> "R$ 1.079,80".
func formatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	units := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	for i, r := range units {
		if i > 0 && (len(units)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), cents%100)
}
