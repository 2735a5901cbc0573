package ports

import "context"

// CheckoutItemInput is one cart entry.
type CheckoutItemInput struct {
	ProductID string
	Quantity  int
}

// CheckoutLine is a priced cart entry.
type CheckoutLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

// CheckoutResult is the priced order plus the chat link that hands it off.
type CheckoutResult struct {
	Items   []CheckoutLine `json:"items"`
	Total   float64        `json:"total"`
	Message string         `json:"message"`
	Link    string         `json:"link"`
}

// CheckoutService prices a cart and builds the messaging hand-off. It has no
// side effects: nothing is stored and nothing is sent.
type CheckoutService interface {
	Checkout(ctx context.Context, items []CheckoutItemInput) (*CheckoutResult, error)
}
