package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmemodas/storefront/internal/api/metrics"
	"github.com/mmemodas/storefront/internal/core/ports"
)

type CheckoutHandler struct {
	service ports.CheckoutService
}

func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// Checkout handles POST /api/checkout. Nothing is stored; the response
// carries the priced order and the chat link the client opens.
//
// @Summary      Price a cart and build the WhatsApp order link
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      checkoutRequest  true  "Cart"
// @Success      200   {object}  ports.CheckoutResult
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items := make([]ports.CheckoutItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.CheckoutItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	res, err := h.service.Checkout(c.Request().Context(), items)
	if err != nil {
		return err
	}

	metrics.CheckoutsTotal.Inc()
	metrics.CheckoutOrderValue.Observe(res.Total)
	return c.JSON(http.StatusOK, res)
}
