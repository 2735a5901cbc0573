package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmemodas/storefront/internal/core/domain"
)

// CatalogHandler serves the fixed barbershop service menu.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Services handles GET /api/services.
//
// @Summary      Barbershop service menu
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.BarberService
// @Router       /api/services [get]
func (h *CatalogHandler) Services(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.BarberServices())
}
