package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mmemodas/storefront/internal/api/metrics"
	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

// ProductHandler handles HTTP requests for the clothing catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// @Summary      List active products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  errorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get handles GET /api/products/:id. Inactive products are returned too.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:     req.Name,
		Price:    *req.Price,
		Image:    req.Image,
		Category: req.Category,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, p)
}

// Update handles PATCH /api/products/:id. Only name, price, image and
// category may be sent; any other key is rejected.
//
// @Summary      Update product fields
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest, patchError(err)).SetInternal(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload: body must hold a single JSON object")
	}

	p, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.ProductPatch{
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func patchError(err error) string {
	msg := strings.TrimPrefix(err.Error(), "json: ")
	if strings.HasPrefix(msg, "unknown field") {
		return msg + " (allowed: name, price, image, category)"
	}
	return "invalid payload"
}

// Delete handles DELETE /api/products/:id. The product is deactivated, not
// removed; unknown ids also answer 204.
//
// @Summary      Deactivate a product
// @Tags         products
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      500  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
