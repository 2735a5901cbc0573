package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmemodas/storefront/internal/api/metrics"
	"github.com/mmemodas/storefront/internal/core/ports"
)

type GalleryHandler struct {
	service ports.GalleryService
}

func NewGalleryHandler(service ports.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// List handles GET /api/gallery.
//
// @Summary      List gallery images, newest first
// @Tags         gallery
// @Produce      json
// @Success      200  {array}   domain.GalleryImage
// @Failure      500  {object}  errorResponse
// @Router       /api/gallery [get]
func (h *GalleryHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get handles GET /api/gallery/:id.
//
// @Summary      Get a gallery image
// @Tags         gallery
// @Produce      json
// @Param        id   path      string  true  "Image id"
// @Success      200  {object}  domain.GalleryImage
// @Failure      404  {object}  errorResponse
// @Router       /api/gallery/{id} [get]
func (h *GalleryHandler) Get(c echo.Context) error {
	img, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, img)
}

// Create handles POST /api/gallery.
//
// @Summary      Add a gallery image
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Param        body  body      createGalleryImageRequest  true  "Image"
// @Success      201   {object}  domain.GalleryImage
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/gallery [post]
func (h *GalleryHandler) Create(c echo.Context) error {
	var req createGalleryImageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	img, err := h.service.Create(c.Request().Context(), ports.CreateGalleryImageInput{
		Title: req.Title,
		Image: req.Image,
	})
	if err != nil {
		return err
	}

	metrics.GalleryImagesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, img)
}

// Delete handles DELETE /api/gallery/:id.
//
// @Summary      Remove a gallery image
// @Tags         gallery
// @Param        id  path  string  true  "Image id"
// @Success      204
// @Failure      500  {object}  errorResponse
// @Router       /api/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
