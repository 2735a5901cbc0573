package http

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mmemodas/storefront/internal/infrastructure/http/handlers"
)

// RegisterProbes mounts the liveness and readiness endpoints on e.
func RegisterProbes(e *echo.Echo, log zerolog.Logger, checks ...handlers.Check) {
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(log, checks...).Readiness)
}
