package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const readinessTimeout = 3 * time.Second

// HealthHandler handles GET /health, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Check is one dependency probed by the readiness endpoint.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// ReadinessHandler handles GET /health/ready. It reports 503 as soon as one
// dependency fails its ping. Ping errors are logged, never returned.
type ReadinessHandler struct {
	checks []Check
	log    zerolog.Logger
}

func NewReadinessHandler(log zerolog.Logger, checks ...Check) *ReadinessHandler {
	return &ReadinessHandler{checks: checks, log: log}
}

type dependencyStatus struct {
	Status string `json:"status"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	deps := make(map[string]dependencyStatus, len(h.checks))
	healthy := true

	for _, chk := range h.checks {
		if err := chk.Ping(ctx); err != nil {
			h.log.Warn().Err(err).Str("dependency", chk.Name).Msg("readiness check failed")
			deps[chk.Name] = dependencyStatus{Status: "unhealthy"}
			healthy = false
			continue
		}
		deps[chk.Name] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
