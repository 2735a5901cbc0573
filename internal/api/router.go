package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/mmemodas/storefront/docs"
	"github.com/mmemodas/storefront/internal/api/handler"
	"github.com/mmemodas/storefront/internal/api/metrics"
	"github.com/mmemodas/storefront/internal/core/ports"
	infrahttp "github.com/mmemodas/storefront/internal/infrastructure/http"
	"github.com/mmemodas/storefront/internal/infrastructure/http/handlers"
)

const rateLimitExpiry = 3 * time.Minute

// Dependencies is everything NewRouter wires into the HTTP surface.
type Dependencies struct {
	Appointments ports.AppointmentService
	Products     ports.ProductService
	Gallery      ports.GalleryService
	Checkout     ports.CheckoutService

	// Probes are pinged by /health/ready.
	Probes []handlers.Check

	Logger zerolog.Logger
	// Registry receives HTTP and business metrics and backs /metrics.
	// Nil gets a fresh registry.
	Registry *prometheus.Registry

	// BookingRateLimit is requests per second per client IP on
	// POST /api/appointments. Zero or less disables the limiter.
	BookingRateLimit rate.Limit
	BookingBurst     int

	CORSOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if err := metrics.Register(reg); err != nil {
		deps.Logger.Error().Err(err).Msg("metrics registration failed")
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(deps.CORSOrigins),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "storefront",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational endpoints ---
	infrahttp.RegisterProbes(e, deps.Logger, deps.Probes...)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	apiGroup := e.Group("/api")

	appointments := handler.NewAppointmentHandler(deps.Appointments)
	apiGroup.POST("/appointments", appointments.Create, bookingLimiter(deps))
	apiGroup.GET("/appointments", appointments.List)
	apiGroup.GET("/appointments/available/:date", appointments.Availability)
	apiGroup.PATCH("/appointments/:id/status", appointments.UpdateStatus)

	apiGroup.GET("/services", handler.NewCatalogHandler().Services)

	products := handler.NewProductHandler(deps.Products)
	apiGroup.GET("/products", products.List)
	apiGroup.GET("/products/:id", products.Get)
	apiGroup.POST("/products", products.Create)
	apiGroup.PATCH("/products/:id", products.Update)
	apiGroup.DELETE("/products/:id", products.Delete)

	gallery := handler.NewGalleryHandler(deps.Gallery)
	apiGroup.GET("/gallery", gallery.List)
	apiGroup.GET("/gallery/:id", gallery.Get)
	apiGroup.POST("/gallery", gallery.Create)
	apiGroup.DELETE("/gallery/:id", gallery.Delete)

	apiGroup.POST("/checkout", handler.NewCheckoutHandler(deps.Checkout).Checkout)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

// bookingLimiter throttles bookings per client IP with a token bucket.
func bookingLimiter(deps Dependencies) echo.MiddlewareFunc {
	if deps.BookingRateLimit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	burst := deps.BookingBurst
	if burst <= 0 {
		burst = 1
	}
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      deps.BookingRateLimit,
			Burst:     burst,
			ExpiresIn: rateLimitExpiry,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "unable to identify client").SetInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many booking attempts, try again shortly")
		},
	})
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
