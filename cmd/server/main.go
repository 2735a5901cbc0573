// @title           Storefront API
// @version         1.0
// @description     Menswear catalog, barbershop booking and gallery backend.
// @BasePath        /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/mmemodas/storefront/internal/api"
	"github.com/mmemodas/storefront/internal/core/service"
	"github.com/mmemodas/storefront/internal/infrastructure/db"
	"github.com/mmemodas/storefront/internal/infrastructure/db/memory"
	"github.com/mmemodas/storefront/internal/infrastructure/db/redis"
	"github.com/mmemodas/storefront/internal/infrastructure/http/handlers"
	"github.com/mmemodas/storefront/internal/infrastructure/scheduler"
	"github.com/mmemodas/storefront/internal/pkg/config"
	"github.com/mmemodas/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Storage ---
	store, err := db.Open(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("store close failed")
		}
	}()

	probes := []handlers.Check{{Name: cfg.Store.Backend, Ping: store.Ping}}

	// --- Slot locks ---
	var locker service.SlotLocker = memory.NewSlotLocker()
	if cfg.Redis.Addr != "" {
		client, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		locker = client.SlotLocker()
		probes = append(probes, handlers.Check{Name: "redis", Ping: client.Ping})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("slot locks backed by redis")
	}

	// --- Services ---
	appointments := service.NewAppointmentService(store.Appointments(), locker, log)
	products := service.NewProductService(store.Products(), log)
	gallery := service.NewGalleryService(store.Gallery(), log)
	checkout := service.NewCheckoutService(store.Products(), cfg.WhatsAppNumber, log)

	if cfg.Booking.SweepSchedule != "" {
		sweeper := scheduler.NewSweeper(appointments, log)
		if err := sweeper.Start(cfg.Booking.SweepSchedule); err != nil {
			return err
		}
		defer sweeper.Stop()
	}

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Appointments:     appointments,
		Products:         products,
		Gallery:          gallery,
		Checkout:         checkout,
		Probes:           probes,
		Logger:           log,
		Registry:         reg,
		BookingRateLimit: rate.Limit(cfg.Booking.RateLimit),
		BookingBurst:     cfg.Booking.RateBurst,
		CORSOrigins:      cfg.CORSOrigins,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("store", cfg.Store.Backend).Msg("http server listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
