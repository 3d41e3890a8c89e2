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
	"go.uber.org/multierr"

	"github.com/hadayashop/storefront-backend/api/routes"
	"github.com/hadayashop/storefront-backend/internal/analytics"
	"github.com/hadayashop/storefront-backend/internal/blog"
	"github.com/hadayashop/storefront-backend/internal/bookings"
	"github.com/hadayashop/storefront-backend/internal/cart"
	"github.com/hadayashop/storefront-backend/internal/catalog"
	"github.com/hadayashop/storefront-backend/internal/contact"
	"github.com/hadayashop/storefront-backend/internal/newsletter"
	"github.com/hadayashop/storefront-backend/internal/preferences"
	"github.com/hadayashop/storefront-backend/pkg/config"
	"github.com/hadayashop/storefront-backend/pkg/db"
	"github.com/hadayashop/storefront-backend/pkg/env"
	"github.com/hadayashop/storefront-backend/pkg/logger"
	"github.com/hadayashop/storefront-backend/pkg/metrics"
	"github.com/hadayashop/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(context.Background(), cfg, logg); err != nil {
		logg.Error(context.Background(), "storefront stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		return multierr.Append(err, dbClient.Close())
	}

	closeAll := func() error {
		return multierr.Combine(dbClient.Close(), redisClient.Close())
	}

	catalogRepo := catalog.NewRepository(dbClient.DB())
	blogRepo := blog.NewRepository(dbClient.DB())
	if cfg.DB.AutoMigrate {
		if err := multierr.Combine(catalogRepo.Migrate(ctx), blogRepo.Migrate(ctx)); err != nil {
			return multierr.Append(err, closeAll())
		}
	}
	if cfg.DB.AutoSeed {
		if err := multierr.Combine(catalogRepo.SeedIfEmpty(ctx), blogRepo.SeedIfEmpty(ctx)); err != nil {
			return multierr.Append(err, closeAll())
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	tracker := analytics.New(logg, metrics.NewEventMetrics(registry))

	catalogSvc, err := catalog.NewService(ctx, catalogRepo, cfg.Catalog.PageSize)
	if err != nil {
		return multierr.Append(err, closeAll())
	}
	blogSvc, err := blog.NewService(ctx, blogRepo, cfg.Blog.PageSize)
	if err != nil {
		return multierr.Append(err, closeAll())
	}
	cartSvc, err := cart.NewService(cart.NewRepository(redisClient, cfg.Cart.TTL, logg), catalogSvc, tracker)
	if err != nil {
		return multierr.Append(err, closeAll())
	}
	bookingSvc, err := bookings.NewService(
		bookings.NewSimulatedSubmitter(cfg.Booking.SubmitLatency, logg),
		tracker,
		cfg.Booking.SubmitTimeout,
	)
	if err != nil {
		return multierr.Append(err, closeAll())
	}
	contactSvc, err := contact.NewService(
		contact.NewSimulatedDeliverer(cfg.Booking.SubmitLatency, logg),
		tracker,
		cfg.Booking.SubmitTimeout,
	)
	if err != nil {
		return multierr.Append(err, closeAll())
	}
	newsletterSvc, err := newsletter.NewService(tracker)
	if err != nil {
		return multierr.Append(err, closeAll())
	}
	preferenceSvc, err := preferences.NewService(redisClient, cfg.Theme.TTL, tracker)
	if err != nil {
		return multierr.Append(err, closeAll())
	}

	handler := routes.NewRouter(cfg, logg, dbClient, redisClient, registry, routes.Services{
		Catalog:     catalogSvc,
		Cart:        cartSvc,
		Blog:        blogSvc,
		Bookings:    bookingSvc,
		Contact:     contactSvc,
		Newsletter:  newsletterSvc,
		Preferences: preferenceSvc,
		Tracker:     tracker,
	})

	addr := ":" + env.Get("PORT", cfg.App.Port)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	runCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(runCtx, "starting storefront server")

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return multierr.Append(err, closeAll())
	case sig := <-stop:
		logg.Info(logg.WithField(runCtx, "signal", sig.String()), "shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	return multierr.Combine(server.Shutdown(shutdownCtx), <-errCh, closeAll())
}
