// Package server assembles the HTTP service and owns its lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/routes"
	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/limiter"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/reqid"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// Start boots the service and blocks until SIGINT/SIGTERM, then shuts down
// gracefully with a 10s drain window.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Open(config.DatabaseDriver(), config.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	r := Build(db)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			"addr", srv.Addr,
			"driver", config.DatabaseDriver(),
			"env", config.AppEnv(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// Build assembles the router with the full middleware chain. Split out from
// Start so tests can mount the whole surface on an httptest server.
func Build(db *gorm.DB) *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(rateLimitStore(), config.RateLimitPerMinute(), time.Minute),
	)

	routes.RegisterAPI(r, db)
	return r
}

func rateLimitStore() limiter.Store {
	addr := config.RedisAddr()
	if addr == "" {
		return limiter.NewMemory()
	}

	store, err := limiter.NewRedis(addr, config.RedisPassword())
	if err != nil {
		logger.Warn("redis unreachable, falling back to in-memory rate limiting",
			"addr", addr, "error", err)
		return limiter.NewMemory()
	}

	logger.Info("rate limiting backed by redis", "addr", addr)
	return store
}
