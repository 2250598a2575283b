package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/legaldeck/backend/internal/config"
	"github.com/legaldeck/backend/internal/handler"
	"github.com/legaldeck/backend/internal/logging"
	"github.com/legaldeck/backend/internal/repository"
	"github.com/legaldeck/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	store, err := openStore(cfg)
	if err != nil {
		logging.Fatal("failed to open store", "driver", cfg.StoreDriver, "error", err)
	}

	startup := service.DefaultStartupOptions
	startup.Seed = cfg.SeedBlog
	if err := service.Startup(context.Background(), store, store.Articles(), startup); err != nil {
		// The API still serves; health reports the store as unhealthy until it recovers.
		slog.Error("startup check failed", "error", err)
	}

	svc := handler.Services{
		Contacts:     service.NewContactService(store.Contacts()),
		Appointments: service.NewAppointmentService(store.Appointments()),
		Blog:         service.NewBlogService(store.Articles()),
	}
	limiter := handler.NewRateLimiter(cfg.RateLimitPerMinute)
	h := handler.New(store, cfg.CORSOrigins)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.NewRouter(h, svc, limiter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "driver", cfg.StoreDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	limiter.Stop()
	if err := store.Close(ctx); err != nil {
		slog.Error("store close error", "error", err)
	}
	slog.Info("server stopped")
}

func openStore(cfg config.Config) (repository.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return repository.OpenPostgres(context.Background(), cfg.DatabaseURL)
	default:
		return repository.OpenMongo(cfg.MongoURL, cfg.DBName, cfg.MongoServerSelectionTimeout)
	}
}
