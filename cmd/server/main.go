// Memoria - elder-care voice companion dialogue backend.
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

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/mfalcone/memoria/internal/alerts"
	"github.com/mfalcone/memoria/internal/api"
	"github.com/mfalcone/memoria/internal/config"
	"github.com/mfalcone/memoria/internal/dialogue"
	"github.com/mfalcone/memoria/internal/profile"
	"github.com/mfalcone/memoria/internal/store"
	"github.com/mfalcone/memoria/internal/texts"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "store", cfg.StoreBackend)

	// Initialize the durable attribute store.
	var attrStore store.AttributeStore
	switch cfg.StoreBackend {
	case config.StoreRedis:
		attrStore = store.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		attrStore, err = store.NewSQLite(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
	}
	defer func() {
		if closeErr := attrStore.Close(); closeErr != nil {
			slog.Error("Failed to close attribute store", "error", closeErr)
		}
	}()

	if err := attrStore.Ping(context.Background()); err != nil {
		slog.Error("Attribute store health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Attribute store connected")

	// Platform API clients.
	profileClient := profile.NewHTTPClient(cfg.ProfileAPIURL)
	reminderClient := alerts.NewHTTPClient(cfg.AlertsAPIURL)
	timerClient := alerts.NewTimerClient(cfg.AlertsAPIURL)

	// Dialogue core and HTTP handlers.
	ctrl := dialogue.New(attrStore, profileClient, reminderClient, timerClient, texts.Default())
	skillHandler := api.NewHandler(ctrl)
	healthHandler := api.NewHealthHandler(attrStore)

	// Setup router.
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	healthHandler.RegisterHealth(r)
	skillHandler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
