package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/verbdrill/backend/internal/api"
	"github.com/verbdrill/backend/internal/infrastructure/config"
	"github.com/verbdrill/backend/internal/loader"
	"github.com/verbdrill/backend/internal/session"
	"github.com/verbdrill/backend/internal/store"
	"github.com/verbdrill/backend/internal/validator"

	_ "github.com/verbdrill/backend/docs" // generated swagger docs
)

// @title           Verbdrill API
// @version         1.0
// @description     German grammar drill presenter — filter pre-authored exercises, practice them in a favourite-biased order, reveal example solutions. Nothing is graded.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Exercise data ───────────────────────────────────────────────
	records, err := loader.LoadAll(cfg.DataDir)
	if err != nil {
		logger.Error("failed to load exercises", "error", err, "data_dir", cfg.DataDir)
		os.Exit(1)
	}

	exerciseStore, err := store.New(records, validator.New())
	if err != nil {
		logger.Error("exercise data failed validation", "error", err)
		os.Exit(1)
	}
	logger.Info("exercise store ready", "exercises", exerciseStore.Len())

	// ── Dependencies ────────────────────────────────────────────────
	favourites, err := store.NewFavouriteStore(cfg.FavouritesDBPath)
	if err != nil {
		logger.Error("failed to open favourites database", "error", err)
		os.Exit(1)
	}
	defer favourites.Close()

	sessions := session.NewRegistry()
	handler := api.NewHandler(exerciseStore, favourites, sessions, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
