package main

import (
	"log/slog"
	"os"

	"github.com/verbdrill/backend/internal/bot"
	"github.com/verbdrill/backend/internal/infrastructure/config"
	"github.com/verbdrill/backend/internal/loader"
	"github.com/verbdrill/backend/internal/store"
	"github.com/verbdrill/backend/internal/validator"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		logger.Error("BOT_TOKEN environment variable is required")
		os.Exit(1)
	}

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

	favourites, err := store.NewFavouriteStore(cfg.FavouritesDBPath)
	if err != nil {
		logger.Error("failed to open favourites database", "error", err)
		os.Exit(1)
	}
	defer favourites.Close()

	b, err := bot.New(token, exerciseStore, favourites, logger)
	if err != nil {
		logger.Error("failed to initialize bot", "error", err)
		os.Exit(1)
	}

	logger.Info("bot initialized", "exercises", exerciseStore.Len())
	b.Start()
}
