package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Exercise data
	DataDir string // directory holding exercises/{level}/{topic}.json

	// Favourites persistence
	FavouritesDBPath string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:    getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout:  getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DataDir:          getenvDefault("DATA_DIR", "data"),
		FavouritesDBPath: getenvDefault("FAVOURITES_DB_PATH", "favourites.db"),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}
