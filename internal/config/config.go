package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/abhisek/curiolab/internal/llm"
	"github.com/abhisek/curiolab/internal/store"
)

// Config holds the runtime settings for the curiolab server and CLI.
type Config struct {
	// Addr is the listen address for the HTTP API.
	Addr string

	// DBPath is the SQLite database file path.
	DBPath string

	// LogMode selects the zap preset: "development" or "production".
	LogMode string

	// AllowedOrigins are the browser origins permitted by CORS.
	AllowedOrigins []string

	// LLM is the provider configuration for content generation.
	LLM llm.Config
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:    getEnv("CURIOLAB_ADDR", ":8000"),
		DBPath:  os.Getenv("CURIOLAB_DB"),
		LogMode: getEnv("CURIOLAB_LOG_MODE", "production"),
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:3001",
			"http://localhost:3002",
		},
	}

	if cfg.DBPath == "" {
		path, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolving database path: %w", err)
		}
		cfg.DBPath = path
	}

	if cfg.LogMode != "development" && cfg.LogMode != "production" {
		return nil, fmt.Errorf("CURIOLAB_LOG_MODE must be development or production, got %q", cfg.LogMode)
	}

	cfg.LLM = llm.ConfigFromEnv()

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvAsInt reads an integer environment variable with a fallback.
func GetEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
