package config

import (
	"fmt"
	"os"
)

// Config holds everything the process reads from the environment. It is
// built once in main and passed by reference; nothing re-reads env vars
// after startup.
type Config struct {
	AnthropicAPIKey string
	AnthropicModel  string
	DatabaseDSN     string
	Port            string
	CSVExportPath   string
}

func Load() (*Config, error) {
	cfg := &Config{
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getenv("ANTHROPIC_MODEL", "claude-3-5-sonnet-latest"),
		DatabaseDSN:     getenv("DATABASE_DSN", "host=localhost user=postgres password=password dbname=headhunt port=5432 sslmode=disable"),
		Port:            getenv("PORT", "8080"),
		CSVExportPath:   getenv("CSV_EXPORT_PATH", "job_applications.csv"),
	}

	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is empty, did you load the .env file?")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
