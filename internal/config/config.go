package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port         string
	DBPath       string
	LogLevel     string
	OTLPEndpoint string
	JWTSecret    string
}

// NewConfig loads configuration from environment variables. A .env file in
// the working directory is read first when present.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8002"),
		DBPath:       getEnv("DB_PATH", "./users.db"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		OTLPEndpoint: getEnv("OTLP_ENDPOINT", "otel-collector:4317"),
		JWTSecret:    getEnv("JWT_SECRET", "secret"),
	}

	if cfg.DBPath == "" {
		return nil, fmt.Errorf("DB_PATH is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
