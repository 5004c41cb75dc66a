package config

import (
	"errors"
	"os"
)

type Config struct {
	// Storage selects the key-value backend: "file" or "postgres".
	Storage string
	DataDir string

	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string

	JWTSecret string
	Port      string
	Env       string
	LogLevel  string
}

func NewConfigFromEnv() (*Config, error) {
	cfg := &Config{
		Storage:   getenv("STORAGE", "file"),
		DataDir:   getenv("DATA_DIR", "./data"),
		DBHost:    getenv("DB_HOST", "localhost"),
		DBPort:    getenv("DB_PORT", "5432"),
		DBUser:    getenv("DB_USER", "postgres"),
		DBPass:    getenv("DB_PASSWORD", "postgres"),
		DBName:    getenv("DB_NAME", "marketplacedb"),
		DBSSLMode: getenv("DB_SSLMODE", "disable"),
		JWTSecret: getenv("JWT_SECRET", ""),
		Port:      getenv("PORT", "3000"),
		Env:       getenv("ENV", "development"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.Storage != "file" && cfg.Storage != "postgres" {
		return nil, errors.New("STORAGE must be file or postgres")
	}

	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
