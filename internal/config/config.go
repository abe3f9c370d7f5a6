package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env into the process environment if present.
// Variables that are already set win over the file.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}

// Server is the environment-driven configuration of cmd/server.
type Server struct {
	Port        string
	DBPath      string // SQLite file, used when DatabaseURL is empty
	DatabaseURL string // PostgreSQL URL
	SeedPath    string
	LogLevel    string
	Workers     int
}

func LoadServer() (Server, error) {
	workers, err := GetInt("ACO_WORKERS", 4)
	if err != nil {
		return Server{}, err
	}

	return Server{
		Port:        Get("PORT", "8080"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: Get("DATABASE_URL", ""),
		SeedPath:    Get("SEED_PATH", "data/seeds/locations.json"),
		LogLevel:    Get("LOG_LEVEL", "info"),
		Workers:     workers,
	}, nil
}
