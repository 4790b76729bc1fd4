// ABOUTME: Configuration loader for the build advisor service
// ABOUTME: Loads settings from environment variables and an optional .env file

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// MaxVariantsLimit caps how many build variants a request may ask for
const MaxVariantsLimit = 5

type Config struct {
	// Server
	Port               string
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)

	// Catalog
	CatalogPath string // empty = embedded default catalog

	// Builds
	BuildCacheTTL                  int // seconds a finished build stays retrievable
	MaxVariants                    int // default and ceiling for variant requests
	DefaultPrioritizeCompatibility bool

	// Rate Limiting
	RateLimitEnabled bool    // Enable rate limiting (default: true)
	RateLimitRPS     float64 // sustained requests per second per client
	RateLimitBurst   int     // bucket size per client
}

// Load reads configuration. A .env file in the working directory is applied
// first; variables already set in the environment take precedence.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		CatalogPath: os.Getenv("CATALOG_PATH"),

		BuildCacheTTL:                  getEnvInt("BUILD_CACHE_TTL", 3600),
		MaxVariants:                    getEnvInt("MAX_VARIANTS", 3),
		DefaultPrioritizeCompatibility: getEnvBool("DEFAULT_PRIORITIZE_COMPATIBILITY", true),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 10),
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", cfg.Port)
	}
	if cfg.BuildCacheTTL < 1 {
		return nil, fmt.Errorf("BUILD_CACHE_TTL must be positive, got %d", cfg.BuildCacheTTL)
	}
	if cfg.MaxVariants < 1 || cfg.MaxVariants > MaxVariantsLimit {
		return nil, fmt.Errorf("MAX_VARIANTS must be between 1 and %d, got %d", MaxVariantsLimit, cfg.MaxVariants)
	}

	// Validate rate limit values
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitRPS > 10000 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be between 0 and 10000, got %g", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst < 1 || cfg.RateLimitBurst > 10000 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be between 1 and 10000, got %d", cfg.RateLimitBurst)
	}

	return cfg, nil
}

// loadDotEnv applies path if it exists. godotenv.Load never overrides
// variables that are already set.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		slog.Debug("Loaded environment file", "path", path)
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("reading %s: %w", path, err)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
