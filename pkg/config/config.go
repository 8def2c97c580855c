// ABOUTME: Configuration management for client wiring with environment variable support
// ABOUTME: Defines configuration structures for credentials, cache backend and transport

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all wiring configuration
type Config struct {
	// APIKey is the FoodData Central API key
	APIKey string

	// Cache contains cache backend configuration
	Cache CacheConfig

	// RequestTimeoutSeconds is the HTTP client timeout
	RequestTimeoutSeconds int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/gocache/redis/sqlite)
	Type string

	// TTLSeconds is the memoization TTL; 0 keeps results indefinitely
	TTLSeconds int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the cache database file path
	Path string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		APIKey: os.Getenv("FDC_API_KEY"),
		Cache: CacheConfig{
			Type:       getEnvOrDefault("CACHE_TYPE", "memory"),
			TTLSeconds: getEnvAsIntOrDefault("CACHE_TTL", 0),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "fdc-cache.db"),
			},
		},
		RequestTimeoutSeconds: getEnvAsIntOrDefault("REQUEST_TIMEOUT", 30),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("API key cannot be empty (set FDC_API_KEY)")
	}

	if c.RequestTimeoutSeconds < 1 {
		return errors.New("request timeout must be at least 1 second")
	}

	if c.Cache.TTLSeconds < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	switch c.Cache.Type {
	case "memory", "gocache", "redis", "sqlite":
	default:
		return errors.New("cache type must be one of memory, gocache, redis, sqlite")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty")
	}

	return nil
}
