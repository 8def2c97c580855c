// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation using sync.Map
// - cache/gocache: In-memory cache built on patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: Persistent file-based cache implementation
// - http/standard: Standard library HTTP client with optional throttling
// - logger/logrus: Structured logger backed by sirupsen/logrus
// - logger/standard: Simple structured logger implementation
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCache("fdc-cache.db")
//
// # HTTP Client
//
// The HTTP client performs single-shot requests; status classification and
// failure policy live in the core. Client-side throttling is optional:
//
//	client := standard.NewStandardHTTPClient(30*time.Second,
//	    standard.WithRateLimit(rate.Limit(1), 3))
//	resp, err := client.Get(ctx, "https://api.nal.usda.gov/fdc/v1/food/173944")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The loggers support structured logging with fields:
//
//	logger := logrus.NewLogrusLogger()
//	logger.Info("Fetching food record", map[string]interface{}{
//	    "fdc_id": 173944,
//	})
package infrastructure
