// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: in-process ephemeral tier on patrickmn/go-cache
// - cache/sqlite: file-backed durable tier on mattn/go-sqlite3
// - cache/redis: shared durable tier on redis/go-redis
// - http/retryable: HTTP client with retries on hashicorp/go-retryablehttp
// - logger/structured: logrus logger with optional rotating file output
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 0)
//	value, err := cache.Get(ctx, "key")
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCacheWithLogger("newsfeed-cache.db", logger)
//	defer cache.Close()
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:   "localhost:6379",
//	    KeyPrefix: "newsfeed:",
//	})
//
// # HTTP Client
//
//	client := retryable.NewClient(retryable.DefaultConfig(), logger)
//	resp, err := client.Get(ctx, "https://news.example.com/news.json")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.NewLogger(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Index loaded", map[string]interface{}{
//	    "items": 42,
//	})
package infrastructure
