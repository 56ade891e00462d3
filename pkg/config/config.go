// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, content source, cache tiers and logging

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"newsfeed-api/pkg/utils/duration"
	"newsfeed-api/pkg/utils/parse"
)

// Durable tier backends
const (
	DurableSQLite = "sqlite"
	DurableRedis  = "redis"
	DurableMemory = "memory"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Content describes where the news index and bodies live
	Content ContentConfig

	// Cache contains cache tier configuration
	Cache CacheConfig

	// Log contains logger configuration
	Log LogConfig

	// RateLimit bounds per-client request rates
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// AllowedOrigins lists CORS origins; empty allows all
	AllowedOrigins []string
}

// ContentConfig holds content source configuration
type ContentConfig struct {
	// IndexURL is the JSON index resource
	IndexURL string

	// BaseURL is what relative body references resolve against
	BaseURL string

	// RewritePrefix re-roots absolute body references at BaseURL
	RewritePrefix string

	// SkipPrefixes marks body references that are never fetched
	SkipPrefixes []string

	MaxItems           int
	HydrateConcurrency int
	RequestTimeout     time.Duration
	RetryMax           int
}

// CacheConfig holds cache tier configuration
type CacheConfig struct {
	// DurableType selects the durable backend (sqlite/redis/memory)
	DurableType string

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	DurableTTL     time.Duration
	StaleThreshold time.Duration
	CheckInterval  time.Duration
	ActivityWindow time.Duration
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces every key
	KeyPrefix string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// RateLimitConfig holds per-client rate limit configuration
type RateLimitConfig struct {
	// Requests allowed per Window
	Requests int
	Window   time.Duration
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			AllowedOrigins: parse.CSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
		Content: ContentConfig{
			IndexURL:           os.Getenv("NEWS_INDEX_URL"),
			BaseURL:            os.Getenv("NEWS_CONTENT_BASE_URL"),
			RewritePrefix:      os.Getenv("NEWS_REWRITE_PREFIX"),
			SkipPrefixes:       parse.CSV(os.Getenv("NEWS_SKIP_PREFIXES")),
			MaxItems:           getEnvAsIntOrDefault("NEWS_MAX_ITEMS", 1000),
			HydrateConcurrency: getEnvAsIntOrDefault("NEWS_HYDRATE_CONCURRENCY", 4),
			RequestTimeout:     getEnvAsDurationOrDefault("NEWS_REQUEST_TIMEOUT", 10*time.Second),
			RetryMax:           getEnvAsIntOrDefault("NEWS_RETRY_MAX", 2),
		},
		Cache: CacheConfig{
			DurableType: getEnvOrDefault("CACHE_DURABLE_TYPE", DurableSQLite),
			SQLitePath:  getEnvOrDefault("CACHE_SQLITE_PATH", "newsfeed-cache.db"),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "newsfeed:"),
			},
			DurableTTL:     getEnvAsDurationOrDefault("CACHE_DURABLE_TTL", 24*time.Hour),
			StaleThreshold: getEnvAsDurationOrDefault("CACHE_STALE_THRESHOLD", 30*time.Minute),
			CheckInterval:  getEnvAsDurationOrDefault("CACHE_CHECK_INTERVAL", 10*time.Minute),
			ActivityWindow: getEnvAsDurationOrDefault("CACHE_ACTIVITY_WINDOW", 5*time.Minute),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   os.Getenv("LOG_FILE"),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsIntOrDefault("RATE_LIMIT_REQUESTS", 60),
			Window:   getEnvAsDurationOrDefault("RATE_LIMIT_WINDOW", time.Minute),
		},
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
	return parse.IntOrDefault(os.Getenv(key), defaultValue)
}

// getEnvAsDurationOrDefault accepts Go durations ("30m") or bare seconds
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	return duration.ParseOrDefault(os.Getenv(key), defaultValue)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if err := requireAbsoluteURL("NEWS_INDEX_URL", c.Content.IndexURL); err != nil {
		return err
	}
	if c.Content.BaseURL != "" {
		if err := requireAbsoluteURL("NEWS_CONTENT_BASE_URL", c.Content.BaseURL); err != nil {
			return err
		}
	}

	if c.Content.MaxItems < 1 {
		return errors.New("max items must be at least 1")
	}
	if c.Content.HydrateConcurrency < 1 {
		return errors.New("hydrate concurrency must be at least 1")
	}
	if c.Content.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}

	switch c.Cache.DurableType {
	case DurableSQLite:
		if c.Cache.SQLitePath == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	case DurableRedis:
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case DurableMemory:
	default:
		return errors.New("durable cache type must be 'sqlite', 'redis' or 'memory'")
	}

	if c.Cache.StaleThreshold >= c.Cache.DurableTTL {
		return errors.New("stale threshold must be shorter than the durable TTL")
	}
	if c.Cache.CheckInterval <= 0 || c.Cache.ActivityWindow <= 0 {
		return errors.New("check interval and activity window must be positive")
	}

	if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
		return errors.New("rate limit needs at least 1 request per positive window")
	}

	return nil
}

func requireAbsoluteURL(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL", name)
	}
	return nil
}
