// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"newsfeed-api/api/middleware"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/pkg/featureflags"
)

const (
	apiTitle       = "Newsfeed API"
	apiVersion     = "1.0.0"
	apiDescription = "Serves a cached, validated news feed with pagination, tag filtering and search"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	RateLimit      int           // requests per window
	RateWindow     time.Duration // rate limit window
	AllowedOrigins []string
	Flags          featureflags.Manager
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription
	return config
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(cors.Handler(corsOptions(nil)))

	// The OpenAPI spec is automatically available at /openapi.json
	// The Swagger UI is automatically available at /docs
	api := humachi.New(router, humaConfig())

	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflight requests are never rate limited
	router.Use(cors.Handler(corsOptions(cfg.AllowedOrigins)))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 && rateLimitEnabled(cfg.Flags) {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	api := humachi.New(router, humaConfig())

	return api, router
}

func rateLimitEnabled(flags featureflags.Manager) bool {
	if flags == nil {
		return featureflags.Default(featureflags.RateLimitEnabled)
	}
	return flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled)
}
