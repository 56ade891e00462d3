// ABOUTME: Main entry point for the Newsfeed API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsfeed-api/api"
	"newsfeed-api/api/handlers"
	"newsfeed-api/core/content"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/core/render"
	"newsfeed-api/core/workers"
	"newsfeed-api/infrastructure/cache/memory"
	"newsfeed-api/infrastructure/cache/redis"
	"newsfeed-api/infrastructure/cache/sqlite"
	"newsfeed-api/infrastructure/http/retryable"
	"newsfeed-api/infrastructure/logger/structured"
	"newsfeed-api/pkg/config"
	"newsfeed-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	defer logger.Close()

	logger.Info("Starting Newsfeed API", map[string]interface{}{
		"port":            cfg.Server.Port,
		"index_url":       cfg.Content.IndexURL,
		"durable_cache":   cfg.Cache.DurableType,
		"stale_threshold": cfg.Cache.StaleThreshold.String(),
	})

	flags := featureflags.NewEnvManager("FEATURE_")

	durable, closeDurable := newDurableCache(cfg, logger)
	defer closeDurable()

	deps := interfaces.Dependencies{
		DurableCache:   durable,
		EphemeralCache: memory.NewMemoryCache(),
		HTTPClient: retryable.NewClient(retryable.Config{
			Timeout:  cfg.Content.RequestTimeout,
			RetryMax: cfg.Content.RetryMax,
		}, logger),
		Logger: logger,
	}

	manager := content.NewManager(deps, contentOptions(cfg))

	// serve the last good list immediately, then warm up in the background
	restored := manager.Restore(context.Background())
	logger.Info("Restored cached news", map[string]interface{}{
		"items": restored,
	})
	go func() {
		if _, err := manager.GetFreshOrCached(context.Background()); err != nil {
			logger.Warn("Initial news load failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	var monitor *workers.StalenessMonitor
	if flags.IsEnabled(context.Background(), featureflags.BackgroundRefresh) {
		monitor = workers.NewStalenessMonitor(manager, logger, workers.MonitorConfig{
			Interval: cfg.Cache.CheckInterval,
		})
		if updates, err := monitor.Subscribe(4); err == nil {
			go watchFreshness(updates, logger, time.Now)
		}
		if err := monitor.Start(); err != nil {
			logger.Error("Failed to start staleness monitor", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         logger,
		RateLimit:      cfg.RateLimit.Requests,
		RateWindow:     cfg.RateLimit.Window,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Flags:          flags,
	})

	handlers.NewNewsHandler(manager, render.NewMarkdown(), flags).RegisterRoutes(humaAPI)
	handlers.NewCacheHandler(manager, flags).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if monitor != nil {
		_ = monitor.Stop()
	}
	manager.Wait()

	logger.Info("Server stopped", nil)
}

// newDurableCache opens the configured durable tier, falling back to memory
func newDurableCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	switch cfg.Cache.DurableType {
	case config.DurableRedis:
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), func() {}
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache, closer(redisCache, logger)
	case config.DurableSQLite:
		sqliteCache, err := sqlite.NewSQLiteCacheWithLogger(cfg.Cache.SQLitePath, logger)
		if err != nil {
			logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
				"path":  cfg.Cache.SQLitePath,
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), func() {}
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLitePath,
		})
		return sqliteCache, closer(sqliteCache, logger)
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(), func() {}
	}
}

func closer(c io.Closer, logger interfaces.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close durable cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func contentOptions(cfg *config.Config) content.Options {
	opts := content.DefaultOptions()
	opts.IndexURL = cfg.Content.IndexURL
	opts.ContentBaseURL = cfg.Content.BaseURL
	opts.RewritePrefix = cfg.Content.RewritePrefix
	opts.SkipPrefixes = cfg.Content.SkipPrefixes
	if cfg.Content.MaxItems > 0 {
		opts.Limits.MaxItems = cfg.Content.MaxItems
	}
	opts.HydrateConcurrency = cfg.Content.HydrateConcurrency
	opts.RequestTimeout = cfg.Content.RequestTimeout
	opts.DurableTTL = cfg.Cache.DurableTTL
	opts.StaleThreshold = cfg.Cache.StaleThreshold
	opts.ActivityWindow = cfg.Cache.ActivityWindow
	return opts
}

func init() {
	fmt.Println(`
    _   __                      ____              __
   / | / /__ _      _______    / __/__  ___  ____/ /
  /  |/ / _ \ | /| / / ___/   / /_/ _ \/ _ \/ __  /
 / /|  /  __/ |/ |/ (__  )   / __/  __/  __/ /_/ /
/_/ |_/\___/|__/|__/____/   /_/  \___/\___/\__,_/
	`)
}
