// Package core contains the business logic for the newsfeed service.
// It is framework-agnostic and can be used independently of any web
// framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: content items, cache entries and cache status
// - content: the content cache manager (validation, hydration, tiers, staleness, filtering)
// - render: Markdown to HTML and plain text excerpts
// - workers: the staleness monitor that drives periodic freshness checks
// - errors: typed errors for network, validation and per-item failures
// - interfaces: contracts for external dependencies (cache tiers, HTTP, logger)
//
// # Design Principles
//
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    DurableCache:   sqliteCache,   // survives restarts, read with a TTL
//	    EphemeralCache: memoryCache,   // process lifetime, no TTL
//	    HTTPClient:     httpClient,
//	    Logger:         logger,
//	}
//
//	manager := content.NewManager(deps, content.Options{
//	    IndexURL:       "https://news.example.com/news.json",
//	    ContentBaseURL: "https://news.example.com/content",
//	})
//
//	items, err := manager.GetFreshOrCached(ctx)
package core
