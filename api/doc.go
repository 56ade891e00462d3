// Package api provides the HTTP API layer for the newsfeed service.
// It uses the Huma framework on a chi router for automatic OpenAPI
// documentation, request validation and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS and middleware setup
// - handlers/: news and cache control handlers over the content manager
// - dto/: request parameters, response bodies and domain mappers
// - middleware/: request logging with request IDs and per-IP rate limiting
//
// # Endpoints
//
//	GET  /news?page=&page_size=&tag=&q=   one page of the sorted, filtered list
//	GET  /news/tags                       distinct tags
//	GET  /news/{id}                       one item, with rendered HTML
//	GET  /cache/status                    freshness of the cached list
//	POST /cache/refresh                   synchronous refresh
//	POST /cache/reset                     clear both tiers and reload
//	POST /activity                        user activity signal
//
// The OpenAPI spec is served at /openapi.json and the interactive docs at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	handlers.NewNewsHandler(manager, render.NewMarkdown(), flags).RegisterRoutes(humaAPI)
//	handlers.NewCacheHandler(manager, flags).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format. Missing items map to 404, a refresh that
// is already running to 409, an index that fails validation to 502 and an
// unreachable news source to 503.
package api
