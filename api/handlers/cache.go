// ABOUTME: Cache handlers for the Huma API
// ABOUTME: Exposes cache status, manual refresh, full reset and the activity signal

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"newsfeed-api/api/dto/mappers"
	"newsfeed-api/api/dto/responses"
	"newsfeed-api/pkg/featureflags"
)

// CacheHandler handles cache control HTTP requests
type CacheHandler struct {
	service ContentService
	flags   featureflags.Manager
	now     func() time.Time
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(service ContentService, flags featureflags.Manager) *CacheHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults())
	}
	return &CacheHandler{
		service: service,
		flags:   flags,
		now:     time.Now,
	}
}

// RegisterRoutes registers all cache routes
func (h *CacheHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getCacheStatus",
		Method:      http.MethodGet,
		Path:        "/cache/status",
		Summary:     "Get cache status",
		Description: "Reports when the news list was last refreshed and whether it is stale",
		Tags:        []string{"Cache"},
	}, h.GetStatus)

	huma.Register(api, huma.Operation{
		OperationID: "refreshCache",
		Method:      http.MethodPost,
		Path:        "/cache/refresh",
		Summary:     "Refresh the news list",
		Description: "Reloads the index and every body, replacing both cache tiers on success",
		Tags:        []string{"Cache"},
	}, h.Refresh)

	huma.Register(api, huma.Operation{
		OperationID: "resetCache",
		Method:      http.MethodPost,
		Path:        "/cache/reset",
		Summary:     "Reset the news cache",
		Description: "Clears both cache tiers and reloads from the source",
		Tags:        []string{"Cache"},
	}, h.Reset)

	huma.Register(api, huma.Operation{
		OperationID: "recordActivity",
		Method:      http.MethodPost,
		Path:        "/activity",
		Summary:     "Record user activity",
		Description: "Marks the user as active; a stale list is refreshed in the background",
		Tags:        []string{"Cache"},
	}, h.RecordActivity)
}

// CacheStatusOutput defines the output for the GetStatus operation
type CacheStatusOutput struct {
	Body responses.CacheStatusResponse
}

// GetStatus handles the GET /cache/status endpoint
func (h *CacheHandler) GetStatus(ctx context.Context, input *struct{}) (*CacheStatusOutput, error) {
	return &CacheStatusOutput{
		Body: mappers.ToCacheStatusResponse(h.service.Status(), h.now()),
	}, nil
}

// RefreshOutput defines the output for the Refresh and Reset operations
type RefreshOutput struct {
	Body responses.RefreshResponse
}

// Refresh handles the POST /cache/refresh endpoint
func (h *CacheHandler) Refresh(ctx context.Context, input *struct{}) (*RefreshOutput, error) {
	if err := h.service.ForceRefresh(ctx); err != nil {
		return nil, toHumaError(err)
	}

	status := h.service.Status()
	return &RefreshOutput{
		Body: responses.RefreshResponse{
			Message: "News refreshed",
			Items:   status.ItemCount,
			Cache:   mappers.ToCacheStatusResponse(status, h.now()),
		},
	}, nil
}

// Reset handles the POST /cache/reset endpoint
func (h *CacheHandler) Reset(ctx context.Context, input *struct{}) (*RefreshOutput, error) {
	items, err := h.service.Reset(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RefreshOutput{
		Body: responses.RefreshResponse{
			Message: "News cache reset",
			Items:   len(items),
			Cache:   mappers.ToCacheStatusResponse(h.service.Status(), h.now()),
		},
	}, nil
}

// ActivityOutput defines the output for the RecordActivity operation
type ActivityOutput struct {
	Body responses.ActivityResponse
}

// RecordActivity handles the POST /activity endpoint
func (h *CacheHandler) RecordActivity(ctx context.Context, input *struct{}) (*ActivityOutput, error) {
	var started bool
	if h.flags.IsEnabled(ctx, featureflags.ActivityRefresh) {
		started = h.service.RecordActivity(ctx)
	}

	return &ActivityOutput{
		Body: responses.ActivityResponse{
			RefreshStarted: started,
			Cache:          mappers.ToCacheStatusResponse(h.service.Status(), h.now()),
		},
	}, nil
}
