// ABOUTME: News handlers for the Huma API
// ABOUTME: Serves the paginated list, single items and the tag set from the content cache

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"newsfeed-api/api/dto/mappers"
	"newsfeed-api/api/dto/requests"
	"newsfeed-api/api/dto/responses"
	"newsfeed-api/core/content"
	"newsfeed-api/core/domain"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/pkg/featureflags"
)

// ContentService defines the methods needed from the content cache manager
type ContentService interface {
	GetFreshOrCached(ctx context.Context) ([]domain.ContentItem, error)
	ItemByID(id int) (domain.ContentItem, error)
	Tags() []string
	Status() domain.CacheStatus
	ForceRefresh(ctx context.Context) error
	Reset(ctx context.Context) ([]domain.ContentItem, error)
	RecordActivity(ctx context.Context) bool
}

// NewsHandler handles news-related HTTP requests
type NewsHandler struct {
	service  ContentService
	renderer interfaces.Renderer
	flags    featureflags.Manager
	now      func() time.Time
}

// NewNewsHandler creates a new news handler. A nil flags manager uses the built-in defaults.
func NewNewsHandler(service ContentService, renderer interfaces.Renderer, flags featureflags.Manager) *NewsHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults())
	}
	return &NewsHandler{
		service:  service,
		renderer: renderer,
		flags:    flags,
		now:      time.Now,
	}
}

// RegisterRoutes registers all news routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listNews",
		Method:      http.MethodGet,
		Path:        "/news",
		Summary:     "List news",
		Description: "Returns one page of the cached news list, pinned items first then newest first, optionally filtered by tag and search text",
		Tags:        []string{"News"},
	}, h.ListNews)

	huma.Register(api, huma.Operation{
		OperationID: "listNewsTags",
		Method:      http.MethodGet,
		Path:        "/news/tags",
		Summary:     "List news tags",
		Description: "Returns the distinct tags of the cached news list",
		Tags:        []string{"News"},
	}, h.ListTags)

	huma.Register(api, huma.Operation{
		OperationID: "getNewsItem",
		Method:      http.MethodGet,
		Path:        "/news/{id}",
		Summary:     "Get a news item",
		Description: "Returns one news item with its full body",
		Tags:        []string{"News"},
	}, h.GetItem)
}

// ListNewsInput defines the input for the ListNews operation
type ListNewsInput struct {
	requests.ListNewsRequest
}

// ListNewsOutput defines the output for the ListNews operation
type ListNewsOutput struct {
	Body responses.NewsPageResponse
}

// ListNews handles the GET /news endpoint
func (h *NewsHandler) ListNews(ctx context.Context, input *ListNewsInput) (*ListNewsOutput, error) {
	input.ApplyDefaults()

	items, err := h.service.GetFreshOrCached(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	// viewing the list counts as activity
	if h.flags.IsEnabled(ctx, featureflags.ActivityRefresh) {
		h.service.RecordActivity(ctx)
	}

	filtered := content.Filter(items, input.Tag, input.Query)
	page := content.Paginate(filtered, input.Page, input.PageSize)

	return &ListNewsOutput{
		Body: mappers.ToNewsPageResponse(page, h.service.Status(), h.renderer, h.now()),
	}, nil
}

// ListTagsOutput defines the output for the ListTags operation
type ListTagsOutput struct {
	Body responses.TagsResponse
}

// ListTags handles the GET /news/tags endpoint
func (h *NewsHandler) ListTags(ctx context.Context, input *struct{}) (*ListTagsOutput, error) {
	if _, err := h.service.GetFreshOrCached(ctx); err != nil {
		return nil, toHumaError(err)
	}

	tags := h.service.Tags()
	if tags == nil {
		tags = []string{}
	}
	return &ListTagsOutput{Body: responses.TagsResponse{Tags: tags}}, nil
}

// GetItemInput defines the input for the GetItem operation
type GetItemInput struct {
	ID int `path:"id" minimum:"0" doc:"News item identifier"`
}

// GetItemOutput defines the output for the GetItem operation
type GetItemOutput struct {
	Body responses.NewsItemResponse
}

// GetItem handles the GET /news/{id} endpoint
func (h *NewsHandler) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if _, err := h.service.GetFreshOrCached(ctx); err != nil {
		return nil, toHumaError(err)
	}

	item, err := h.service.ItemByID(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	var html string
	if h.renderer != nil && !item.BodyFailed() && h.flags.IsEnabled(ctx, featureflags.HTMLRender) {
		html = h.renderer.HTML(item.BodyText())
	}

	return &GetItemOutput{Body: mappers.ToNewsItemResponse(item, html)}, nil
}
