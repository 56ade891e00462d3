// ABOUTME: Mappers for converting news items and cache status to API DTOs
// ABOUTME: Keeps excerpt, image acceptance and relative-time rendering out of the handlers

package mappers

import (
	"time"

	"github.com/dustin/go-humanize"

	"newsfeed-api/api/dto/responses"
	"newsfeed-api/core/content"
	"newsfeed-api/core/domain"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/core/render"
)

// ToNewsCardResponse converts an item to its list card
func ToNewsCardResponse(item domain.ContentItem, renderer interfaces.Renderer) responses.NewsCardResponse {
	card := responses.NewsCardResponse{
		ID:         item.ID,
		Title:      item.Title,
		Date:       item.Date,
		Tags:       nonNil(item.Tags),
		Pinned:     item.Pinned,
		BodyFailed: item.BodyFailed(),
	}
	if render.AcceptableImage(item.Image) {
		card.Image = item.Image
	}
	if renderer != nil {
		card.Excerpt = renderer.Excerpt(item.BodyText(), render.DefaultExcerptLength)
	}
	return card
}

// ToNewsPageResponse converts a page plus the cache status
func ToNewsPageResponse(page content.Page, status domain.CacheStatus, renderer interfaces.Renderer, now time.Time) responses.NewsPageResponse {
	cards := make([]responses.NewsCardResponse, 0, len(page.Items))
	for _, item := range page.Items {
		cards = append(cards, ToNewsCardResponse(item, renderer))
	}

	return responses.NewsPageResponse{
		Items:      cards,
		Page:       page.Page,
		PageSize:   page.PageSize,
		PageCount:  page.PageCount,
		TotalItems: page.TotalItems,
		Cache:      ToCacheStatusResponse(status, now),
	}
}

// ToNewsItemResponse converts an item to its detail view. html may be empty.
func ToNewsItemResponse(item domain.ContentItem, html string) responses.NewsItemResponse {
	return responses.NewsItemResponse{
		ID:               item.ID,
		Title:            item.Title,
		Date:             item.Date,
		Content:          item.Content,
		Markdown:         item.BodyText(),
		HTML:             html,
		Tags:             nonNil(item.Tags),
		Pinned:           item.Pinned,
		Image:            item.Image,
		AdditionalImages: item.AdditionalImages,
		BodyFailed:       item.BodyFailed(),
	}
}

// ToCacheStatusResponse converts the cache status, rendering the list age relative to now
func ToCacheStatusResponse(status domain.CacheStatus, now time.Time) responses.CacheStatusResponse {
	resp := responses.CacheStatusResponse{
		IsStale:    status.IsStale,
		Refreshing: status.Refreshing,
		ItemCount:  status.ItemCount,
		Updated:    "never updated",
	}
	if !status.LastRefresh.IsZero() {
		t := status.LastRefresh
		resp.LastRefresh = &t
		resp.Updated = "updated " + humanize.RelTime(t, now, "ago", "from now")
	}
	if !status.LastActivity.IsZero() {
		t := status.LastActivity
		resp.LastActivity = &t
	}
	return resp
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
