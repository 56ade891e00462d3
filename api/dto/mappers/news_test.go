package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsfeed-api/core/content"
	"newsfeed-api/core/domain"
	"newsfeed-api/core/render"
)

func TestToNewsCardResponse(t *testing.T) {
	item := domain.ContentItem{
		ID:     3,
		Title:  "Patch notes",
		Date:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Image:  "https://cdn.example.com/hero.png",
		Pinned: true,
	}
	item.SetBody("# Patch\n\nFixed the **login** bug.")

	card := ToNewsCardResponse(item, render.NewMarkdown())

	assert.Equal(t, 3, card.ID)
	assert.Equal(t, "https://cdn.example.com/hero.png", card.Image)
	assert.True(t, card.Pinned)
	assert.Contains(t, card.Excerpt, "Fixed the login bug.")
	assert.NotContains(t, card.Excerpt, "**")
	assert.Equal(t, []string{}, card.Tags)
	assert.False(t, card.BodyFailed)
}

func TestToNewsCardResponse_RejectsUnsupportedImage(t *testing.T) {
	item := domain.ContentItem{ID: 1, Image: "https://cdn.example.com/hero.svg"}
	item.SetBody(domain.BodyLoadFailed)

	card := ToNewsCardResponse(item, render.NewMarkdown())

	assert.Empty(t, card.Image)
	assert.Equal(t, domain.BodyLoadFailed, card.Excerpt)
	assert.True(t, card.BodyFailed)
}

func TestToNewsPageResponse(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	page := content.Paginate([]domain.ContentItem{{ID: 1}, {ID: 2}}, 0, 6)

	resp := ToNewsPageResponse(page, domain.CacheStatus{ItemCount: 2}, nil, now)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.PageCount)
	assert.Equal(t, 2, resp.TotalItems)
	assert.Equal(t, 2, resp.Cache.ItemCount)
}

func TestToNewsItemResponse(t *testing.T) {
	item := domain.ContentItem{ID: 9, Content: "9.md", Tags: []string{"event"}}
	item.SetBody("hello")

	resp := ToNewsItemResponse(item, "<p>hello</p>\n")

	assert.Equal(t, "hello", resp.Markdown)
	assert.Equal(t, "<p>hello</p>\n", resp.HTML)
	assert.Equal(t, "9.md", resp.Content)
	assert.Equal(t, []string{"event"}, resp.Tags)
}

func TestToCacheStatusResponse(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	never := ToCacheStatusResponse(domain.CacheStatus{}, now)
	assert.Equal(t, "never updated", never.Updated)
	assert.Nil(t, never.LastRefresh)
	assert.Nil(t, never.LastActivity)

	status := domain.CacheStatus{
		LastRefresh:  now.Add(-5 * time.Minute),
		LastActivity: now.Add(-time.Minute),
		IsStale:      true,
		ItemCount:    4,
	}
	resp := ToCacheStatusResponse(status, now)
	assert.Equal(t, "updated 5 minutes ago", resp.Updated)
	require.NotNil(t, resp.LastRefresh)
	assert.True(t, resp.LastRefresh.Equal(status.LastRefresh))
	require.NotNil(t, resp.LastActivity)
	assert.True(t, resp.IsStale)
	assert.Equal(t, 4, resp.ItemCount)
}
