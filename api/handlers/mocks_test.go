package handlers

import (
	"context"
	"strconv"
	"time"

	"newsfeed-api/core/content"
	"newsfeed-api/core/domain"
	"newsfeed-api/core/errors"
)

// mockContentService is a mock implementation of ContentService
type mockContentService struct {
	items    []domain.ContentItem
	status   domain.CacheStatus
	activity int

	getFunc      func(ctx context.Context) ([]domain.ContentItem, error)
	refreshFunc  func(ctx context.Context) error
	resetFunc    func(ctx context.Context) ([]domain.ContentItem, error)
	activityFunc func(ctx context.Context) bool
}

func (m *mockContentService) GetFreshOrCached(ctx context.Context) ([]domain.ContentItem, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return m.items, nil
}

func (m *mockContentService) ItemByID(id int) (domain.ContentItem, error) {
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.ContentItem{}, &errors.NotFoundError{Resource: "news item", ID: strconv.Itoa(id)}
}

func (m *mockContentService) Tags() []string {
	return content.UniqueTags(m.items)
}

func (m *mockContentService) Status() domain.CacheStatus {
	status := m.status
	status.ItemCount = len(m.items)
	return status
}

func (m *mockContentService) ForceRefresh(ctx context.Context) error {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx)
	}
	return nil
}

func (m *mockContentService) Reset(ctx context.Context) ([]domain.ContentItem, error) {
	if m.resetFunc != nil {
		return m.resetFunc(ctx)
	}
	return m.items, nil
}

func (m *mockContentService) RecordActivity(ctx context.Context) bool {
	m.activity++
	if m.activityFunc != nil {
		return m.activityFunc(ctx)
	}
	return false
}

func newsFixture() []domain.ContentItem {
	items := []domain.ContentItem{
		{ID: 1, Title: "Season launch", Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Tags: []string{"event"}, Image: "https://cdn.example.com/1.png"},
		{ID: 2, Title: "Server maintenance", Date: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC), Tags: []string{"maintenance"}},
		{ID: 3, Title: "Welcome", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Tags: []string{"event", "update"}, Pinned: true},
	}
	items[0].SetBody("The **new season** starts on Friday.")
	items[1].SetBody(domain.BodyLoadFailed)
	items[2].SetBody("# Welcome\n\nRead the rules.")
	return items
}
