// ABOUTME: Pure filtering over item lists by tag and free-text query
// ABOUTME: Also derives the distinct tag set in first-seen order

package content

import (
	"strings"

	"newsfeed-api/core/domain"
	timeutil "newsfeed-api/pkg/utils/time"
)

// Filter returns the items matching both criteria. tag matches exact tag
// membership; query matches case-insensitively against the title, the body
// text and the formatted date. Blank criteria are ignored, so two blank
// criteria return items unchanged.
func Filter(items []domain.ContentItem, tag, query string) []domain.ContentItem {
	tag = strings.TrimSpace(tag)
	query = strings.ToLower(strings.TrimSpace(query))
	if tag == "" && query == "" {
		return items
	}

	out := make([]domain.ContentItem, 0, len(items))
	for i := range items {
		item := &items[i]
		if tag != "" && !item.HasTag(tag) {
			continue
		}
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		out = append(out, *item)
	}
	return out
}

func matchesQuery(item *domain.ContentItem, query string) bool {
	if strings.Contains(strings.ToLower(item.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.BodyText()), query) {
		return true
	}
	if item.Date.IsZero() {
		return false
	}
	for _, form := range timeutil.DisplayForms(item.Date) {
		if strings.Contains(strings.ToLower(form), query) {
			return true
		}
	}
	return false
}

// UniqueTags returns every distinct tag in first-seen order
func UniqueTags(items []domain.ContentItem) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for i := range items {
		for _, tag := range items[i].Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}
