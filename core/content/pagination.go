// ABOUTME: Display ordering and page slicing for item lists
// ABOUTME: Pinned items lead, then newest first; out-of-range pages are clamped

package content

import (
	"sort"

	"newsfeed-api/core/domain"
)

// Page is one slice of a sorted list
type Page struct {
	Items      []domain.ContentItem
	Page       int
	PageSize   int
	PageCount  int
	TotalItems int
}

// SortForDisplay returns a copy ordered pinned first, then by date descending.
// Items that compare equal keep their input order.
func SortForDisplay(items []domain.ContentItem) []domain.ContentItem {
	out := make([]domain.ContentItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// PageCount returns how many pages total items fill
func PageCount(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate sorts items for display and returns the zero-based page. The page
// is clamped to the valid range; a pageSize below 1 uses DefaultPageSize.
func Paginate(items []domain.ContentItem, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	count := PageCount(total, pageSize)
	result := Page{
		Items:      []domain.ContentItem{},
		PageSize:   pageSize,
		PageCount:  count,
		TotalItems: total,
	}
	if total == 0 {
		return result
	}

	if page < 0 {
		page = 0
	}
	if page > count-1 {
		page = count - 1
	}

	sorted := SortForDisplay(items)
	start := page * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	result.Items = sorted[start:end]
	result.Page = page
	return result
}
