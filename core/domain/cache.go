// ABOUTME: Cache entry and cache status models shared by both cache tiers
// ABOUTME: CacheEntry is what gets persisted; CacheStatus is derived on demand

package domain

import "time"

// CacheEntry is the persisted form of one cache tier
type CacheEntry struct {
	// Items is the full hydrated item list
	Items []ContentItem `json:"items"`

	// Timestamp is the capture time in epoch milliseconds
	Timestamp int64 `json:"timestamp"`
}

// NewCacheEntry captures items at the given time
func NewCacheEntry(items []ContentItem, capturedAt time.Time) CacheEntry {
	return CacheEntry{
		Items:     items,
		Timestamp: capturedAt.UnixMilli(),
	}
}

// CapturedAt returns the capture time
func (e CacheEntry) CapturedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// IsEmpty reports whether the entry carries no items
func (e CacheEntry) IsEmpty() bool {
	return len(e.Items) == 0
}

// Age returns how long ago the entry was captured
func (e CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.CapturedAt())
}

// CacheStatus is derived state describing how fresh the in-memory list is
type CacheStatus struct {
	// LastRefresh is the last successful full refresh; zero if never
	LastRefresh time.Time

	// IsStale is set once LastRefresh is older than the staleness threshold
	IsStale bool

	// LastActivity is the last observed user interaction; zero if never
	LastActivity time.Time

	// Refreshing is true while a refresh is in flight
	Refreshing bool

	// ItemCount is the size of the in-memory list
	ItemCount int
}
