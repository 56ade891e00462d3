// ABOUTME: Content manager owns the in-memory news list and both cache tiers
// ABOUTME: Provides the cached read path plus background, forced and reset refreshes

package content

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"newsfeed-api/core/domain"
	coreerrors "newsfeed-api/core/errors"
	"newsfeed-api/core/interfaces"
)

var (
	// ErrRefreshInFlight is returned when a forced refresh or reset overlaps another one
	ErrRefreshInFlight = errors.New("refresh already in progress")
)

// Manager fetches, caches and serves news content
type Manager struct {
	deps interfaces.Dependencies
	opts Options

	mu           sync.RWMutex
	items        []domain.ContentItem
	lastRefresh  time.Time
	lastStarted  time.Time
	lastActivity time.Time
	stale        bool

	// commitMu orders list swaps with their tier writes
	commitMu   sync.Mutex
	refreshing atomic.Bool
	resetting  atomic.Bool
	loads      singleflight.Group
	wg         sync.WaitGroup
}

// NewManager creates a new content manager. Zero option values take defaults.
func NewManager(deps interfaces.Dependencies, opts Options) *Manager {
	return &Manager{
		deps: deps,
		opts: opts.withDefaults(),
	}
}

// Options returns the effective options
func (m *Manager) Options() Options {
	return m.opts
}

// GetFreshOrCached returns the list to render. It prefers a non-empty
// ephemeral entry, then a durable entry younger than the TTL, and only then
// goes to the network. A cold load joins any index load already in flight.
func (m *Manager) GetFreshOrCached(ctx context.Context) ([]domain.ContentItem, error) {
	if entry, ok := m.readEntry(ctx, m.ephemeralTier()); ok && !entry.IsEmpty() {
		m.adopt(entry)
		return domain.CloneItems(entry.Items), nil
	}

	if entry, ok := m.readEntry(ctx, m.durableTier()); ok && !entry.IsEmpty() {
		if entry.Age(m.opts.Now()) <= m.opts.DurableTTL {
			m.adopt(entry)
			m.writeEntry(ctx, m.ephemeralTier(), entry)
			return domain.CloneItems(entry.Items), nil
		}
	}

	items, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CloneItems(items), nil
}

// load is the only path to the index. Cold reads, background, forced and
// reset refreshes all share one flight, which runs detached from any
// caller's cancellation. Each caller stops waiting when its own ctx ends.
func (m *Manager) load(ctx context.Context) ([]domain.ContentItem, error) {
	detached := context.WithoutCancel(ctx)
	ch := m.loads.DoChan(liveLoadKey, func() (interface{}, error) {
		return m.loadLive(detached)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.ContentItem), nil
	case <-ctx.Done():
		return nil, &coreerrors.NetworkError{URL: m.opts.IndexURL, Err: ctx.Err()}
	}
}

func (m *Manager) loadLive(ctx context.Context) ([]domain.ContentItem, error) {
	started := m.opts.Now()

	items, err := m.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}

	hydrated := m.hydrate(ctx, items)
	if !m.commit(ctx, started, hydrated) {
		return m.Items(), nil
	}
	m.logInfo("Content refreshed", map[string]interface{}{
		"items": len(hydrated),
	})
	return hydrated, nil
}

// RefreshInBackground re-runs the load without blocking. It returns false
// when a refresh is already in flight, in which case nothing new starts.
// A failed refresh leaves the list, the tiers and the stale flag untouched.
// The refresh outlives ctx cancellation; each fetch is still bounded by the
// request timeout.
func (m *Manager) RefreshInBackground(ctx context.Context) bool {
	if !m.refreshing.CompareAndSwap(false, true) {
		m.logDebug("Refresh already in flight, skipping trigger", nil)
		return false
	}
	ctx = context.WithoutCancel(ctx)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.refreshing.Store(false)

		if err := m.refresh(ctx); err != nil {
			m.logWarn("Background refresh failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()
	return true
}

// ForceRefresh refreshes synchronously on user request. The list is marked
// stale first, so a failure leaves it flagged as possibly outdated.
func (m *Manager) ForceRefresh(ctx context.Context) error {
	if !m.refreshing.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}
	defer m.refreshing.Store(false)

	m.mu.Lock()
	m.stale = true
	m.mu.Unlock()

	return m.refresh(ctx)
}

// Reset drops both tiers and the in-memory list, then loads from scratch
func (m *Manager) Reset(ctx context.Context) ([]domain.ContentItem, error) {
	if !m.resetting.CompareAndSwap(false, true) {
		return nil, ErrRefreshInFlight
	}
	defer m.resetting.Store(false)

	for _, t := range []tier{m.durableTier(), m.ephemeralTier()} {
		if err := m.clearEntry(ctx, t); err != nil {
			m.logWarn("Failed to clear cache tier", map[string]interface{}{
				"tier":  t.name,
				"error": err.Error(),
			})
		}
	}

	m.mu.Lock()
	m.items = nil
	m.lastRefresh = time.Time{}
	m.lastStarted = time.Time{}
	m.stale = false
	m.mu.Unlock()

	m.logInfo("Content cache reset", nil)
	return m.GetFreshOrCached(ctx)
}

// Restore seeds the in-memory list and refresh timestamp from the tiers.
// It returns the number of items restored.
func (m *Manager) Restore(ctx context.Context) int {
	if entry, ok := m.readEntry(ctx, m.ephemeralTier()); ok && !entry.IsEmpty() {
		m.adopt(entry)
	} else if entry, ok := m.readEntry(ctx, m.durableTier()); ok && !entry.IsEmpty() {
		if entry.Age(m.opts.Now()) <= m.opts.DurableTTL {
			m.adopt(entry)
			m.writeEntry(ctx, m.ephemeralTier(), entry)
		}
	}

	status := m.Status()
	m.logInfo("Content cache restored", map[string]interface{}{
		"items":        status.ItemCount,
		"last_refresh": status.LastRefresh,
		"stale":        status.IsStale,
	})
	return status.ItemCount
}

// Wait blocks until in-flight background refreshes finish
func (m *Manager) Wait() {
	m.wg.Wait()
}

func (m *Manager) refresh(ctx context.Context) error {
	_, err := m.load(ctx)
	return err
}

// commit swaps in a hydrated list and writes both tiers, unless the list in
// place came from a load that started after this one.
func (m *Manager) commit(ctx context.Context, started time.Time, items []domain.ContentItem) bool {
	m.commitMu.Lock()
	defer m.commitMu.Unlock()

	m.mu.Lock()
	if started.Before(m.lastStarted) {
		m.mu.Unlock()
		m.logDebug("Discarding late refresh result", map[string]interface{}{
			"started": started,
		})
		return false
	}
	refreshedAt := m.opts.Now()
	m.items = domain.CloneItems(items)
	m.lastRefresh = refreshedAt
	m.lastStarted = started
	m.stale = false
	m.mu.Unlock()

	entry := domain.NewCacheEntry(domain.CloneItems(items), refreshedAt)
	m.writeEntry(ctx, m.durableTier(), entry)
	m.writeEntry(ctx, m.ephemeralTier(), entry)
	return true
}

// adopt makes a cached entry the in-memory list when it is at least as new
func (m *Manager) adopt(entry domain.CacheEntry) {
	captured := entry.CapturedAt()

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.items) > 0 && captured.Before(m.lastRefresh) {
		return
	}
	m.items = domain.CloneItems(entry.Items)
	if captured.After(m.lastRefresh) {
		m.lastRefresh = captured
	}
	if m.opts.Now().Sub(m.lastRefresh) > m.opts.StaleThreshold {
		m.stale = true
	}
}

// Items returns a copy of the in-memory list
func (m *Manager) Items() []domain.ContentItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.CloneItems(m.items)
}

// ItemByID looks up one item in the in-memory list
func (m *Manager) ItemByID(id int) (domain.ContentItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.items {
		if m.items[i].ID == id {
			return m.items[i].Clone(), nil
		}
	}
	return domain.ContentItem{}, &coreerrors.NotFoundError{Resource: "news item", ID: strconv.Itoa(id)}
}

// Tags returns the distinct tags of the in-memory list in first-seen order
func (m *Manager) Tags() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return UniqueTags(m.items)
}

// Status derives the current cache status
func (m *Manager) Status() domain.CacheStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return domain.CacheStatus{
		LastRefresh:  m.lastRefresh,
		IsStale:      m.stale,
		LastActivity: m.lastActivity,
		Refreshing:   m.refreshing.Load(),
		ItemCount:    len(m.items),
	}
}

// Filter applies Filter to the in-memory list
func (m *Manager) Filter(tag, query string) []domain.ContentItem {
	return Filter(m.Items(), tag, query)
}

func (m *Manager) logDebug(msg string, fields map[string]interface{}) {
	if m.deps.Logger != nil {
		m.deps.Logger.Debug(msg, fields)
	}
}

func (m *Manager) logInfo(msg string, fields map[string]interface{}) {
	if m.deps.Logger != nil {
		m.deps.Logger.Info(msg, fields)
	}
}

func (m *Manager) logWarn(msg string, fields map[string]interface{}) {
	if m.deps.Logger != nil {
		m.deps.Logger.Warn(msg, fields)
	}
}

func (m *Manager) logError(msg string, fields map[string]interface{}) {
	if m.deps.Logger != nil {
		m.deps.Logger.Error(msg, fields)
	}
}
