// ABOUTME: Reads and writes cache entries to the durable and ephemeral tiers
// ABOUTME: Entries read back are re-validated and dropped when they fail

package content

import (
	"context"
	"encoding/json"
	"time"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/interfaces"
)

type tier struct {
	name  string
	cache interfaces.Cache
	key   string
	ttl   time.Duration
}

func (m *Manager) durableTier() tier {
	return tier{name: "durable", cache: m.deps.DurableCache, key: durableKey, ttl: m.opts.DurableTTL}
}

func (m *Manager) ephemeralTier() tier {
	return tier{name: "ephemeral", cache: m.deps.EphemeralCache, key: ephemeralKey}
}

// readEntry loads a tier's entry. ok is false on a miss, a decode failure or
// a validation failure; the latter two also delete the bad entry.
func (m *Manager) readEntry(ctx context.Context, t tier) (domain.CacheEntry, bool) {
	var entry domain.CacheEntry
	if t.cache == nil {
		return entry, false
	}

	data, err := t.cache.Get(ctx, t.key)
	if err != nil || len(data) == 0 {
		return entry, false
	}

	if err := json.Unmarshal(data, &entry); err != nil {
		m.logWarn("Discarding undecodable cache entry", map[string]interface{}{
			"tier":  t.name,
			"error": err.Error(),
		})
		_ = t.cache.Delete(ctx, t.key)
		return domain.CacheEntry{}, false
	}

	if err := ValidateItems(entry.Items, m.opts.Limits); err != nil {
		m.logWarn("Discarding invalid cache entry", map[string]interface{}{
			"tier":  t.name,
			"error": err.Error(),
		})
		_ = t.cache.Delete(ctx, t.key)
		return domain.CacheEntry{}, false
	}

	return entry, true
}

// writeEntry stores an entry; failures are logged and otherwise ignored
func (m *Manager) writeEntry(ctx context.Context, t tier, entry domain.CacheEntry) {
	if t.cache == nil {
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		m.logError("Failed to encode cache entry", map[string]interface{}{
			"tier":  t.name,
			"error": err.Error(),
		})
		return
	}

	if err := t.cache.Set(ctx, t.key, data, t.ttl); err != nil {
		m.logWarn("Failed to write cache entry", map[string]interface{}{
			"tier":  t.name,
			"error": err.Error(),
		})
	}
}

func (m *Manager) clearEntry(ctx context.Context, t tier) error {
	if t.cache == nil {
		return nil
	}
	return t.cache.Delete(ctx, t.key)
}
