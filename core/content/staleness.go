// ABOUTME: Staleness state machine for the in-memory list
// ABOUTME: Refreshes in the background only while a user has been recently active

package content

import "context"

// CheckStaleness marks the list stale once the last refresh is older than the
// stale threshold, then starts a background refresh if a user was active
// within the activity window. It returns true when this call moved the list
// from fresh to stale.
func (m *Manager) CheckStaleness(ctx context.Context) bool {
	now := m.opts.Now()

	m.mu.Lock()
	transitioned := false
	if !m.stale && (m.lastRefresh.IsZero() || now.Sub(m.lastRefresh) > m.opts.StaleThreshold) {
		m.stale = true
		transitioned = true
	}
	stale := m.stale
	active := !m.lastActivity.IsZero() && now.Sub(m.lastActivity) <= m.opts.ActivityWindow
	m.mu.Unlock()

	if transitioned {
		m.logInfo("Content marked stale", map[string]interface{}{
			"active": active,
		})
	}

	if stale && active {
		m.RefreshInBackground(ctx)
	}
	return transitioned
}

// RecordActivity notes a user interaction. A stale list is refreshed in the
// background right away; the return value reports whether one was started.
func (m *Manager) RecordActivity(ctx context.Context) bool {
	m.mu.Lock()
	m.lastActivity = m.opts.Now()
	stale := m.stale
	m.mu.Unlock()

	if !stale {
		return false
	}
	return m.RefreshInBackground(ctx)
}
