// ABOUTME: Logs freshness transitions published by the staleness monitor
// ABOUTME: Runs until the monitor closes the subscription on shutdown

package main

import (
	"time"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/interfaces"
)

// watchFreshness reports every stale and fresh transition of the news list
func watchFreshness(updates <-chan domain.CacheStatus, logger interfaces.Logger, now func() time.Time) {
	for status := range updates {
		fields := map[string]interface{}{
			"items":      status.ItemCount,
			"refreshing": status.Refreshing,
		}
		if !status.LastRefresh.IsZero() {
			fields["last_refresh"] = status.LastRefresh
			fields["age"] = now().Sub(status.LastRefresh).Round(time.Second).String()
		}

		if status.IsStale {
			logger.Warn("News list went stale", fields)
			continue
		}
		logger.Info("News list is fresh again", fields)
	}
}
