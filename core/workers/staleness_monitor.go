// ABOUTME: Staleness monitor runs the periodic freshness check for the content cache
// ABOUTME: Publishes cache status to subscribers whenever the list turns stale or fresh

package workers

import (
	"context"
	"sync"
	"time"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/interfaces"
)

// MonitorConfig holds configuration for the staleness monitor
type MonitorConfig struct {
	Interval time.Duration
}

// DefaultMonitorConfig returns the default monitor configuration
func DefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		Interval: 10 * time.Minute,
	}
}

// StalenessMonitor drives CheckStaleness on a single ticker
type StalenessMonitor struct {
	checker  interfaces.StalenessChecker
	logger   interfaces.Logger
	interval time.Duration

	mu      sync.Mutex
	running bool
	stopped bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	subMu       sync.Mutex
	subscribers []chan domain.CacheStatus
	lastStale   bool
}

// NewStalenessMonitor creates a new staleness monitor
func NewStalenessMonitor(checker interfaces.StalenessChecker, logger interfaces.Logger, config MonitorConfig) *StalenessMonitor {
	ctx, cancel := context.WithCancel(context.Background())

	if config.Interval <= 0 {
		config.Interval = DefaultMonitorConfig().Interval
	}

	return &StalenessMonitor{
		checker:  checker,
		logger:   logger,
		interval: config.Interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the ticker loop
func (sm *StalenessMonitor) Start() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.stopped {
		return ErrWorkerStopped
	}
	if sm.running {
		return nil
	}

	sm.subMu.Lock()
	sm.lastStale = sm.checker.Status().IsStale
	sm.subMu.Unlock()

	sm.wg.Add(1)
	go sm.run()

	sm.running = true
	return nil
}

// Stop stops the loop and closes every subscriber channel
func (sm *StalenessMonitor) Stop() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.running {
		return nil
	}

	sm.cancel()
	sm.wg.Wait()

	sm.subMu.Lock()
	for _, ch := range sm.subscribers {
		close(ch)
	}
	sm.subscribers = nil
	sm.subMu.Unlock()

	sm.running = false
	sm.stopped = true
	return nil
}

// Subscribe returns a channel receiving the cache status on every transition.
// Slow subscribers miss updates rather than block the monitor.
func (sm *StalenessMonitor) Subscribe(buffer int) (<-chan domain.CacheStatus, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.stopped {
		return nil, ErrWorkerStopped
	}
	if buffer < 1 {
		buffer = 1
	}

	ch := make(chan domain.CacheStatus, buffer)
	sm.subMu.Lock()
	sm.subscribers = append(sm.subscribers, ch)
	sm.subMu.Unlock()
	return ch, nil
}

// CheckNow runs one check outside the ticker
func (sm *StalenessMonitor) CheckNow(ctx context.Context) domain.CacheStatus {
	sm.checker.CheckStaleness(ctx)
	status := sm.checker.Status()
	sm.publish(status)
	return status
}

func (sm *StalenessMonitor) run() {
	defer sm.wg.Done()

	ticker := time.NewTicker(sm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sm.CheckNow(sm.ctx)
		case <-sm.ctx.Done():
			return
		}
	}
}

// publish fans status out when the stale flag changed since the last publish
func (sm *StalenessMonitor) publish(status domain.CacheStatus) {
	sm.subMu.Lock()
	defer sm.subMu.Unlock()

	if status.IsStale == sm.lastStale {
		return
	}
	sm.lastStale = status.IsStale

	if sm.logger != nil {
		sm.logger.Debug("Publishing freshness change", map[string]interface{}{
			"stale":        status.IsStale,
			"last_refresh": status.LastRefresh,
			"items":        status.ItemCount,
		})
	}

	for _, ch := range sm.subscribers {
		select {
		case ch <- status:
		default:
		}
	}
}

// Error definitions
var (
	ErrWorkerStopped = &WorkerError{Message: "staleness monitor has been stopped"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
