package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStaleness_Transitions(t *testing.T) {
	f := newFixture(t, pinnedResponses())
	ctx := context.Background()

	// nothing loaded yet counts as stale
	assert.True(t, f.manager.CheckStaleness(ctx))
	assert.False(t, f.manager.CheckStaleness(ctx))
	assert.Equal(t, int32(0), f.client.calls.Load())

	_, err := f.manager.GetFreshOrCached(ctx)
	require.NoError(t, err)
	require.False(t, f.manager.Status().IsStale)

	f.clock.Advance(29 * time.Minute)
	assert.False(t, f.manager.CheckStaleness(ctx))
	assert.False(t, f.manager.Status().IsStale)

	f.clock.Advance(2 * time.Minute)
	assert.True(t, f.manager.CheckStaleness(ctx))
	assert.True(t, f.manager.Status().IsStale)
}

func TestCheckStaleness_RefreshesOnlyWhenActive(t *testing.T) {
	f := newFixture(t, pinnedResponses())
	ctx := context.Background()

	_, err := f.manager.GetFreshOrCached(ctx)
	require.NoError(t, err)
	loads := f.client.calls.Load()

	// an idle session stays stale
	f.clock.Advance(time.Hour)
	f.manager.CheckStaleness(ctx)
	f.manager.Wait()
	assert.Equal(t, loads, f.client.calls.Load())
	assert.True(t, f.manager.Status().IsStale)

	// activity within the window lets the next check refresh
	f.manager.mu.Lock()
	f.manager.lastActivity = f.clock.Now().Add(-2 * time.Minute)
	f.manager.mu.Unlock()

	f.manager.CheckStaleness(ctx)
	f.manager.Wait()
	assert.Greater(t, f.client.calls.Load(), loads)
	assert.False(t, f.manager.Status().IsStale)
}

func TestCheckStaleness_OldActivityIgnored(t *testing.T) {
	f := newFixture(t, pinnedResponses())
	ctx := context.Background()

	_, err := f.manager.GetFreshOrCached(ctx)
	require.NoError(t, err)
	loads := f.client.calls.Load()

	f.manager.mu.Lock()
	f.manager.lastActivity = f.clock.Now()
	f.manager.mu.Unlock()

	f.clock.Advance(time.Hour)
	f.manager.CheckStaleness(ctx)
	f.manager.Wait()
	assert.Equal(t, loads, f.client.calls.Load())
}

func TestRecordActivity(t *testing.T) {
	f := newFixture(t, pinnedResponses())
	ctx := context.Background()

	_, err := f.manager.GetFreshOrCached(ctx)
	require.NoError(t, err)

	// fresh list: activity is only recorded
	assert.False(t, f.manager.RecordActivity(ctx))
	assert.Equal(t, f.clock.Now(), f.manager.Status().LastActivity)

	f.clock.Advance(time.Hour)
	f.manager.CheckStaleness(ctx)
	f.manager.Wait()
	require.True(t, f.manager.Status().IsStale)

	assert.True(t, f.manager.RecordActivity(ctx))
	f.manager.Wait()
	assert.False(t, f.manager.Status().IsStale)
}
