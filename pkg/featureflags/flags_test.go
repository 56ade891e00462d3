package featureflags

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_Defaults(t *testing.T) {
	m := NewEnvManager("TEST_FF_")
	ctx := context.Background()

	for _, flag := range All {
		assert.Equal(t, Default(flag), m.IsEnabled(ctx, flag), string(flag))
	}
	assert.False(t, m.IsEnabled(ctx, FeatureFlag("unknown")))
}

func TestEnvManager_EnvValues(t *testing.T) {
	m := NewEnvManager("TEST_FF_")
	ctx := context.Background()

	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"Enabled", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"disabled", false},
		{"OFF", false},
		{"garbage", Default(HTMLRender)},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_FF_HTML_RENDER", tt.value)
			assert.Equal(t, tt.want, m.IsEnabled(ctx, HTMLRender))
		})
	}
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	t.Setenv("FEATURE_ACTIVITY_REFRESH", "true")
	m := NewEnvManager("")

	m.SetEnabled(ActivityRefresh, false)
	assert.False(t, m.IsEnabled(context.Background(), ActivityRefresh))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	t.Setenv("TEST_FF_BACKGROUND_REFRESH", "false")
	m := NewEnvManager("TEST_FF_")

	flags := m.GetAllFlags()
	assert.Len(t, flags, len(All))
	assert.False(t, flags[BackgroundRefresh])
	assert.True(t, flags[HTMLRender])
}

func TestStaticManager(t *testing.T) {
	m := NewStaticManager(map[FeatureFlag]bool{HTMLRender: true})
	ctx := context.Background()

	assert.True(t, m.IsEnabled(ctx, HTMLRender))
	assert.False(t, m.IsEnabled(ctx, ActivityRefresh))

	m.SetEnabled(ActivityRefresh, true)
	assert.True(t, m.IsEnabled(ctx, ActivityRefresh))
	assert.Equal(t, map[FeatureFlag]bool{HTMLRender: true, ActivityRefresh: true}, m.GetAllFlags())
}

func TestContextIntegration(t *testing.T) {
	m := NewStaticManager(map[FeatureFlag]bool{BackgroundRefresh: true})
	ctx := WithManager(context.Background(), m)

	assert.True(t, IsEnabled(ctx, BackgroundRefresh))
	assert.False(t, IsEnabled(context.Background(), BackgroundRefresh))
}

func TestConcurrentAccess(t *testing.T) {
	m := NewEnvManager("TEST_FF_")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			m.SetEnabled(HTMLRender, i%2 == 0)
		}(i)
		go func() {
			defer wg.Done()
			_ = m.IsEnabled(ctx, HTMLRender)
			_ = m.GetAllFlags()
		}()
	}
	wg.Wait()
}
