package ratelimit_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Emmraan/form-validator/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlidingWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		store       ratelimit.WindowStore
		limit       int
		window      time.Duration
		expectError error
	}{
		{"nil store", nil, 10, time.Second, ratelimit.ErrStoreRequired},
		{"zero limit", ratelimit.NewMemoryStore(), 0, time.Second, ratelimit.ErrInvalidLimit},
		{"negative limit", ratelimit.NewMemoryStore(), -1, time.Second, ratelimit.ErrInvalidLimit},
		{"zero window", ratelimit.NewMemoryStore(), 10, 0, ratelimit.ErrInvalidInterval},
		{"valid configuration", ratelimit.NewMemoryStore(), 10, time.Second, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sw, err := ratelimit.NewSlidingWindow(tt.store, tt.limit, tt.window)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, sw)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, sw)
			}
		})
	}
}

func TestSlidingWindow_Allow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		sw, err := ratelimit.NewSlidingWindow(ratelimit.NewMemoryStore(), 5, time.Second)
		require.NoError(t, err)

		result, err := sw.Allow(ctx, "")
		assert.ErrorIs(t, err, ratelimit.ErrKeyRequired)
		assert.Nil(t, result)
	})

	t.Run("exactly limit admitted, next rejected", func(t *testing.T) {
		t.Parallel()
		sw, err := ratelimit.NewSlidingWindow(ratelimit.NewMemoryStore(), 100, time.Minute)
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			result, err := sw.Allow(ctx, "client")
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be admitted", i+1)
		}

		result, err := sw.Allow(ctx, "client")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, 0, result.Remaining)
		assert.Positive(t, result.RetryAfterSeconds())
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		sw, err := ratelimit.NewSlidingWindow(ratelimit.NewMemoryStore(), 1, time.Minute)
		require.NoError(t, err)

		a, err := sw.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, a.Allowed)

		b, err := sw.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, b.Allowed)
	})

	t.Run("window slides", func(t *testing.T) {
		t.Parallel()
		sw, err := ratelimit.NewSlidingWindow(ratelimit.NewMemoryStore(), 2, 50*time.Millisecond)
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			result, err := sw.Allow(ctx, "sliding")
			require.NoError(t, err)
			assert.True(t, result.Allowed)
		}

		result, err := sw.Allow(ctx, "sliding")
		require.NoError(t, err)
		assert.False(t, result.Allowed)

		time.Sleep(60 * time.Millisecond)

		result, err = sw.Allow(ctx, "sliding")
		require.NoError(t, err)
		assert.True(t, result.Allowed, "a fresh window should admit again")
	})

	t.Run("concurrent requests never under-count", func(t *testing.T) {
		t.Parallel()
		sw, err := ratelimit.NewSlidingWindow(ratelimit.NewMemoryStore(), 50, time.Minute)
		require.NoError(t, err)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			allowed int
		)
		for i := 0; i < 80; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result, err := sw.Allow(ctx, "burst")
				if err == nil && result.Allowed {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, allowed)
	})
}

func TestSlidingWindow_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sw, err := ratelimit.NewSlidingWindow(ratelimit.NewMemoryStore(), 1, time.Minute)
	require.NoError(t, err)

	result, err := sw.Allow(ctx, "k")
	require.NoError(t, err)
	require.True(t, result.Allowed)

	result, err = sw.Allow(ctx, "k")
	require.NoError(t, err)
	require.False(t, result.Allowed)

	require.NoError(t, sw.Reset(ctx, "k"))

	result, err = sw.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	assert.ErrorIs(t, sw.Reset(ctx, ""), ratelimit.ErrKeyRequired)
}

func TestResult_RetryAfterSeconds(t *testing.T) {
	t.Parallel()

	allowed := &ratelimit.Result{Allowed: true, RetryAfter: 5 * time.Second}
	assert.Zero(t, allowed.RetryAfterSeconds())

	rejected := &ratelimit.Result{Allowed: false, RetryAfter: 1500 * time.Millisecond}
	assert.Equal(t, 2, rejected.RetryAfterSeconds())

	clamped := &ratelimit.Result{Allowed: false, RetryAfter: -time.Second}
	assert.Zero(t, clamped.RetryAfterSeconds())
}
