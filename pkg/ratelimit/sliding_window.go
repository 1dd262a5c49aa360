package ratelimit

import (
	"context"
	"time"
)

// SlidingWindow is a rate limiter that tracks individual request
// timestamps within a continuously moving time window. The request being
// checked is always recorded, even when the window is already full, so a
// client hammering a saturated window keeps pushing its reset forward.
type SlidingWindow struct {
	store  WindowStore
	limit  int
	window time.Duration
}

// NewSlidingWindow creates a sliding window limiter admitting up to limit
// requests per window per key.
func NewSlidingWindow(store WindowStore, limit int, window time.Duration) (*SlidingWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidInterval
	}

	return &SlidingWindow{
		store:  store,
		limit:  limit,
		window: window,
	}, nil
}

// Allow records one request for the key and reports whether it is
// admitted. Admission and the counter update happen in one atomic store
// transaction, so two concurrent requests from the same key never
// under-count each other.
func (sw *SlidingWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := time.Now()

	count, oldest, err := sw.store.RecordAndCount(ctx, key, now, sw.window)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Allowed:   count <= int64(sw.limit),
		Limit:     sw.limit,
		Remaining: max(0, sw.limit-int(count)),
	}

	if !result.Allowed {
		// The window opens again when the oldest entry slides out.
		retry := oldest.Add(sw.window).Sub(now)
		if retry < 0 {
			retry = 0
		}
		result.RetryAfter = retry
	}

	return result, nil
}

// Reset clears the recorded window for the key.
func (sw *SlidingWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return sw.store.Reset(ctx, key)
}
