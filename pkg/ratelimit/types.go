package ratelimit

import (
	"context"
	"math"
	"time"
)

// Result contains the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the request is admitted.
	Allowed bool

	// Limit is the maximum number of requests allowed per window.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// RetryAfter is how long to wait before the next request can be
	// admitted. Zero when the request was allowed.
	RetryAfter time.Duration
}

// RetryAfterSeconds returns the retry hint rounded up to whole seconds,
// clamped at zero, as used for the Retry-After header.
func (r *Result) RetryAfterSeconds() int {
	if r.Allowed || r.RetryAfter <= 0 {
		return 0
	}
	return int(math.Ceil(r.RetryAfter.Seconds()))
}

// WindowStore records request timestamps per key inside a rolling window.
type WindowStore interface {
	// RecordAndCount performs the admission transaction for one request as
	// a single atomic operation against the store: append the timestamp to
	// the key's window, purge entries older than now minus the window,
	// refresh the key's expiry to one full window, and return the resulting
	// entry count together with the oldest surviving timestamp.
	RecordAndCount(ctx context.Context, key string, now time.Time, window time.Duration) (count int64, oldest time.Time, err error)

	// Reset discards all recorded timestamps for the key.
	Reset(ctx context.Context, key string) error
}
