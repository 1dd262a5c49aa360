package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements WindowStore in process memory. It backs the
// limiter when Redis is not configured and keeps single-instance
// deployments fully functional; multi-instance deployments will
// under-enforce with it since each process counts alone.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	cleanupOnce     sync.Once
}

type window struct {
	timestamps []time.Time
	span       time.Duration
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often idle windows are dropped.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.cleanupInterval = interval
		}
	}
}

// NewMemoryStore creates an in-memory window store with a background
// janitor for idle keys.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		windows:         make(map[string]*window),
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.cleanupLoop()

	return s
}

func (s *MemoryStore) RecordAndCount(ctx context.Context, key string, now time.Time, span time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok {
		w = &window{}
		s.windows[key] = w
	}
	w.span = span

	cutoff := now.Add(-span)
	kept := make([]time.Time, 0, len(w.timestamps)+1)
	for _, ts := range w.timestamps {
		if !ts.Before(cutoff) {
			kept = append(kept, ts)
		}
	}
	kept = append(kept, now)
	w.timestamps = kept

	return int64(len(kept)), kept[0], nil
}

func (s *MemoryStore) Reset(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.windows, key)
	return nil
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCleanup:
			return
		}
	}
}

// cleanup drops windows whose newest entry has already slid out, matching
// the key expiry behavior of the Redis store.
func (s *MemoryStore) cleanup() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, w := range s.windows {
		if len(w.timestamps) == 0 {
			delete(s.windows, key)
			continue
		}
		newest := w.timestamps[len(w.timestamps)-1]
		if now.Sub(newest) > w.span {
			delete(s.windows, key)
		}
	}
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() error {
	s.cleanupOnce.Do(func() {
		close(s.stopCleanup)
	})
	return nil
}
