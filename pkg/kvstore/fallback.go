package kvstore

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"
)

// Status values reported by Fallback for health reporting.
const (
	StatusConnected = "connected"
	StatusFallback  = "fallback"
)

// Fallback routes calls to a primary Store and degrades per call to an
// in-process backup when the primary fails. Degradation is transparent to
// callers and logged once per transition; the backup is best-effort and
// never treated as authoritative across processes.
type Fallback struct {
	primary  Store
	backup   *MemoryStore
	log      *slog.Logger
	degraded atomic.Bool
}

// NewFallback wraps primary with backup. A nil primary pins the store to
// fallback mode, which lets the process start without Redis.
func NewFallback(primary Store, backup *MemoryStore, log *slog.Logger) *Fallback {
	if backup == nil {
		backup = NewMemoryStore()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	f := &Fallback{primary: primary, backup: backup, log: log}
	if primary == nil {
		f.degraded.Store(true)
	}
	return f
}

func (f *Fallback) Get(ctx context.Context, key string) (string, bool, error) {
	if f.primary != nil {
		val, ok, err := f.primary.Get(ctx, key)
		if err == nil {
			f.markConnected()
			return val, ok, nil
		}
		f.markDegraded(err)
	}
	return f.backup.Get(ctx, key)
}

func (f *Fallback) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if f.primary != nil {
		if err := f.primary.Set(ctx, key, value, ttl); err == nil {
			f.markConnected()
			return nil
		} else {
			f.markDegraded(err)
		}
	}
	return f.backup.Set(ctx, key, value, ttl)
}

func (f *Fallback) Exists(ctx context.Context, key string) (bool, error) {
	if f.primary != nil {
		ok, err := f.primary.Exists(ctx, key)
		if err == nil {
			f.markConnected()
			return ok, nil
		}
		f.markDegraded(err)
	}
	return f.backup.Exists(ctx, key)
}

func (f *Fallback) Healthy(ctx context.Context) error {
	if f.primary == nil {
		return f.backup.Healthy(ctx)
	}
	return f.primary.Healthy(ctx)
}

// Status reports whether the primary store served the most recent call.
func (f *Fallback) Status() string {
	if f.degraded.Load() {
		return StatusFallback
	}
	return StatusConnected
}

func (f *Fallback) markDegraded(err error) {
	if f.degraded.CompareAndSwap(false, true) {
		f.log.Warn("cache store unreachable, falling back to in-process cache", slog.Any("error", err))
	}
}

func (f *Fallback) markConnected() {
	if f.primary == nil {
		return
	}
	if f.degraded.CompareAndSwap(true, false) {
		f.log.Info("cache store reachable again")
	}
}
