package domaincheck

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Emmraan/form-validator/pkg/kvstore"
)

const (
	cacheKeyPrefix = "email_domain:"
	defaultTTL     = 24 * time.Hour

	verdictAllow      = "allow"
	verdictDenyPrefix = "deny:"
)

// CachedChecker memoizes another Checker's verdicts in a key-value store.
// Cache failures are logged and absorbed; the inner checker always answers.
type CachedChecker struct {
	inner Checker
	store kvstore.Store
	ttl   time.Duration
	log   *slog.Logger
}

// CachedCheckerOption configures a CachedChecker.
type CachedCheckerOption func(*CachedChecker)

// WithTTL sets how long a verdict stays cached.
func WithTTL(ttl time.Duration) CachedCheckerOption {
	return func(c *CachedChecker) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func NewCachedChecker(inner Checker, store kvstore.Store, log *slog.Logger, opts ...CachedCheckerOption) *CachedChecker {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &CachedChecker{
		inner: inner,
		store: store,
		ttl:   defaultTTL,
		log:   log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns the cached verdict when present, otherwise consults the
// inner checker and caches the result.
func (c *CachedChecker) Check(ctx context.Context, domain string) (string, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	key := cacheKeyPrefix + domain

	if cached, found, err := c.store.Get(ctx, key); err != nil {
		c.log.Warn("domain cache read failed",
			slog.String("domain", domain),
			slog.Any("error", err))
	} else if found {
		return decodeVerdict(cached), nil
	}

	reason, err := c.inner.Check(ctx, domain)
	if err != nil {
		return reason, err
	}

	if err := c.store.Set(ctx, key, encodeVerdict(reason), c.ttl); err != nil {
		c.log.Warn("domain cache write failed",
			slog.String("domain", domain),
			slog.Any("error", err))
	}

	return reason, nil
}

func encodeVerdict(reason string) string {
	if reason == "" {
		return verdictAllow
	}
	return verdictDenyPrefix + reason
}

func decodeVerdict(v string) string {
	if v == verdictAllow {
		return ""
	}
	return strings.TrimPrefix(v, verdictDenyPrefix)
}
