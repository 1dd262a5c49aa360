package domaincheck_test

import (
	"context"
	"testing"
	"time"

	"github.com/Emmraan/form-validator/pkg/domaincheck"
	"github.com/Emmraan/form-validator/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingChecker struct {
	reason string
	calls  int
}

func (c *countingChecker) Check(_ context.Context, _ string) (string, error) {
	c.calls++
	return c.reason, nil
}

func TestCachedChecker_CachesAllow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := &countingChecker{reason: ""}
	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	checker := domaincheck.NewCachedChecker(inner, store, nil)

	reason, err := checker.Check(ctx, "example.com")
	require.NoError(t, err)
	assert.Empty(t, reason)

	reason, err = checker.Check(ctx, "example.com")
	require.NoError(t, err)
	assert.Empty(t, reason)

	assert.Equal(t, 1, inner.calls, "second lookup must hit the cache")
}

func TestCachedChecker_CachesDenyWithReason(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := &countingChecker{reason: domaincheck.ReasonParked}
	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	checker := domaincheck.NewCachedChecker(inner, store, nil)

	reason, err := checker.Check(ctx, "parked.example")
	require.NoError(t, err)
	assert.Equal(t, domaincheck.ReasonParked, reason)

	reason, err = checker.Check(ctx, "parked.example")
	require.NoError(t, err)
	assert.Equal(t, domaincheck.ReasonParked, reason)

	assert.Equal(t, 1, inner.calls)
}

func TestCachedChecker_NormalizesDomain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := &countingChecker{reason: ""}
	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	checker := domaincheck.NewCachedChecker(inner, store, nil)

	_, err := checker.Check(ctx, "Example.COM")
	require.NoError(t, err)
	_, err = checker.Check(ctx, "  example.com  ")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
}

func TestCachedChecker_ExpiredEntryRefetches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := &countingChecker{reason: ""}
	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	checker := domaincheck.NewCachedChecker(inner, store, nil,
		domaincheck.WithTTL(10*time.Millisecond))

	_, err := checker.Check(ctx, "example.com")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = checker.Check(ctx, "example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
