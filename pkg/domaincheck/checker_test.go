package domaincheck_test

import (
	"context"
	"testing"
	"time"

	"github.com/Emmraan/form-validator/pkg/domaincheck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPChecker_EmptyDomain(t *testing.T) {
	t.Parallel()

	checker := domaincheck.NewHTTPChecker(nil)
	reason, err := checker.Check(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, domaincheck.ReasonUnverifiable, reason)
}

func TestHTTPChecker_UnreachableDomain(t *testing.T) {
	t.Parallel()

	checker := domaincheck.NewHTTPChecker(nil, domaincheck.WithTimeout(500*time.Millisecond))

	// Port 1 on loopback refuses connections immediately.
	reason, err := checker.Check(context.Background(), "127.0.0.1:1")
	require.NoError(t, err)
	assert.Equal(t, domaincheck.ReasonUnverifiable, reason)
}
