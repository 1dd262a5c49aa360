// Package domaincheck decides whether an email domain looks trustworthy.
// The HTTP checker fetches the domain's landing page and scans it for
// parked-domain and spam markers; results are cached for a day so repeat
// domains never trigger a second fetch.
package domaincheck

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Rejection reasons returned to callers. An empty reason means the domain
// is acceptable.
const (
	ReasonUnverifiable = "Email domain could not be verified."
	ReasonParked       = "Email domain appears to be parked or inactive."
)

// Checker reports whether an email domain is acceptable. The returned
// reason is empty for acceptable domains. Implementations treat their own
// transport failures as a conservative reject, never as an error.
type Checker interface {
	Check(ctx context.Context, domain string) (reason string, err error)
}

// markerPhrases flag landing pages of parked or for-sale domains.
var markerPhrases = []string{
	"domain is for sale",
	"buy this domain",
	"this domain is parked",
	"parked domain",
	"domain parking",
	"this domain has expired",
}

const defaultTimeout = 5 * time.Second

// HTTPChecker fetches https://<domain> with a bounded timeout and
// inspects the response body.
type HTTPChecker struct {
	client *resty.Client
	log    *slog.Logger
}

// HTTPCheckerOption configures an HTTPChecker.
type HTTPCheckerOption func(*HTTPChecker)

// WithTimeout bounds the fetch; a slow remote resolves as unverifiable
// rather than stalling the caller.
func WithTimeout(d time.Duration) HTTPCheckerOption {
	return func(c *HTTPChecker) {
		if d > 0 {
			c.client.SetTimeout(d)
		}
	}
}

func NewHTTPChecker(log *slog.Logger, opts ...HTTPCheckerOption) *HTTPChecker {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &HTTPChecker{
		client: resty.New().
			SetTimeout(defaultTimeout).
			SetRedirectPolicy(resty.FlexibleRedirectPolicy(3)),
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check fetches the domain's landing page. Timeouts and transport errors
// reject conservatively: an unknown reputation is flagged, not waved
// through.
func (c *HTTPChecker) Check(ctx context.Context, domain string) (string, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return ReasonUnverifiable, nil
	}

	resp, err := c.client.R().SetContext(ctx).Get("https://" + domain)
	if err != nil {
		c.log.Debug("domain fetch failed",
			slog.String("domain", domain),
			slog.Any("error", err))
		return ReasonUnverifiable, nil
	}

	body := strings.ToLower(string(resp.Body()))
	for _, phrase := range markerPhrases {
		if strings.Contains(body, phrase) {
			return ReasonParked, nil
		}
	}

	return "", nil
}
