// Package validate exposes the validation service over HTTP: the
// authenticated, rate-limited POST /api/validate endpoint and the public
// health probe.
package validate

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Emmraan/form-validator/pkg/ratelimit"
	"github.com/Emmraan/form-validator/pkg/requestid"
	"github.com/Emmraan/form-validator/pkg/validation"
)

// Options configures the module. Service, Limiter, and AuthToken are
// required; the rest have sensible defaults.
type Options struct {
	Service     *validation.Service
	Limiter     *ratelimit.SlidingWindow
	AuthToken   string
	CacheStatus func() string
	Log         *slog.Logger
}

// Module wires the validation service into an HTTP router.
type Module struct {
	service     *validation.Service
	cacheStatus func() string
	log         *slog.Logger
}

// NewRouter builds the module's router: request IDs on everything, bearer
// auth and the sliding-window limiter on the API route only. Non-POST
// requests bypass the limiter.
func NewRouter(opts Options) chi.Router {
	if opts.Service == nil {
		panic("validate.NewRouter: Service is required")
	}
	if opts.Limiter == nil {
		panic("validate.NewRouter: Limiter is required")
	}
	if opts.AuthToken == "" {
		panic("validate.NewRouter: AuthToken is required")
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := &Module{
		service:     opts.Service,
		cacheStatus: opts.CacheStatus,
		log:         log,
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Get("/health", m.handleHealth)

	r.Route("/api", func(api chi.Router) {
		api.Use(bearerAuth(opts.AuthToken))
		api.Use(ratelimit.Middleware(opts.Limiter, ratelimit.ByClientIP,
			ratelimit.WithLogger(log),
			ratelimit.WithSkipFunc(func(r *http.Request) bool {
				return r.Method != http.MethodPost
			}),
			ratelimit.WithOnLimitReached(rejectRateLimited),
		))
		api.Post("/validate", m.handleValidate)
	})

	return r
}

// rejectRateLimited renders the 429 body in the same shape as field
// validation errors so clients parse one error format.
func rejectRateLimited(w http.ResponseWriter, r *http.Request, result *ratelimit.Result) {
	retryAfter := result.RetryAfterSeconds()
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

	writeFieldErrors(w, http.StatusTooManyRequests, []validation.FieldError{
		{Path: []string{"TOO_MANY_REQUESTS"}, Message: "Too many requests, please try again later."},
	})
}
