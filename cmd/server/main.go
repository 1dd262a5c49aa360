package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Emmraan/form-validator/modules/validate"
	"github.com/Emmraan/form-validator/pkg/config"
	"github.com/Emmraan/form-validator/pkg/domaincheck"
	"github.com/Emmraan/form-validator/pkg/httpserver"
	"github.com/Emmraan/form-validator/pkg/kvstore"
	"github.com/Emmraan/form-validator/pkg/logger"
	"github.com/Emmraan/form-validator/pkg/ratelimit"
	"github.com/Emmraan/form-validator/pkg/redis"
	"github.com/Emmraan/form-validator/pkg/validation"
)

type appConfig struct {
	Port               int           `env:"PORT" envDefault:"8080"`
	Environment        string        `env:"ENVIRONMENT" envDefault:"development"`
	AuthToken          string        `env:"AUTH_TOKEN,required"`
	RateLimit          int           `env:"RATE_LIMIT" envDefault:"100"`
	RateWindow         time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
	DomainCheckTimeout time.Duration `env:"DOMAIN_CHECK_TIMEOUT" envDefault:"5s"`
	DomainCacheTTL     time.Duration `env:"DOMAIN_CACHE_TTL" envDefault:"24h"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Environment),
		logger.WithService("form-validator", cfg.Environment),
	)

	var redisCfg redis.Config
	if err := config.Load(&redisCfg); err != nil {
		return err
	}

	// Redis is optional: without it the service runs on in-process stores.
	redisClient, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		log.Warn("redis unavailable, using in-process fallback", slog.Any("error", err))
		redisClient = nil
	}

	memStore := kvstore.NewMemoryStore()
	defer memStore.Close()

	var cache *kvstore.Fallback
	var limiterStore ratelimit.WindowStore
	if redisClient != nil {
		cache = kvstore.NewFallback(kvstore.NewRedisStore(redisClient), memStore, log)
		limiterStore = ratelimit.NewRedisStore(redisClient)
	} else {
		cache = kvstore.NewFallback(nil, memStore, log)
		rlStore := ratelimit.NewMemoryStore()
		defer rlStore.Close()
		limiterStore = rlStore
	}

	limiter, err := ratelimit.NewSlidingWindow(limiterStore, cfg.RateLimit, cfg.RateWindow)
	if err != nil {
		return err
	}

	domains := domaincheck.NewCachedChecker(
		domaincheck.NewHTTPChecker(log, domaincheck.WithTimeout(cfg.DomainCheckTimeout)),
		cache,
		log,
		domaincheck.WithTTL(cfg.DomainCacheTTL),
	)

	router := validate.NewRouter(validate.Options{
		Service:     validation.New(domains, log),
		Limiter:     limiter,
		AuthToken:   cfg.AuthToken,
		CacheStatus: cache.Status,
		Log:         log,
	})

	srv := httpserver.New(
		httpserver.WithAddr(fmt.Sprintf(":%d", cfg.Port)),
		httpserver.WithLogger(log),
		httpserver.WithReadTimeout(10*time.Second),
		httpserver.WithWriteTimeout(30*time.Second),
	)
	return srv.Run(ctx, router)
}
