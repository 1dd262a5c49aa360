// Package config loads configuration structs from environment variables.
// A .env file, when present, is loaded once per process before parsing;
// configs themselves are plain values handed to constructors, never
// process-global state.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the struct from environment variables based on `env`
// field tags.
//
// Example:
//
//	type ServerConfig struct {
//		Port      int    `env:"PORT" envDefault:"8080"`
//		AuthToken string `env:"AUTH_TOKEN,required"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Missing .env files are fine; the environment may be set directly.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics on failure, for configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
