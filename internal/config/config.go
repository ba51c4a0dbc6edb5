// Package config loads typed configuration structs from environment
// variables, with an optional .env file for local development.
//
// Each struct type is parsed at most once per process; later calls for the
// same type are served from an in-memory cache. Fields are annotated with
// `env` tags understood by github.com/caarlos0/env:
//
//	type SMTPConfig struct {
//	    Host string `env:"SMTP_HOST,required"`
//	    Port int    `env:"SMTP_PORT" envDefault:"587"`
//	}
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParse is returned when the environment cannot be parsed into the
	// target struct.
	ErrParse = errors.New("config: failed to parse environment")
	// ErrNilTarget is returned when Load receives a nil pointer.
	ErrNilTarget = errors.New("config: nil target")
)

var (
	mu     sync.Mutex
	loaded = make(map[string]any)

	dotenvOnce sync.Once
)

// Load populates cfg from the process environment, loading the default .env
// file first if one exists. The parsed value is cached by concrete type, so
// every caller asking for the same config type sees the same snapshot.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}

	dotenvOnce.Do(func() {
		// A missing .env file is fine; the environment itself wins anyway.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.Lock()
	defer mu.Unlock()

	if v, ok := loaded[key]; ok {
		*cfg = v.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParse, err)
	}

	loaded[key] = *cfg
	return nil
}

// MustLoad is Load but panics on failure. Use it for configuration the
// process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Reset drops all cached configuration. Intended for tests that mutate the
// environment between loads.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	loaded = make(map[string]any)
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
