// Package envutil reads typed configuration from environment variables.
package envutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
)

// get returns a Reader for the given environment variable key. An override
// placed in the context with WithEnvOverride wins over the process environment.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool returns a Reader that parses the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), strconv.ParseBool), opts)
}

// SlogLevel returns a Reader that parses debug, info, warn or error (any case).
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), parseSlogLevel), opts)
}

// OneOf returns a Reader whose value must be one of the allowed strings,
// compared case-insensitively and returned in lower case.
func OneOf(ctx context.Context, key string, allowed []string, opts ...Option[string]) Reader[string] {
	rdr := Map(get(ctx, key), func(val string) (string, error) {
		return strings.ToLower(strings.TrimSpace(val)), nil
	})

	allowedOnly := Validate(func(val string) error {
		if !slices.Contains(allowed, val) {
			return fmt.Errorf("%w: %q is not one of %v", ErrBadEnvVar, val, allowed)
		}

		return nil
	})

	return apply(rdr, append([]Option[string]{allowedOnly}, opts...))
}

func parseSlogLevel(val string) (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(strings.TrimSpace(val)))

	return level, err
}
