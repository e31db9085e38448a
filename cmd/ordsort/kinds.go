package main

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/amp-labs/amp-ordering/decimal"
	"github.com/amp-labs/amp-ordering/sortable"
	"github.com/google/uuid"
)

const kindAuto = "auto"

// kinds lists every value of --kind. The prompt shows them in natural order.
var kinds = []string{ //nolint:gochecknoglobals
	kindAuto, "number", "string", "natural", "folded", "date",
	"time", "duration", "version", "uuid", "ip", "decimal",
}

var (
	errUnknownKind = errors.New("unknown kind")
	errBadInput    = errors.New("bad input")
)

// parser turns the text of one entry into a value the compare package can order.
type parser func(raw string) (any, error)

var parsers = map[string]parser{ //nolint:gochecknoglobals
	kindAuto: parseAuto,
	"number": parseNumber,
	"string": func(raw string) (any, error) { return raw, nil },
	"natural": func(raw string) (any, error) {
		return sortable.Natural(raw), nil
	},
	"folded": func(raw string) (any, error) {
		return sortable.Folded(raw), nil
	},
	"date":     typed(parseDate),
	"time":     typed(parseTime),
	"duration": typed(time.ParseDuration),
	"version":  typed(semver.NewVersion),
	"uuid":     typed(uuid.Parse),
	"ip":       typed(netip.ParseAddr),
	"decimal":  typed(decimal.Parse),
}

func parserFor(kind string) (parser, error) {
	p, found := parsers[kind]
	if !found {
		return nil, fmt.Errorf("%w: %q (want one of %v)", errUnknownKind, kind, kinds)
	}

	return func(raw string) (any, error) {
		value, err := p(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid %s: %w", errBadInput, raw, kind, err)
		}

		return value, nil
	}, nil
}

func typed[T any](parse func(string) (T, error)) parser {
	return func(raw string) (any, error) {
		value, err := parse(raw)
		if err != nil {
			return nil, err
		}

		return value, nil
	}
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse(time.DateOnly, raw)
}

func parseTime(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, raw)
}

// parseNumber keeps integers exact and falls back to float64 for everything else.
func parseNumber(raw string) (any, error) {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// parseAuto tries a number, then a timestamp, then a date, and otherwise
// keeps the text as a string.
func parseAuto(raw string) (any, error) {
	if n, err := parseNumber(raw); err == nil {
		return n, nil
	}

	if t, err := parseTime(raw); err == nil {
		return t, nil
	}

	if d, err := parseDate(raw); err == nil {
		return d, nil
	}

	return raw, nil
}
