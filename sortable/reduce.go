package sortable

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/amp-ordering/compare"
	commonerrors "github.com/amp-labs/amp-ordering/errors"
)

// Max returns the greatest element of items. Among equal elements the first
// one wins. An empty slice yields errors.ErrEmpty.
func Max[T any](items []T) (T, error) {
	return reduce("max", slices.Values(items), self[T], compare.Less)
}

// MaxSeq is Max over an arbitrary sequence.
func MaxSeq[T any](seq iter.Seq[T]) (T, error) {
	return reduce("max", seq, self[T], compare.Less)
}

// Min returns the least element of items. Among equal elements the first
// one wins. An empty slice yields errors.ErrEmpty.
func Min[T any](items []T) (T, error) {
	return reduce("min", slices.Values(items), self[T], compare.Greater)
}

// MinSeq is Min over an arbitrary sequence.
func MinSeq[T any](seq iter.Seq[T]) (T, error) {
	return reduce("min", seq, self[T], compare.Greater)
}

// MaxBy returns the element with the greatest key. key is called once per
// element and the earliest element wins among equal keys.
func MaxBy[T, K any](items []T, key func(T) K) (T, error) {
	return reduce("max by", slices.Values(items), key, compare.Less)
}

// MaxBySeq is MaxBy over an arbitrary sequence.
func MaxBySeq[T, K any](seq iter.Seq[T], key func(T) K) (T, error) {
	return reduce("max by", seq, key, compare.Less)
}

// MinBy returns the element with the least key. key is called once per
// element and the earliest element wins among equal keys.
func MinBy[T, K any](items []T, key func(T) K) (T, error) {
	return reduce("min by", slices.Values(items), key, compare.Greater)
}

// MinBySeq is MinBy over an arbitrary sequence.
func MinBySeq[T, K any](seq iter.Seq[T], key func(T) K) (T, error) {
	return reduce("min by", seq, key, compare.Greater)
}

func self[T any](v T) T {
	return v
}

// reduce keeps a running best and replaces it only when the best compares
// as replace against the next key, so ties never displace an earlier element.
func reduce[T, K any](op string, seq iter.Seq[T], key func(T) K, replace compare.Ordering) (T, error) {
	var (
		best    T
		bestKey K
		seen    bool
	)

	for item := range seq {
		k := key(item)

		if !seen {
			best, bestKey, seen = item, k, true

			continue
		}

		result, err := compare.Compare(bestKey, k)
		if err != nil {
			var zero T

			return zero, locate(bestKey, k, err)
		}

		if result == replace {
			best, bestKey = item, k
		}
	}

	if !seen {
		return best, fmt.Errorf("%w: %s", commonerrors.ErrEmpty, op)
	}

	return best, nil
}
