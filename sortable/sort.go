package sortable

import (
	"iter"
	"slices"

	"github.com/amp-labs/amp-ordering/compare"
	"golang.org/x/exp/constraints"
)

// Sort returns a sorted copy of items. The input slice is never modified.
//
// Slices of predeclared ordered types ([]int, []string, []float64, ...) are
// sorted natively. Other slices are checked left to right first: the first
// adjacent pair that cannot be compared is returned as an error and no slice
// is returned. Elements that compare Equal keep their relative order.
func Sort[T any](items []T, order Order) ([]T, error) {
	sorted := slices.Clone(items)

	if err := sortInPlace(sorted, order); err != nil {
		return nil, err
	}

	return sorted, nil
}

// SortSeq collects seq and sorts it like Sort. It accepts unordered sources
// such as maps.Keys.
func SortSeq[T any](seq iter.Seq[T], order Order) ([]T, error) {
	sorted := slices.Collect(seq)

	if err := sortInPlace(sorted, order); err != nil {
		return nil, err
	}

	return sorted, nil
}

// SortBy returns a copy of items sorted by key. key is called exactly once per
// element and each element travels with its key, so equal keys keep the input
// order of their elements.
func SortBy[T, K any](items []T, key func(T) K, order Order) ([]T, error) {
	return sortBy(items, key, order)
}

// SortBySeq collects seq and sorts it like SortBy.
func SortBySeq[T, K any](seq iter.Seq[T], key func(T) K, order Order) ([]T, error) {
	return sortBy(slices.Collect(seq), key, order)
}

func sortInPlace[T any](items []T, order Order) error {
	if sortNative(items, order) {
		return nil
	}

	scalar, err := validate(items)
	if err != nil {
		return err
	}

	slices.SortStableFunc(items, comparator[T](scalar, order, &err))

	return err
}

//nolint:cyclop
func sortNative[T any](items []T, order Order) bool {
	switch s := any(items).(type) {
	case []int:
		sortIntegers(s, order)
	case []int8:
		sortIntegers(s, order)
	case []int16:
		sortIntegers(s, order)
	case []int32:
		sortIntegers(s, order)
	case []int64:
		sortIntegers(s, order)
	case []uint:
		sortIntegers(s, order)
	case []uint8:
		sortIntegers(s, order)
	case []uint16:
		sortIntegers(s, order)
	case []uint32:
		sortIntegers(s, order)
	case []uint64:
		sortIntegers(s, order)
	case []uintptr:
		sortIntegers(s, order)
	case []string:
		sortIntegers(s, order)
	case []float32:
		sortFloats(s, order)
	case []float64:
		sortFloats(s, order)
	default:
		return false
	}

	return true
}

// sortIntegers handles types whose equal values are indistinguishable, so an
// unstable sort followed by a reversal is as good as a stable descending sort.
func sortIntegers[E constraints.Integer | ~string](s []E, order Order) {
	slices.Sort(s)

	if order == Desc {
		slices.Reverse(s)
	}
}

// sortFloats keeps -0 and +0 (which compare Equal) in input order.
func sortFloats[E constraints.Float](s []E, order Order) {
	slices.SortStableFunc(s, func(a, b E) int {
		return int(order.apply(compare.Native(a, b)))
	})
}

func sortBy[T, K any](items []T, key func(T) K, order Order) ([]T, error) {
	keys := make([]K, len(items))
	for i, item := range items {
		keys[i] = key(item)
	}

	if sorted, ok := sortByNative(items, keys, order); ok {
		return sorted, nil
	}

	scalar, err := validate(keys)
	if err != nil {
		return nil, err
	}

	cmpKeys := comparator[K](scalar, order, &err)
	index := identity(len(items))

	slices.SortStableFunc(index, func(i, j int) int {
		return cmpKeys(keys[i], keys[j])
	})

	if err != nil {
		return nil, err
	}

	return gather(items, index), nil
}

func sortByNative[T, K any](items []T, keys []K, order Order) ([]T, bool) {
	switch ks := any(keys).(type) {
	case []int:
		return sortKeyed(items, ks, order), true
	case []int64:
		return sortKeyed(items, ks, order), true
	case []uint64:
		return sortKeyed(items, ks, order), true
	case []float64:
		return sortKeyed(items, ks, order), true
	case []string:
		return sortKeyed(items, ks, order), true
	default:
		return nil, false
	}
}

func sortKeyed[T any, E constraints.Ordered](items []T, keys []E, order Order) []T {
	index := identity(len(items))

	slices.SortStableFunc(index, func(i, j int) int {
		return int(order.apply(compare.Native(keys[i], keys[j])))
	})

	return gather(items, index)
}

// identity returns the permutation 0, 1, ..., n-1. Sorting a permutation
// instead of the elements keeps every element bound to its key.
func identity(n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}

	return index
}

func gather[T any](items []T, index []int) []T {
	sorted := make([]T, len(index))
	for i, j := range index {
		sorted[i] = items[j]
	}

	return sorted
}
