// Package sortable sorts and reduces collections through the comparison
// protocol of [github.com/amp-labs/amp-ordering/compare].
//
// # Overview
//
// Every algorithm comes in a slice form and an [iter.Seq] form:
//
//   - [Sort] / [SortSeq] return a new sorted slice in the requested [Order].
//   - [SortBy] / [SortBySeq] sort elements by a derived key.
//   - [Max], [Min] / [MaxSeq], [MinSeq] return the greatest or least element.
//   - [MaxBy], [MinBy] / [MaxBySeq], [MinBySeq] do the same by key.
//
// The Seq forms accept unordered sources, so sets kept as map keys can be
// sorted or reduced directly:
//
//	tags := map[string]struct{}{"b": {}, "a": {}, "c": {}}
//	sorted, err := sortable.SortSeq(maps.Keys(tags), sortable.Asc) // [a b c]
//
// # Errors
//
// A collection must be homogeneous. Before sorting, adjacent elements are
// checked left to right and the first pair that cannot be ordered is returned
// as a *errors.TypeError carrying both elements:
//
//	_, err := sortable.Sort([]any{day1, nil, day2}, sortable.Asc)
//	// err: wrong type: cannot compare time.Date(...) (time.Time) with <nil> (<nil>)
//
// Failures are atomic: when an error is returned the result is nil and the
// input is untouched. Reductions return errors.ErrEmpty for an empty input.
//
// # Fast paths
//
// Slices of predeclared ordered types ([]int, []float64, []string, ...) are
// sorted with the standard library without boxing. Collections whose elements
// (or keys) all belong to one scalar kind are validated in one pass and then
// ordered by [compare.Terms], bypassing the comparator registry.
//
// # Ties
//
// Sorting is stable: elements that compare Equal keep their input order in
// both directions, because [Desc] flips the comparator rather than reversing
// an ascending result. Reductions keep the earliest of several equal elements.
//
// # String orders
//
// [Natural] and [Folded] are string types registered with their own
// comparators, for natural ("file9" < "file10") and case-insensitive ordering.
package sortable
