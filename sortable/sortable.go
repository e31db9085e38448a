package sortable

import (
	"errors"

	"github.com/amp-labs/amp-ordering/compare"
	commonerrors "github.com/amp-labs/amp-ordering/errors"
)

// Order is the direction of a sort. The zero value is Asc.
type Order int

const (
	// Asc orders elements from least to greatest.
	Asc Order = iota
	// Desc orders elements from greatest to least.
	Desc
)

func (o Order) String() string {
	if o == Desc {
		return "desc"
	}

	return "asc"
}

// apply flips the comparator's answer for Desc. Operands are never swapped,
// so a failing pair reports the same error in either direction.
func (o Order) apply(result compare.Ordering) compare.Ordering {
	if o == Desc {
		return result.Reverse()
	}

	return result
}

// compatible checks one adjacent pair of a collection. A left operand with no
// comparator next to a right operand that has one is a mixed collection, so
// it is reported as a TypeError rather than a missing implementation.
func compatible(left, right any) error {
	return locate(left, right, compare.Compatible(left, right))
}

func locate(left, right any, err error) error {
	if err == nil || !errors.Is(err, commonerrors.ErrNotImplemented) {
		return err
	}

	if compare.Compatible(right, right) == nil {
		return commonerrors.NewTypeError(left, right)
	}

	return err
}

// validate scans keys left to right and reports the first incompatible
// adjacent pair. scalar is true when every key belongs to the same kernel
// kind, which lets the sort skip the registry entirely.
func validate[K any](keys []K) (scalar bool, err error) {
	if len(keys) < 2 { //nolint:mnd
		return false, nil
	}

	kind := compare.KindOf(keys[0])
	if kind != compare.KindOther {
		for i := 1; i < len(keys); i++ {
			if compare.KindOf(keys[i]) != kind {
				return false, commonerrors.NewTypeError(keys[i-1], keys[i])
			}
		}

		return true, nil
	}

	for i := 1; i < len(keys); i++ {
		if err := compatible(keys[i-1], keys[i]); err != nil {
			return false, err
		}
	}

	return false, nil
}

// comparator returns a three-way function for slices.SortStableFunc. Sort
// functions cannot fail, so the first error is stored in errp and every later
// call answers Equal.
func comparator[K any](scalar bool, order Order, errp *error) func(a, b K) int {
	if scalar {
		return func(a, b K) int {
			result, _ := compare.Terms(a, b)

			return int(order.apply(result))
		}
	}

	return func(a, b K) int {
		if *errp != nil {
			return 0
		}

		result, err := compare.Compare(a, b)
		if err != nil {
			*errp = locate(a, b, err)

			return 0
		}

		return int(order.apply(result))
	}
}
