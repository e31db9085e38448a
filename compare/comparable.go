package compare

import (
	"fmt"

	"github.com/amp-labs/amp-ordering/errors"
)

// Ordering is the result of a three-way comparison. Its integer values match
// the convention of cmp.Compare, so an Ordering can be handed to slices.SortFunc
// and friends after a plain int conversion.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// OrderingOf converts the result of a three-way comparator into an Ordering.
// Only -1, 0 and 1 are accepted; anything else is a broken comparator.
func OrderingOf(result int) (Ordering, error) {
	switch result {
	case -1, 0, 1:
		return Ordering(result), nil
	default:
		return Equal, fmt.Errorf("%w: comparator returned %d", errors.ErrInvalidOrdering, result)
	}
}

// Reverse flips the polarity of the ordering. Equal stays Equal.
func (o Ordering) Reverse() Ordering {
	return -o
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "lt"
	case Equal:
		return "eq"
	case Greater:
		return "gt"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Composite is implemented by fixed-arity values (tuples) that are ordered
// element by element. Two composites are comparable when their arity matches
// and their elements are pairwise comparable.
type Composite interface {
	Arity() int
	Element(i int) any
}
