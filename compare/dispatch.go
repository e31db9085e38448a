package compare

import (
	"reflect"

	"github.com/amp-labs/amp-ordering/errors"
)

// Compare orders left against right.
//
// Resolution is driven by left: a scalar left requires a scalar right of the
// same kind, a registered left requires a right of the identical type, and a
// Composite left requires a Composite right of the same arity. Incompatible
// operands yield a *errors.TypeError. A left operand with no comparator at all
// (including an untyped nil) yields a *errors.NoImplementationError, so
// Compare(a, b) and Compare(b, a) may fail with different error kinds.
func Compare(left, right any) (Ordering, error) {
	if KindOf(left) != KindOther {
		result, ok := Terms(left, right)
		if !ok {
			return Equal, errors.NewTypeError(left, right)
		}

		return result, nil
	}

	if e, found := lookup(reflect.TypeOf(left)); found {
		return e.invoke(left, right)
	}

	if composite, ok := left.(Composite); ok {
		return compareComposite(composite, right)
	}

	return Equal, errors.NewNoImplementationError(left)
}

// Compatible reports whether Compare(left, right) could succeed, without
// ordering anything. It returns the error Compare would return for a type
// mismatch, or nil.
func Compatible(left, right any) error {
	if kind := KindOf(left); kind != KindOther {
		if KindOf(right) != kind {
			return errors.NewTypeError(left, right)
		}

		return nil
	}

	if e, found := lookup(reflect.TypeOf(left)); found {
		return e.check(left, right)
	}

	if composite, ok := left.(Composite); ok {
		return compatibleComposite(composite, right)
	}

	return errors.NewNoImplementationError(left)
}
