package compare

import "github.com/amp-labs/amp-ordering/errors"

// compareComposite orders two composites element by element. The first
// non-Equal element decides, but the remaining pairs are still type-checked
// so that an incompatible tail is never hidden by an early answer.
func compareComposite(left Composite, right any) (Ordering, error) {
	other, err := sameArity(left, right)
	if err != nil {
		return Equal, err
	}

	result := Equal

	for i := range left.Arity() {
		l, r := left.Element(i), other.Element(i)

		if result != Equal {
			if err := Compatible(l, r); err != nil {
				return Equal, err
			}

			continue
		}

		result, err = Compare(l, r)
		if err != nil {
			return Equal, err
		}
	}

	return result, nil
}

func compatibleComposite(left Composite, right any) error {
	other, err := sameArity(left, right)
	if err != nil {
		return err
	}

	for i := range left.Arity() {
		if err := Compatible(left.Element(i), other.Element(i)); err != nil {
			return err
		}
	}

	return nil
}

// sameArity reports a mismatch with the whole composites as operands.
func sameArity(left Composite, right any) (Composite, error) {
	other, ok := right.(Composite)
	if !ok || other.Arity() != left.Arity() {
		return nil, errors.NewTypeError(left, right)
	}

	return other, nil
}
