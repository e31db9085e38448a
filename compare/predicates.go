package compare

// Eq reports whether left and right are equal under their comparator.
func Eq(left, right any) (bool, error) {
	result, err := Compare(left, right)

	return err == nil && result == Equal, err
}

// Lt reports whether left orders strictly before right.
func Lt(left, right any) (bool, error) {
	result, err := Compare(left, right)

	return err == nil && result == Less, err
}

// Gt reports whether left orders strictly after right.
func Gt(left, right any) (bool, error) {
	result, err := Compare(left, right)

	return err == nil && result == Greater, err
}

// Lte reports whether left does not order after right.
func Lte(left, right any) (bool, error) {
	result, err := Compare(left, right)

	return err == nil && result != Greater, err
}

// Gte reports whether left does not order before right.
func Gte(left, right any) (bool, error) {
	result, err := Compare(left, right)

	return err == nil && result != Less, err
}

// Max returns right if left orders before it, otherwise left. Ties return left.
func Max[T any](left, right T) (T, error) {
	result, err := Compare(left, right)
	if err != nil {
		var zero T

		return zero, err
	}

	if result == Less {
		return right, nil
	}

	return left, nil
}

// Min returns right if left orders after it, otherwise left. Ties return left.
func Min[T any](left, right T) (T, error) {
	result, err := Compare(left, right)
	if err != nil {
		var zero T

		return zero, err
	}

	if result == Greater {
		return right, nil
	}

	return left, nil
}
