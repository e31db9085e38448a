package compare

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-ordering/errors"
)

// Using declares how the comparator for an aggregate type T is derived.
// Exactly one strategy must be set.
type Using[T any] struct {
	// Func delegates to a three-way comparator returning -1, 0 or 1.
	// Any other result makes the comparison fail with errors.ErrInvalidOrdering.
	Func func(a, b T) int

	// Fields lists exported struct fields in priority order. Each field is
	// compared with Compare; the first non-Equal field decides.
	Fields []string
}

// Derive registers a comparator for T built from using. Malformed declarations
// (no strategy, both strategies, unknown, unexported or repeated field names,
// a non-struct T for Fields) fail here with errors.ErrInvalidDerivation rather
// than at comparison time.
//
// Values of any other type on the right-hand side of a comparison against T
// are rejected with a TypeError.
func Derive[T any](using Using[T]) error {
	typ := reflect.TypeFor[T]()

	switch {
	case using.Func != nil && len(using.Fields) > 0:
		return fmt.Errorf("%w: %v declares both a delegate and a field list", errors.ErrInvalidDerivation, typ)
	case using.Func != nil:
		return register(typ, "delegate", delegate(using.Func))
	case len(using.Fields) > 0:
		fn, err := lexicographic(typ, using.Fields)
		if err != nil {
			return err
		}

		return register(typ, "fields", fn)
	default:
		return fmt.Errorf("%w: %v declares neither a delegate nor a field list", errors.ErrInvalidDerivation, typ)
	}
}

// MustDerive is like Derive but panics on error. It is meant for init functions.
func MustDerive[T any](using Using[T]) {
	if err := Derive(using); err != nil {
		panic(err)
	}
}

func delegate[T any](fn func(a, b T) int) func(a, b any) (Ordering, error) {
	return func(a, b any) (Ordering, error) {
		return OrderingOf(fn(a.(T), b.(T))) //nolint:forcetypeassert
	}
}

func lexicographic(typ reflect.Type, names []string) (func(a, b any) (Ordering, error), error) {
	structType := typ
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}

	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v is not a struct", errors.ErrInvalidDerivation, typ)
	}

	var problems errors.Collection

	seen := make(map[string]struct{}, len(names))
	indexes := make([][]int, 0, len(names))

	for _, name := range names {
		if _, dup := seen[name]; dup {
			problems.Add(fmt.Errorf("%w: field %q listed twice for %v", errors.ErrInvalidDerivation, name, typ))

			continue
		}

		seen[name] = struct{}{}

		field, found := structType.FieldByName(name)

		switch {
		case !found:
			problems.Add(fmt.Errorf("%w: %v has no field %q", errors.ErrInvalidDerivation, typ, name))
		case !field.IsExported():
			problems.Add(fmt.Errorf("%w: field %q of %v is unexported", errors.ErrInvalidDerivation, name, typ))
		case behindUnexportedPointer(structType, field.Index):
			problems.Add(fmt.Errorf("%w: field %q of %v is promoted through an unexported pointer",
				errors.ErrInvalidDerivation, name, typ))
		default:
			indexes = append(indexes, field.Index)
		}
	}

	if problems.HasError() {
		return nil, problems.GetError()
	}

	indirect := typ.Kind() == reflect.Pointer

	return func(a, b any) (Ordering, error) {
		left, right := reflect.ValueOf(a), reflect.ValueOf(b)
		if indirect {
			left, right = left.Elem(), right.Elem()
		}

		for _, index := range indexes {
			// Promoted fields behind a nil embedded pointer cannot be reached.
			leftField, err := left.FieldByIndexErr(index)
			if err != nil {
				return Equal, errors.NewTypeError(a, b)
			}

			rightField, err := right.FieldByIndexErr(index)
			if err != nil {
				return Equal, errors.NewTypeError(a, b)
			}

			result, err := Compare(leftField.Interface(), rightField.Interface())
			if err != nil {
				return Equal, err
			}

			if result != Equal {
				return result, nil
			}
		}

		return Equal, nil
	}, nil
}

func behindUnexportedPointer(structType reflect.Type, index []int) bool {
	for i := 1; i < len(index); i++ {
		embedded := structType.FieldByIndex(index[:i])
		if !embedded.IsExported() && embedded.Type.Kind() == reflect.Pointer {
			return true
		}
	}

	return false
}
