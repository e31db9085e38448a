package compare

import (
	"fmt"
	"maps"
	"reflect"
	"sync"

	"github.com/amp-labs/amp-ordering/errors"
	"github.com/amp-labs/amp-ordering/logger"
	"go.uber.org/atomic"
)

// entry is a comparator bound to one concrete type. compare is only ever
// called with two non-nil values of exactly typ.
type entry struct {
	typ      reflect.Type
	strategy string
	nilable  bool
	compare  func(a, b any) (Ordering, error)
}

type table map[reflect.Type]*entry

// registry is replaced wholesale on every registration, so a loaded table
// is never mutated and can be read without locking.
var registry = atomic.NewPointer(&table{}) //nolint:gochecknoglobals

// registerMutex serializes writers; readers only touch the atomic pointer.
var registerMutex sync.Mutex //nolint:gochecknoglobals

func lookup(typ reflect.Type) (*entry, bool) {
	if typ == nil {
		return nil, false
	}

	e, found := (*registry.Load())[typ]

	return e, found
}

// Registered reports whether the dynamic type of v has a registered comparator.
// Scalars handled by the kernel and composites are not registered types.
func Registered(v any) bool {
	_, found := lookup(reflect.TypeOf(v))

	return found
}

// Register binds cmp as the comparator for every value whose dynamic type is T.
// It fails if T already has a comparator, if T is an interface type, or if T is
// one of the scalar kinds owned by the kernel.
func Register[T any](cmp func(a, b T) Ordering) error {
	if cmp == nil {
		return fmt.Errorf("%w: nil comparator for %v", errors.ErrInvalidDerivation, reflect.TypeFor[T]())
	}

	return register(reflect.TypeFor[T](), "comparator", func(a, b any) (Ordering, error) {
		return cmp(a.(T), b.(T)), nil //nolint:forcetypeassert
	})
}

// MustRegister is like Register but panics on error. It is meant for init functions.
func MustRegister[T any](cmp func(a, b T) Ordering) {
	if err := Register(cmp); err != nil {
		panic(err)
	}
}

func register(typ reflect.Type, strategy string, fn func(a, b any) (Ordering, error)) error {
	if err := checkRegistrable(typ); err != nil {
		return err
	}

	registerMutex.Lock()
	defer registerMutex.Unlock()

	current := *registry.Load()
	if _, found := current[typ]; found {
		return fmt.Errorf("%w: %v", errors.ErrAlreadyRegistered, typ)
	}

	next := make(table, len(current)+1)
	maps.Copy(next, current)

	next[typ] = &entry{
		typ:      typ,
		strategy: strategy,
		nilable:  isNilable(typ),
		compare:  fn,
	}

	registry.Store(&next)

	logger.Get().Debug("registered comparator", "type", typ.String(), "strategy", strategy)

	return nil
}

func checkRegistrable(typ reflect.Type) error {
	if typ.Kind() == reflect.Interface {
		return fmt.Errorf("%w: %v is an interface type", errors.ErrInvalidDerivation, typ)
	}

	if KindOf(reflect.Zero(typ).Interface()) != KindOther {
		return fmt.Errorf("%w: %v is ordered by the scalar kernel", errors.ErrAlreadyRegistered, typ)
	}

	return nil
}

func isNilable(typ reflect.Type) bool {
	switch typ.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// check verifies that left (of e.typ) and right can be handed to e.compare.
func (e *entry) check(left, right any) error {
	if reflect.TypeOf(right) != e.typ {
		return errors.NewTypeError(left, right)
	}

	if e.nilable && (reflect.ValueOf(left).IsNil() || reflect.ValueOf(right).IsNil()) {
		return errors.NewTypeError(left, right)
	}

	return nil
}

func (e *entry) invoke(left, right any) (Ordering, error) {
	if err := e.check(left, right); err != nil {
		return Equal, err
	}

	return e.compare(left, right)
}
