// Package errors holds the error taxonomy shared by the comparison and
// sorting packages, plus a small utility for accumulating several errors.
package errors

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotImplemented is wrapped by NoImplementationError.
	ErrNotImplemented = errors.New("not implemented")
	// ErrWrongType is wrapped by TypeError.
	ErrWrongType = errors.New("wrong type")
	// ErrEmpty is returned by reductions (max, min, max by, min by) given no elements.
	ErrEmpty = errors.New("empty collection")
	// ErrInvalidDerivation is returned when a comparator declaration is malformed.
	ErrInvalidDerivation = errors.New("invalid comparator derivation")
	// ErrInvalidOrdering is returned when a delegate comparator answers something
	// other than -1, 0 or 1.
	ErrInvalidOrdering = errors.New("invalid ordering")
	// ErrAlreadyRegistered is returned when a type is given a second comparator.
	ErrAlreadyRegistered = errors.New("comparator already registered")
)

// TypeError reports two values that cannot be ordered against each other.
// Left and Right are the operands exactly as they were handed to the failing
// comparison (whole tuples for an arity mismatch, not their elements).
type TypeError struct {
	Left  any
	Right any
}

// NewTypeError builds a TypeError for the given operands.
func NewTypeError(left, right any) *TypeError {
	return &TypeError{Left: left, Right: right}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: cannot compare %#v (%T) with %#v (%T)",
		ErrWrongType, e.Left, e.Left, e.Right, e.Right)
}

func (e *TypeError) Unwrap() error {
	return ErrWrongType
}

// NoImplementationError reports a left operand whose type has no comparator.
type NoImplementationError struct {
	Value any
}

// NewNoImplementationError builds a NoImplementationError for value.
func NewNoImplementationError(value any) *NoImplementationError {
	return &NoImplementationError{Value: value}
}

// Type returns the dynamic type of the offending value, or nil for an untyped nil.
func (e *NoImplementationError) Type() reflect.Type {
	return reflect.TypeOf(e.Value)
}

func (e *NoImplementationError) Error() string {
	return fmt.Sprintf("%s: no comparator for type %v (value %#v)", ErrNotImplemented, e.Type(), e.Value)
}

func (e *NoImplementationError) Unwrap() error {
	return ErrNotImplemented
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
