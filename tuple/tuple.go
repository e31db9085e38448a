// Package tuple provides fixed-arity heterogeneous tuples. Every tuple exposes
// Arity and Element, so tuples are ordered element by element by compare.Compare:
//
//	a := tuple.NewTuple2(12, dateA)
//	b := tuple.NewTuple2(12, dateB)
//	later, err := compare.Max(a, b) // the tuple with the later date
//
//nolint:ireturn
package tuple

import "fmt"

func outOfRange(i, arity int) string {
	return fmt.Sprintf("tuple: element index %d out of range for arity %d", i, arity)
}

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

func NewTuple3[A, B, C any](first A, second B, third C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{
		first:  first,
		second: second,
		third:  third,
	}
}

// Tuple3 is a type that represents a triple of values.
type Tuple3[A any, B any, C any] struct {
	first  A
	second B
	third  C
}

func (t Tuple3[A, B, C]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple3[A, B, C]) Second() B { //nolint:ireturn
	return t.second
}

func (t Tuple3[A, B, C]) Third() C { //nolint:ireturn
	return t.third
}

func NewTuple4[A, B, C, D any](first A, second B, third C, fourth D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{
		first:  first,
		second: second,
		third:  third,
		fourth: fourth,
	}
}

// Tuple4 is a type that represents a quadruple of values.
type Tuple4[A any, B any, C any, D any] struct {
	first  A
	second B
	third  C
	fourth D
}

func (t Tuple4[A, B, C, D]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple4[A, B, C, D]) Second() B { //nolint:ireturn
	return t.second
}

func (t Tuple4[A, B, C, D]) Third() C { //nolint:ireturn
	return t.third
}

func (t Tuple4[A, B, C, D]) Fourth() D { //nolint:ireturn
	return t.fourth
}

func NewTuple5[A, B, C, D, E any](first A, second B, third C, fourth D, fifth E) Tuple5[A, B, C, D, E] {
	return Tuple5[A, B, C, D, E]{
		first:  first,
		second: second,
		third:  third,
		fourth: fourth,
		fifth:  fifth,
	}
}

// Tuple5 is a type that represents a quintuple of values.
type Tuple5[A any, B any, C any, D any, E any] struct {
	first  A
	second B
	third  C
	fourth D
	fifth  E
}

func (t Tuple5[A, B, C, D, E]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple5[A, B, C, D, E]) Second() B { //nolint:ireturn
	return t.second
}

func (t Tuple5[A, B, C, D, E]) Third() C { //nolint:ireturn
	return t.third
}

func (t Tuple5[A, B, C, D, E]) Fourth() D { //nolint:ireturn
	return t.fourth
}

func (t Tuple5[A, B, C, D, E]) Fifth() E { //nolint:ireturn
	return t.fifth
}

func NewTuple6[A, B, C, D, E, F any](first A, second B, third C, fourth D, fifth E, sixth F) Tuple6[A, B, C, D, E, F] {
	return Tuple6[A, B, C, D, E, F]{
		first:  first,
		second: second,
		third:  third,
		fourth: fourth,
		fifth:  fifth,
		sixth:  sixth,
	}
}

// Tuple6 is a type that represents a sextuple of values.
type Tuple6[A any, B any, C any, D any, E any, F any] struct {
	first  A
	second B
	third  C
	fourth D
	fifth  E
	sixth  F
}

func (t Tuple6[A, B, C, D, E, F]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple6[A, B, C, D, E, F]) Second() B { //nolint:ireturn
	return t.second
}

func (t Tuple6[A, B, C, D, E, F]) Third() C { //nolint:ireturn
	return t.third
}

func (t Tuple6[A, B, C, D, E, F]) Fourth() D { //nolint:ireturn
	return t.fourth
}

func (t Tuple6[A, B, C, D, E, F]) Fifth() E { //nolint:ireturn
	return t.fifth
}

func (t Tuple6[A, B, C, D, E, F]) Sixth() F { //nolint:ireturn
	return t.sixth
}

// Arity returns the number of elements, which is fixed by the tuple type.
func (t Tuple2[A, B]) Arity() int {
	return 2
}

// Element returns the i-th element, counting from zero. It panics if i is out of range.
func (t Tuple2[A, B]) Element(i int) any {
	switch i {
	case 0:
		return t.first
	case 1:
		return t.second
	default:
		panic(outOfRange(i, 2))
	}
}

func (t Tuple3[A, B, C]) Arity() int {
	return 3
}

func (t Tuple3[A, B, C]) Element(i int) any {
	switch i {
	case 0:
		return t.first
	case 1:
		return t.second
	case 2:
		return t.third
	default:
		panic(outOfRange(i, 3))
	}
}

func (t Tuple4[A, B, C, D]) Arity() int {
	return 4
}

func (t Tuple4[A, B, C, D]) Element(i int) any {
	switch i {
	case 0:
		return t.first
	case 1:
		return t.second
	case 2:
		return t.third
	case 3:
		return t.fourth
	default:
		panic(outOfRange(i, 4))
	}
}

func (t Tuple5[A, B, C, D, E]) Arity() int {
	return 5
}

func (t Tuple5[A, B, C, D, E]) Element(i int) any {
	switch i {
	case 0:
		return t.first
	case 1:
		return t.second
	case 2:
		return t.third
	case 3:
		return t.fourth
	case 4:
		return t.fifth
	default:
		panic(outOfRange(i, 5))
	}
}

func (t Tuple6[A, B, C, D, E, F]) Arity() int {
	return 6
}

func (t Tuple6[A, B, C, D, E, F]) Element(i int) any {
	switch i {
	case 0:
		return t.first
	case 1:
		return t.second
	case 2:
		return t.third
	case 3:
		return t.fourth
	case 4:
		return t.fifth
	case 5:
		return t.sixth
	default:
		panic(outOfRange(i, 6))
	}
}
