package compare

import (
	"bytes"
	"cmp"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Kind classifies a value for the scalar kernel.
type Kind int

const (
	// KindOther covers every value the kernel does not handle.
	KindOther Kind = iota
	// KindNumeric covers the predeclared integer and floating-point types.
	KindNumeric
	// KindBytes covers string and []byte.
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindBytes:
		return "bytes"
	default:
		return "other"
	}
}

// KindOf reports the kernel kind of v. Named types (time.Duration, type Name string)
// are always KindOther: they carry their own semantics and must be registered.
func KindOf(v any) Kind {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return KindNumeric
	case string, []byte:
		return KindBytes
	default:
		return KindOther
	}
}

// Native compares two values of a natively ordered type. NaN is equal to NaN
// and less than every other float, as with cmp.Compare.
func Native[T constraints.Ordered](a, b T) Ordering {
	return Ordering(cmp.Compare(a, b))
}

// Terms compares two scalars of the same kernel kind without going through
// the registry. ok is false when either operand is not a scalar or the kinds
// differ; in that case the Ordering is meaningless.
func Terms(a, b any) (result Ordering, ok bool) {
	switch x := a.(type) {
	case string:
		switch y := b.(type) {
		case string:
			return Ordering(strings.Compare(x, y)), true
		case []byte:
			return Ordering(strings.Compare(x, string(y))), true
		default:
			return Equal, false
		}
	case []byte:
		switch y := b.(type) {
		case []byte:
			return Ordering(bytes.Compare(x, y)), true
		case string:
			return Ordering(bytes.Compare(x, []byte(y))), true
		default:
			return Equal, false
		}
	}

	left, ok := toNumber(a)
	if !ok {
		return Equal, false
	}

	right, ok := toNumber(b)
	if !ok {
		return Equal, false
	}

	return compareNumbers(left, right), true
}

type numberClass uint8

const (
	signed numberClass = iota
	unsigned
	float
)

// number is a widened numeric operand. Exactly one of i, u, f is meaningful.
type number struct {
	class numberClass
	i     int64
	u     uint64
	f     float64
}

func toNumber(v any) (number, bool) {
	switch x := v.(type) {
	case int:
		return number{class: signed, i: int64(x)}, true
	case int8:
		return number{class: signed, i: int64(x)}, true
	case int16:
		return number{class: signed, i: int64(x)}, true
	case int32:
		return number{class: signed, i: int64(x)}, true
	case int64:
		return number{class: signed, i: x}, true
	case uint:
		return number{class: unsigned, u: uint64(x)}, true
	case uint8:
		return number{class: unsigned, u: uint64(x)}, true
	case uint16:
		return number{class: unsigned, u: uint64(x)}, true
	case uint32:
		return number{class: unsigned, u: uint64(x)}, true
	case uint64:
		return number{class: unsigned, u: x}, true
	case uintptr:
		return number{class: unsigned, u: uint64(x)}, true
	case float32:
		return number{class: float, f: float64(x)}, true
	case float64:
		return number{class: float, f: x}, true
	default:
		return number{}, false
	}
}

func compareNumbers(a, b number) Ordering {
	switch a.class {
	case signed:
		switch b.class {
		case signed:
			return Native(a.i, b.i)
		case unsigned:
			return compareSignedUnsigned(a.i, b.u)
		default:
			return compareSignedFloat(a.i, b.f)
		}
	case unsigned:
		switch b.class {
		case signed:
			return compareSignedUnsigned(b.i, a.u).Reverse()
		case unsigned:
			return Native(a.u, b.u)
		default:
			return compareUnsignedFloat(a.u, b.f)
		}
	default:
		switch b.class {
		case signed:
			return compareSignedFloat(b.i, a.f).Reverse()
		case unsigned:
			return compareUnsignedFloat(b.u, a.f).Reverse()
		default:
			return Native(a.f, b.f)
		}
	}
}

func compareSignedUnsigned(i int64, u uint64) Ordering {
	if i < 0 {
		return Less
	}

	return Native(uint64(i), u)
}

const (
	twoPow63 = 0x1p63
	twoPow64 = 0x1p64
)

// compareSignedFloat is exact: float64(i) would round for |i| > 2^53.
func compareSignedFloat(i int64, f float64) Ordering {
	switch {
	case math.IsNaN(f):
		return Greater
	case f >= twoPow63:
		return Less
	case f < -twoPow63:
		return Greater
	}

	whole := math.Trunc(f)
	if o := Native(i, int64(whole)); o != Equal {
		return o
	}

	return Native(whole, f)
}

func compareUnsignedFloat(u uint64, f float64) Ordering {
	switch {
	case math.IsNaN(f), f < 0:
		return Greater
	case f >= twoPow64:
		return Less
	}

	whole := math.Trunc(f)
	if o := Native(u, uint64(whole)); o != Equal {
		return o
	}

	return Native(whole, f)
}
