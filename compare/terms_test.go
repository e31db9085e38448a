package compare_test

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/amp-labs/amp-ordering/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	type name string

	tests := []struct {
		value    any
		expected compare.Kind
	}{
		{value: 1, expected: compare.KindNumeric},
		{value: int8(-1), expected: compare.KindNumeric},
		{value: uint64(1), expected: compare.KindNumeric},
		{value: uintptr(1), expected: compare.KindNumeric},
		{value: float32(1.5), expected: compare.KindNumeric},
		{value: 2.5, expected: compare.KindNumeric},
		{value: "s", expected: compare.KindBytes},
		{value: []byte("s"), expected: compare.KindBytes},
		{value: name("s"), expected: compare.KindOther},
		{value: true, expected: compare.KindOther},
		{value: nil, expected: compare.KindOther},
		{value: []int{1}, expected: compare.KindOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, compare.KindOf(tt.value), "%#v", tt.value)
	}
}

func TestTerms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     any
		expected compare.Ordering
		ok       bool
	}{
		{name: "ints", a: 1, b: 2, expected: compare.Less, ok: true},
		{name: "int and float", a: 1, b: 1.0, expected: compare.Equal, ok: true},
		{name: "float and int", a: 2.5, b: 2, expected: compare.Greater, ok: true},
		{name: "negative signed vs unsigned", a: -1, b: uint(0), expected: compare.Less, ok: true},
		{name: "max uint64 vs max int64", a: uint64(math.MaxUint64), b: int64(math.MaxInt64), expected: compare.Greater, ok: true},
		{name: "int beyond float precision", a: int64(1<<53 + 1), b: float64(1 << 53), expected: compare.Greater, ok: true},
		{name: "uint beyond float precision", a: uint64(1<<63 + 1), b: float64(1 << 63), expected: compare.Greater, ok: true},
		{name: "float above int64 range", a: int64(math.MaxInt64), b: 0x1p63, expected: compare.Less, ok: true},
		{name: "float below int64 range", a: int64(math.MinInt64), b: -0x1p64, expected: compare.Greater, ok: true},
		{name: "min int64 equals its float", a: int64(math.MinInt64), b: -0x1p63, expected: compare.Equal, ok: true},
		{name: "negative float vs unsigned", a: uint8(0), b: -0.5, expected: compare.Greater, ok: true},
		{name: "negative zero", a: 0, b: math.Copysign(0, -1), expected: compare.Equal, ok: true},
		{name: "positive infinity", a: math.MaxInt64, b: math.Inf(1), expected: compare.Less, ok: true},
		{name: "NaN below numbers", a: math.NaN(), b: math.Inf(-1), expected: compare.Less, ok: true},
		{name: "int above NaN", a: 0, b: math.NaN(), expected: compare.Greater, ok: true},
		{name: "NaN equals NaN", a: math.NaN(), b: float32(math.NaN()), expected: compare.Equal, ok: true},
		{name: "strings", a: "apple", b: "banana", expected: compare.Less, ok: true},
		{name: "string vs bytes", a: "b", b: []byte("a"), expected: compare.Greater, ok: true},
		{name: "bytes vs string", a: []byte("a"), b: "a", expected: compare.Equal, ok: true},
		{name: "nil bytes vs empty string", a: []byte(nil), b: "", expected: compare.Equal, ok: true},
		{name: "numeric vs string", a: 1, b: "1", ok: false},
		{name: "string vs numeric", a: "1", b: 1, ok: false},
		{name: "numeric vs nil", a: 1, b: nil, ok: false},
		{name: "non scalar", a: true, b: true, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, ok := compare.Terms(tt.a, tt.b)
			require.Equal(t, tt.ok, ok)

			if ok {
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// exact compares through big.Float, which holds every int64, uint64 and
// float64 without rounding.
func exact(v any) *big.Float {
	f := new(big.Float).SetPrec(0)

	switch x := v.(type) {
	case int64:
		return f.SetInt64(x)
	case uint64:
		return f.SetUint64(x)
	case float64:
		return f.SetFloat64(x)
	default:
		panic("unexpected operand")
	}
}

func TestTermsAreExact(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11)) //nolint:gosec

	operand := func() any {
		switch rng.IntN(3) {
		case 0:
			return rng.Int64() >> rng.UintN(64)
		case 1:
			return rng.Uint64() >> rng.UintN(64)
		default:
			// Values near integers are where a lossy conversion goes wrong.
			return float64(rng.Int64()>>rng.UintN(64)) + float64(rng.IntN(3)-1)*0.5
		}
	}

	for range 5000 {
		a, b := operand(), operand()

		result, ok := compare.Terms(a, b)
		require.True(t, ok)
		require.Equal(t, compare.Ordering(exact(a).Cmp(exact(b))), result, "%#v vs %#v", a, b)
	}
}

func TestNativeAgreesWithCompare(t *testing.T) {
	t.Parallel()

	ints := []int{math.MinInt, -3, 0, 3, math.MaxInt}
	for _, a := range ints {
		for _, b := range ints {
			result, err := compare.Compare(a, b)
			require.NoError(t, err)
			assert.Equal(t, compare.Native(a, b), result)

			terms, ok := compare.Terms(a, b)
			require.True(t, ok)
			assert.Equal(t, result, terms)
		}
	}

	floats := []float64{math.Inf(-1), -1.5, 0, 1.5, math.Inf(1), math.NaN()}
	for _, a := range floats {
		for _, b := range floats {
			result, err := compare.Compare(a, b)
			require.NoError(t, err)
			assert.Equal(t, compare.Native(a, b), result, "%v vs %v", a, b)
		}
	}

	strs := []string{"", "a", "ab", "b", "\xff"}
	for _, a := range strs {
		for _, b := range strs {
			result, err := compare.Compare(a, b)
			require.NoError(t, err)
			assert.Equal(t, compare.Native(a, b), result)

			result, err = compare.Compare([]byte(a), b)
			require.NoError(t, err)
			assert.Equal(t, compare.Native(a, b), result)
		}
	}
}
