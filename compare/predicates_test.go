package compare_test

import (
	"math"
	"testing"
	"time"

	"github.com/amp-labs/amp-ordering/compare"
	commonerrors "github.com/amp-labs/amp-ordering/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// domains groups values that are mutually comparable.
var domains = map[string][]any{ //nolint:gochecknoglobals
	"numbers": {-2, int8(-1), uint(0), 0.0, 0.5, int64(1), float32(1), uint64(1 << 63), math.Inf(1), math.NaN()},
	"strings": {"", "a", []byte("a"), "ab", "b", []byte("ba")},
	"dates": {
		date(2020, time.February, 29),
		date(2021, time.January, 1),
		date(2021, time.January, 1).In(time.FixedZone("west", -3*60*60)),
		date(1999, time.December, 31),
	},
	"money": {money{"EUR", 1}, money{"EUR", 3}, money{"USD", 0}, money{"EUR", 1}},
}

func TestTotalOrderConsistency(t *testing.T) {
	t.Parallel()

	for name, values := range domains {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, a := range values {
				for _, b := range values {
					ab, err := compare.Compare(a, b)
					require.NoError(t, err)

					ba, err := compare.Compare(b, a)
					require.NoError(t, err)
					assert.Equal(t, ab.Reverse(), ba, "antisymmetry of %#v and %#v", a, b)

					eq, err := compare.Eq(a, b)
					require.NoError(t, err)
					assert.Equal(t, ab == compare.Equal, eq)

					lt, _ := compare.Lt(a, b)
					gt, _ := compare.Gt(a, b)
					lte, _ := compare.Lte(a, b)
					gte, _ := compare.Gte(a, b)

					assert.Equal(t, lt || eq, lte)
					assert.Equal(t, gt || eq, gte)
					assert.NotEqual(t, lt, gte)
					assert.NotEqual(t, gt, lte)

					for _, c := range values {
						bc, _ := compare.Compare(b, c)
						ac, _ := compare.Compare(a, c)

						if ab != compare.Greater && bc != compare.Greater {
							assert.NotEqual(t, compare.Greater, ac, "transitivity of %#v <= %#v <= %#v", a, b, c)
						}
					}
				}
			}
		})
	}
}

func TestPredicatesPropagateErrors(t *testing.T) {
	t.Parallel()

	predicates := map[string]func(a, b any) (bool, error){
		"eq":  compare.Eq,
		"lt":  compare.Lt,
		"gt":  compare.Gt,
		"lte": compare.Lte,
		"gte": compare.Gte,
	}

	for name, predicate := range predicates {
		ok, err := predicate(1, "1")
		require.ErrorIs(t, err, commonerrors.ErrWrongType, name)
		assert.False(t, ok, name)

		ok, err = predicate(nil, 1)
		require.ErrorIs(t, err, commonerrors.ErrNotImplemented, name)
		assert.False(t, ok, name)
	}

	ok, err := compare.Lte(1, 1.0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPairwiseMaxMin(t *testing.T) {
	t.Parallel()

	high, err := compare.Max(3, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, high)

	low, err := compare.Min(3, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, low)

	// Ties keep the left operand, which matters when equal values are distinguishable.
	west := date(2021, time.January, 1).In(time.FixedZone("west", -3*60*60))
	utc := date(2021, time.January, 1)

	picked, err := compare.Max(west, utc)
	require.NoError(t, err)
	assert.Equal(t, "west", zoneName(picked))

	picked, err = compare.Min(utc, west)
	require.NoError(t, err)
	assert.Equal(t, "UTC", zoneName(picked))

	var mixed any

	mixed, err = compare.Max[any](1, "x")
	require.ErrorIs(t, err, commonerrors.ErrWrongType)
	assert.Nil(t, mixed)

	_, err = compare.Min(true, false)
	require.ErrorIs(t, err, commonerrors.ErrNotImplemented)
}

func zoneName(t time.Time) string {
	name, _ := t.Zone()

	return name
}
