package compare_test

import (
	"strings"
	"testing"
	"time"

	"github.com/amp-labs/amp-ordering/compare"
	commonerrors "github.com/amp-labs/amp-ordering/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	Date  time.Time
	ID    int
	Label string
}

type money struct {
	Currency string
	Cents    int64
}

type brokenScore struct {
	Value int
}

type node struct {
	Name string
	Rank int
}

type schedule struct {
	At    time.Time
	notes string
}

type wrapper struct {
	Value any
}

type Badge struct {
	ID int
}

type member struct {
	*Badge
	Name string
}

//nolint:gochecknoinits
func init() {
	compare.MustDerive(compare.Using[event]{Fields: []string{"Date", "ID"}})

	compare.MustDerive(compare.Using[money]{Func: func(a, b money) int {
		if c := strings.Compare(a.Currency, b.Currency); c != 0 {
			return c
		}

		switch {
		case a.Cents < b.Cents:
			return -1
		case a.Cents > b.Cents:
			return 1
		default:
			return 0
		}
	}})

	compare.MustDerive(compare.Using[brokenScore]{Func: func(a, b brokenScore) int {
		return a.Value - b.Value
	}})

	compare.MustDerive(compare.Using[*node]{Fields: []string{"Rank", "Name"}})
	compare.MustDerive(compare.Using[wrapper]{Fields: []string{"Value"}})
	compare.MustDerive(compare.Using[member]{Fields: []string{"ID", "Name"}})
}

func TestDerivedFields(t *testing.T) {
	t.Parallel()

	first := event{Date: date(2024, time.January, 2), ID: 7, Label: "z"}
	sameDay := event{Date: date(2024, time.January, 2), ID: 9, Label: "a"}
	later := event{Date: date(2024, time.February, 1), ID: 1}

	result, err := compare.Compare(first, sameDay)
	require.NoError(t, err)
	assert.Equal(t, compare.Less, result, "ID breaks the date tie")

	result, err = compare.Compare(later, first)
	require.NoError(t, err)
	assert.Equal(t, compare.Greater, result, "Date has priority over ID")

	relabeled := first
	relabeled.Label = "different"

	result, err = compare.Compare(first, relabeled)
	require.NoError(t, err)
	assert.Equal(t, compare.Equal, result, "unlisted fields are ignored")

	_, err = compare.Compare(first, struct {
		Date time.Time
		ID   int
	}{first.Date, first.ID})
	require.ErrorIs(t, err, commonerrors.ErrWrongType)
}

func TestDerivedPointerFields(t *testing.T) {
	t.Parallel()

	low := &node{Name: "b", Rank: 1}
	high := &node{Name: "a", Rank: 2}

	result, err := compare.Compare(low, high)
	require.NoError(t, err)
	assert.Equal(t, compare.Less, result)

	result, err = compare.Compare(&node{Name: "a", Rank: 1}, low)
	require.NoError(t, err)
	assert.Equal(t, compare.Less, result)

	_, err = compare.Compare(low, (*node)(nil))
	require.ErrorIs(t, err, commonerrors.ErrWrongType)

	_, err = compare.Compare(*low, *high)
	require.ErrorIs(t, err, commonerrors.ErrNotImplemented, "only *node is derived")
}

func TestDerivedDelegate(t *testing.T) {
	t.Parallel()

	result, err := compare.Compare(money{"EUR", 500}, money{"USD", 100})
	require.NoError(t, err)
	assert.Equal(t, compare.Less, result)

	result, err = compare.Compare(money{"USD", 500}, money{"USD", 100})
	require.NoError(t, err)
	assert.Equal(t, compare.Greater, result)

	ok, err := compare.Eq(money{"USD", 1}, money{"USD", 1})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDelegateContractViolation(t *testing.T) {
	t.Parallel()

	result, err := compare.Compare(brokenScore{1}, brokenScore{2})
	require.NoError(t, err, "a difference of one is still a valid ordering")
	assert.Equal(t, compare.Less, result)

	_, err = compare.Compare(brokenScore{10}, brokenScore{2})
	require.ErrorIs(t, err, commonerrors.ErrInvalidOrdering)
}

func TestDeriveRejectsBadDeclarations(t *testing.T) {
	t.Parallel()

	type plain struct {
		A int
		b int
	}

	type pair struct {
		A, B int
	}

	type label string

	type tag struct {
		Key string
	}

	type tagged struct {
		*tag
		Name string
	}

	tests := []struct {
		name     string
		derive   func() error
		expected error
		contains []string
	}{
		{
			name:     "no strategy",
			derive:   func() error { return compare.Derive(compare.Using[plain]{}) },
			expected: commonerrors.ErrInvalidDerivation,
		},
		{
			name: "both strategies",
			derive: func() error {
				return compare.Derive(compare.Using[plain]{
					Func:   func(a, b plain) int { return 0 },
					Fields: []string{"A"},
				})
			},
			expected: commonerrors.ErrInvalidDerivation,
		},
		{
			name:     "fields on a non-struct",
			derive:   func() error { return compare.Derive(compare.Using[label]{Fields: []string{"A"}}) },
			expected: commonerrors.ErrInvalidDerivation,
		},
		{
			name:     "every field problem is reported",
			derive:   func() error { return compare.Derive(compare.Using[pair]{Fields: []string{"A", "C", "A", "b"}}) },
			expected: commonerrors.ErrInvalidDerivation,
			contains: []string{`no field "C"`, `"A" listed twice`, `no field "b"`},
		},
		{
			name:     "unexported field",
			derive:   func() error { return compare.Derive(compare.Using[plain]{Fields: []string{"b"}}) },
			expected: commonerrors.ErrInvalidDerivation,
			contains: []string{`field "b"`, "unexported"},
		},
		{
			name:     "unexported field of a real type",
			derive:   func() error { return compare.Derive(compare.Using[schedule]{Fields: []string{"At", "notes"}}) },
			expected: commonerrors.ErrInvalidDerivation,
		},
		{
			name:     "field promoted through an unexported pointer",
			derive:   func() error { return compare.Derive(compare.Using[tagged]{Fields: []string{"Name", "Key"}}) },
			expected: commonerrors.ErrInvalidDerivation,
			contains: []string{`field "Key"`, "unexported pointer"},
		},
		{
			name:     "interface type",
			derive:   func() error { return compare.Derive(compare.Using[error]{Func: func(a, b error) int { return 0 }}) },
			expected: commonerrors.ErrInvalidDerivation,
		},
		{
			name:     "scalar kind",
			derive:   func() error { return compare.Derive(compare.Using[int]{Func: func(a, b int) int { return 0 }}) },
			expected: commonerrors.ErrAlreadyRegistered,
		},
		{
			name:     "already derived",
			derive:   func() error { return compare.Derive(compare.Using[event]{Fields: []string{"ID"}}) },
			expected: commonerrors.ErrAlreadyRegistered,
		},
		{
			name: "built-in type",
			derive: func() error {
				return compare.Derive(compare.Using[time.Time]{Func: func(a, b time.Time) int { return 0 }})
			},
			expected: commonerrors.ErrAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.derive()
			require.ErrorIs(t, err, tt.expected)

			for _, fragment := range tt.contains {
				assert.Contains(t, err.Error(), fragment)
			}
		})
	}

	assert.False(t, compare.Registered(plain{}), "failed derivations leave nothing behind")
	assert.False(t, compare.Registered(pair{}))
	assert.False(t, compare.Registered(tagged{}))
	assert.Panics(t, func() { compare.MustDerive(compare.Using[plain]{}) })
}

func TestFieldErrorsSurfaceFromComparison(t *testing.T) {
	t.Parallel()

	result, err := compare.Compare(wrapper{1}, wrapper{2.5})
	require.NoError(t, err)
	assert.Equal(t, compare.Less, result)

	_, err = compare.Compare(wrapper{1}, wrapper{"x"})
	require.ErrorIs(t, err, commonerrors.ErrWrongType)

	_, err = compare.Compare(wrapper{true}, wrapper{false})
	require.ErrorIs(t, err, commonerrors.ErrNotImplemented)
}

func TestPromotedFieldsThroughEmbeddedPointers(t *testing.T) {
	t.Parallel()

	result, err := compare.Compare(member{Badge: &Badge{ID: 2}, Name: "a"}, member{Badge: &Badge{ID: 1}, Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, compare.Greater, result)

	result, err = compare.Compare(member{Badge: &Badge{ID: 1}, Name: "a"}, member{Badge: &Badge{ID: 1}, Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, compare.Less, result)

	unbadged := member{Name: "a"}
	badged := member{Badge: &Badge{ID: 1}, Name: "b"}

	for _, pair := range [][2]member{{unbadged, member{Name: "b"}}, {unbadged, badged}, {badged, unbadged}} {
		_, err = compare.Compare(pair[0], pair[1])

		var typeErr *commonerrors.TypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, pair[0], typeErr.Left)
		assert.Equal(t, pair[1], typeErr.Right)
		require.ErrorIs(t, err, commonerrors.ErrWrongType)
	}
}
