// Package decimal makes arbitrary-precision decimals from
// github.com/cockroachdb/apd/v3 comparable through the compare package.
// Importing it registers comparators for both apd.Decimal and *apd.Decimal.
//
// Decimals compare by numeric value, so 1.5 and 1.50 are Equal. NaN is Equal
// to NaN and orders before every other decimal, matching how the scalar
// kernel treats floating-point NaN. Decimals never compare against native
// numbers: Compare(decimal, 1.5) is a TypeError.
package decimal

import (
	"fmt"

	"github.com/amp-labs/amp-ordering/compare"
	"github.com/cockroachdb/apd/v3"
)

// Compare orders two decimals by value.
func Compare(a, b *apd.Decimal) compare.Ordering {
	aNaN, bNaN := isNaN(a), isNaN(b)

	switch {
	case aNaN && bNaN:
		return compare.Equal
	case aNaN:
		return compare.Less
	case bNaN:
		return compare.Greater
	default:
		return compare.Ordering(a.Cmp(b))
	}
}

// Parse reads a decimal such as "12.50", "-1e-3", "Infinity" or "NaN".
func Parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parsing decimal %q: %w", s, err)
	}

	return d, nil
}

func isNaN(d *apd.Decimal) bool {
	return d.Form == apd.NaN || d.Form == apd.NaNSignaling
}

//nolint:gochecknoinits
func init() {
	compare.MustRegister(Compare)
	compare.MustRegister(func(a, b apd.Decimal) compare.Ordering {
		return Compare(&a, &b)
	})
}
