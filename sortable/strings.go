package sortable

import (
	"facette.io/natsort"
	"github.com/amp-labs/amp-ordering/compare"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Natural is a string ordered the way people order file names: runs of
// digits compare by numeric value, so "file9" sorts before "file10".
// Strings the natural order cannot tell apart ("a01" and "a1") fall back
// to byte order.
type Natural string

// Folded is a string ordered without regard to case or Unicode normalization
// form: "straße", "STRASSE" and "Strasse" are Equal.
type Folded string

// Key returns the case-folded NFC form that Folded values are ordered by.
func (f Folded) Key() string {
	// A Caser keeps state between calls and cannot be shared.
	return norm.NFC.String(cases.Fold().String(string(f)))
}

func compareNatural(a, b Natural) compare.Ordering {
	less := natsort.Compare(string(a), string(b))
	greater := natsort.Compare(string(b), string(a))

	switch {
	case less && !greater:
		return compare.Less
	case greater && !less:
		return compare.Greater
	default:
		return compare.Native(a, b)
	}
}

func compareFolded(a, b Folded) compare.Ordering {
	return compare.Native(a.Key(), b.Key())
}

//nolint:gochecknoinits
func init() {
	compare.MustRegister(compareNatural)
	compare.MustRegister(compareFolded)
}
