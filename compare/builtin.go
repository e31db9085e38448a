package compare

import (
	"bytes"
	"math/big"
	"net/netip"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

//nolint:gochecknoinits
func init() {
	MustRegister(func(a, b time.Time) Ordering {
		return Ordering(a.Compare(b))
	})
	MustRegister(Native[time.Duration])

	MustRegister(func(a, b uuid.UUID) Ordering {
		return Ordering(bytes.Compare(a[:], b[:]))
	})
	MustRegister(func(a, b netip.Addr) Ordering {
		return Ordering(a.Compare(b))
	})

	MustRegister(func(a, b *semver.Version) Ordering {
		return Ordering(a.Compare(b))
	})
	MustRegister(func(a, b semver.Version) Ordering {
		return Ordering(a.Compare(&b))
	})

	MustRegister(func(a, b *big.Int) Ordering {
		return Ordering(a.Cmp(b))
	})
	MustRegister(func(a, b *big.Rat) Ordering {
		return Ordering(a.Cmp(b))
	})
	MustRegister(func(a, b *big.Float) Ordering {
		return Ordering(a.Cmp(b))
	})
}
