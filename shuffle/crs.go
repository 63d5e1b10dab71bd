package shuffle

import (
	"fmt"

	"github.com/shuffleproof/bgshuffle/group"
)

// NBlinders is the number of zero-knowledge blinder slots every shuffle
// proof reserves at the end of its witness vectors.
const NBlinders = 4

// ShuffleCRS is the common reference string consumed by the shuffle
// argument and all of its subarguments: N = ell + NBlinders generators plus
// three distinguished generators U, Gt, Gu. Generated once, externally, and
// treated as an immutable, shared-read value - a single CRS may back any
// number of concurrent, independent proofs.
type ShuffleCRS struct {
	G  []group.Element
	U  group.Element
	Gt group.Element
	Gu group.Element
}

// NewShuffleCRS derives a CRS of N = ell + NBlinders generators from
// domain-separated seeds via group.Element.MapToGroup, following the
// domain-separation-tag convention used elsewhere in the corpus for
// deriving generators with no known discrete-log relation to one another.
func NewShuffleCRS(gp group.Group, ell int) (*ShuffleCRS, error) {
	n := ell + NBlinders
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: ell+NBlinders=%d is not a power of two", ErrInvalidInput, n)
	}

	vecG := make([]group.Element, n)
	for i := 0; i < n; i++ {
		e, err := gp.Element().MapToGroup(fmt.Sprintf("bgshuffle/G/%d", i))
		if err != nil {
			return nil, err
		}
		vecG[i] = e
	}
	u, err := gp.Element().MapToGroup("bgshuffle/U")
	if err != nil {
		return nil, err
	}
	gt, err := gp.Element().MapToGroup("bgshuffle/G_t")
	if err != nil {
		return nil, err
	}
	gu, err := gp.Element().MapToGroup("bgshuffle/G_u")
	if err != nil {
		return nil, err
	}

	return &ShuffleCRS{G: vecG, U: u, Gt: gt, Gu: gu}, nil
}
