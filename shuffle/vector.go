package shuffle

import (
	"math/big"

	"github.com/shuffleproof/bgshuffle/group"
)

// msm computes the multi-scalar multiplication sum(scalars[i] * points[i]),
// the Pedersen-style commitment primitive used throughout this package.
func msm(gp group.Group, points []group.Element, scalars []*big.Int) (group.Element, error) {
	if len(points) != len(scalars) {
		return nil, ErrInvalidInput
	}
	acc := gp.Identity()
	for i := range points {
		term := gp.Element().Scale(points[i], scalars[i])
		acc = gp.Element().Add(acc, term)
	}
	return acc, nil
}

func leftHalfPoints(v []group.Element) []group.Element  { return v[:len(v)/2] }
func rightHalfPoints(v []group.Element) []group.Element { return v[len(v)/2:] }

// foldPoints computes the pointwise vector a[i] + s*b[i], the update rule
// shared by the IPA, grand-product, and multi-exponentiation recursions
// when folding their generator bases each round.
func foldPoints(gp group.Group, a, b []group.Element, s *big.Int) []group.Element {
	out := make([]group.Element, len(a))
	for i := range a {
		out[i] = gp.Element().Add(a[i], gp.Element().Scale(b[i], s))
	}
	return out
}

func onesVector(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = big.NewInt(1)
	}
	return out
}
