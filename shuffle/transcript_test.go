package shuffle

import (
	"math/big"
	"testing"

	"github.com/shuffleproof/bgshuffle/group"
	"github.com/stretchr/testify/require"
)

func TestChallengeIndependence(t *testing.T) {
	// Two consecutive challenge emissions with no intervening absorb must
	// differ, because the first challenge is re-absorbed.
	gp := group.BLS12381G1()
	tr := NewTranscript(gp.N())
	require.NoError(t, tr.AbsorbPoints(gp.Generator()))

	x1 := tr.ChallengeScalar()
	x2 := tr.ChallengeScalar()
	require.NotEqual(t, 0, x1.Cmp(x2))
}

func TestTranscriptDeterminism(t *testing.T) {
	// Identical absorbed inputs must yield identical challenges.
	gp := group.BLS12381G1()
	g := gp.Generator()

	tr1 := NewTranscript(gp.N())
	require.NoError(t, tr1.AbsorbPoints(g))
	tr1.AbsorbScalars(big.NewInt(1))
	c1 := tr1.ChallengeScalar()

	tr2 := NewTranscript(gp.N())
	require.NoError(t, tr2.AbsorbPoints(g))
	tr2.AbsorbScalars(big.NewInt(1))
	c2 := tr2.ChallengeScalar()

	require.Equal(t, 0, c1.Cmp(c2))
}

func TestAbsorbPointsRejectsNonAffineElement(t *testing.T) {
	gp := group.Ristretto255()
	tr := NewTranscript(gp.N())
	err := tr.AbsorbPoints(gp.Generator())
	require.ErrorIs(t, err, ErrInternal)
}
