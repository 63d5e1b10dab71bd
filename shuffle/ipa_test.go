package shuffle

import (
	"math/big"
	"testing"

	"github.com/shuffleproof/bgshuffle/group"
	"github.com/stretchr/testify/require"
)

func randomVectorN(t *testing.T, gp group.Group, n int) []*big.Int {
	t.Helper()
	v, err := randomScalarVector(nil, gp.N(), n)
	require.NoError(t, err)
	return v
}

// TestIPACompleteness is scenario S6: an isolated IPA on n = 128 random
// vectors with a known inner product must verify.
func TestIPACompleteness(t *testing.T) {
	gp := group.BLS12381G1()
	const n = 128

	crs, err := NewShuffleCRS(gp, n-NBlinders)
	require.NoError(t, err)
	crsG := crs.G
	crsH, err := NewShuffleCRS(gp, n-NBlinders)
	require.NoError(t, err)

	b := randomVectorN(t, gp, n)
	c := randomVectorN(t, gp, n)
	z, err := innerProduct(b, c, gp.N())
	require.NoError(t, err)

	B, err := msm(gp, crsG, b)
	require.NoError(t, err)
	C, err := msm(gp, crsH.G, c)
	require.NoError(t, err)

	proveTr := NewTranscript(gp.N())
	proof, err := ProveIPA(gp, proveTr, crsG, crsH.G, crs.U, B, C, z, b, c, nil)
	require.NoError(t, err)

	verifyTr := NewTranscript(gp.N())
	err = VerifyIPA(gp, verifyTr, crsG, crsH.G, crs.U, B, C, z, proof)
	require.NoError(t, err)
}

func TestIPARejectsTamperedCommitment(t *testing.T) {
	gp := group.BLS12381G1()
	const n = 128

	crs, err := NewShuffleCRS(gp, n-NBlinders)
	require.NoError(t, err)
	crsH, err := NewShuffleCRS(gp, n-NBlinders)
	require.NoError(t, err)

	b := randomVectorN(t, gp, n)
	c := randomVectorN(t, gp, n)
	z, err := innerProduct(b, c, gp.N())
	require.NoError(t, err)

	B, err := msm(gp, crs.G, b)
	require.NoError(t, err)
	C, err := msm(gp, crsH.G, c)
	require.NoError(t, err)

	proveTr := NewTranscript(gp.N())
	proof, err := ProveIPA(gp, proveTr, crs.G, crsH.G, crs.U, B, C, z, b, c, nil)
	require.NoError(t, err)

	// Tamper with the public commitment B by adding the
	// generator - simulates flipping a bit of a proof point.
	tamperedB := gp.Element().Add(B, gp.Generator())

	verifyTr := NewTranscript(gp.N())
	err = VerifyIPA(gp, verifyTr, crs.G, crsH.G, crs.U, tamperedB, C, z, proof)
	require.ErrorIs(t, err, ErrInvalidProof)
}

func TestIPARejectsNonPowerOfTwo(t *testing.T) {
	gp := group.BLS12381G1()
	crs, err := NewShuffleCRS(gp, 124)
	require.NoError(t, err)
	b := randomVectorN(t, gp, 127)
	c := randomVectorN(t, gp, 127)

	tr := NewTranscript(gp.N())
	_, err = ProveIPA(gp, tr, crs.G[:127], crs.G[:127], crs.U, gp.Identity(), gp.Identity(), big.NewInt(0), b, c, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}
