package shuffle

import (
	"math/big"
	"testing"

	"github.com/shuffleproof/bgshuffle/group"
	"github.com/stretchr/testify/require"
)

func TestShuffleProofMarshalRoundTrip(t *testing.T) {
	gp := group.BLS12381G1()
	const ell = 124
	crs, err := NewShuffleCRS(gp, ell)
	require.NoError(t, err)

	perm := identityPermutation(ell)
	r := big.NewInt(1)
	Rvec, Svec, Tvec, Uvec := shuffleFixture(t, gp, ell, perm, r)

	proof, err := ProveShuffle(gp, crs, Rvec, Svec, Tvec, Uvec, perm, r, nil)
	require.NoError(t, err)

	encoded, err := proof.MarshalJSON()
	require.NoError(t, err)

	decoded, err := UnmarshalShuffleProof(encoded, gp)
	require.NoError(t, err)

	require.True(t, decoded.M.IsEqual(proof.M))
	require.True(t, decoded.A.IsEqual(proof.A))
	require.True(t, decoded.T.IsEqual(proof.T))
	require.True(t, decoded.U.IsEqual(proof.U))

	require.True(t, decoded.GProd.B.IsEqual(proof.GProd.B))
	require.Equal(t, 0, decoded.GProd.Bl.Cmp(proof.GProd.Bl))
	require.True(t, decoded.GProd.IPA.R.IsEqual(proof.GProd.IPA.R))
	require.True(t, decoded.GProd.IPA.S.IsEqual(proof.GProd.IPA.S))
	require.Equal(t, 0, decoded.GProd.IPA.TipB.Cmp(proof.GProd.IPA.TipB))
	require.Equal(t, 0, decoded.GProd.IPA.TipC.Cmp(proof.GProd.IPA.TipC))
	require.Len(t, decoded.GProd.IPA.BL, len(proof.GProd.IPA.BL))
	require.Len(t, decoded.GProd.IPA.CR, len(proof.GProd.IPA.CR))

	require.True(t, decoded.SameExp.Bt.IsEqual(proof.SameExp.Bt))
	require.True(t, decoded.SameExp.Bu.IsEqual(proof.SameExp.Bu))
	require.Equal(t, 0, decoded.SameExp.Zr.Cmp(proof.SameExp.Zr))
	require.Equal(t, 0, decoded.SameExp.Zt.Cmp(proof.SameExp.Zt))
	require.Equal(t, 0, decoded.SameExp.Zu.Cmp(proof.SameExp.Zu))

	require.True(t, decoded.MultiExp.R.IsEqual(proof.MultiExp.R))
	require.True(t, decoded.MultiExp.TBl.IsEqual(proof.MultiExp.TBl))
	require.True(t, decoded.MultiExp.UBl.IsEqual(proof.MultiExp.UBl))
	require.Equal(t, 0, decoded.MultiExp.TipA.Cmp(proof.MultiExp.TipA))
	require.Len(t, decoded.MultiExp.TL, len(proof.MultiExp.TL))
	require.Len(t, decoded.MultiExp.UR, len(proof.MultiExp.UR))
	require.Len(t, decoded.MultiExp.CL, len(proof.MultiExp.CL))

	err = VerifyShuffle(gp, crs, Rvec, Svec, Tvec, Uvec, decoded)
	require.NoError(t, err)
}
