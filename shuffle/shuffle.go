package shuffle

import (
	"io"
	"math/big"

	"github.com/shuffleproof/bgshuffle/group"
)

// ShuffleProof is the top-level Bayer-Groth proof: it demonstrates that
// (T, U) are a randomized permutation of (R, S) without revealing the
// permutation or the randomizing scalar.
type ShuffleProof struct {
	M, A, T, U group.Element
	GProd      *GrandProductProof
	SameExp    *SameExponentProof
	MultiExp   *MultiExpProof
}

// ProveShuffle proves that there exist perm and r such that
// Tvec[i] = r * Rvec[perm[i]] and Uvec[i] = r * Svec[perm[i]] for all i.
func ProveShuffle(gp group.Group, crs *ShuffleCRS, Rvec, Svec, Tvec, Uvec []group.Element,
	perm Permutation, r *big.Int, rng io.Reader) (*ShuffleProof, error) {

	ell := len(Rvec)
	if len(Svec) != ell || len(Tvec) != ell || len(Uvec) != ell || len(perm) != ell {
		return nil, ErrInvalidInput
	}
	if err := perm.Validate(); err != nil {
		return nil, err
	}
	n := ell + NBlinders
	if len(crs.G) != n || !isPowerOfTwo(n) {
		return nil, ErrInvalidInput
	}
	q := gp.N()

	transcript := NewTranscript(q)

	// Step 1: commit to the permutation.
	sBlinders, err := randomScalarVector(rng, q, NBlinders)
	if err != nil {
		return nil, err
	}
	permExt := append(permToScalars(perm), sBlinders...)
	M, err := msm(gp, crs.G, permExt)
	if err != nil {
		return nil, err
	}

	absorbed := make([]group.Element, 0, 2*ell+1)
	absorbed = append(absorbed, Tvec...)
	absorbed = append(absorbed, Uvec...)
	absorbed = append(absorbed, M)
	if err := transcript.AbsorbPoints(absorbed...); err != nil {
		return nil, err
	}
	vecA := make([]*big.Int, ell)
	for i := range vecA {
		vecA[i] = transcript.ChallengeScalar()
	}

	// Step 2: commit to the permuted challenge vector.
	aBlinders, err := randomScalarVector(rng, q, NBlinders)
	if err != nil {
		return nil, err
	}
	aPerm, err := Apply(vecA, perm)
	if err != nil {
		return nil, err
	}
	aPermWithBlinders := append(aPerm, aBlinders...)
	A, err := msm(gp, crs.G, aPermWithBlinders)
	if err != nil {
		return nil, err
	}

	if err := transcript.AbsorbPoints(A); err != nil {
		return nil, err
	}
	alpha := transcript.ChallengeScalar()
	beta := transcript.ChallengeScalar()

	// Step 3: the grand-product check over the permuted polynomial factors.
	polyFactors := make([]*big.Int, n)
	for i := range polyFactors {
		polyFactors[i] = addMod(addMod(aPermWithBlinders[i], mulMod(permExt[i], alpha, q), q), beta, q)
	}
	gprodResult := big.NewInt(1)
	for i := 0; i < ell; i++ {
		gprodResult = mulMod(gprodResult, polyFactors[i], q)
	}

	sumG, err := msm(gp, crs.G, onesVector(n))
	if err != nil {
		return nil, err
	}
	A1 := gp.Element().Add(gp.Element().Add(A, gp.Element().Scale(M, alpha)), gp.Element().Scale(sumG, beta))

	gprodProof, err := ProveGrandProduct(gp, transcript, crs.G, crs.U, A1, gprodResult, polyFactors, NBlinders, rng)
	if err != nil {
		return nil, err
	}

	// Step 4: same-exponent proof linking R/S to T/U.
	if err := transcript.AbsorbPoints(A); err != nil {
		return nil, err
	}
	vecGamma := make([]*big.Int, NBlinders)
	vecDelta := make([]*big.Int, NBlinders)
	for i := 0; i < NBlinders; i++ {
		vecGamma[i] = transcript.ChallengeScalar()
		vecDelta[i] = transcript.ChallengeScalar()
	}

	Rcomm, err := msm(gp, Rvec, vecA)
	if err != nil {
		return nil, err
	}
	Scomm, err := msm(gp, Svec, vecA)
	if err != nil {
		return nil, err
	}
	rt, err := innerProduct(vecGamma, aBlinders, q)
	if err != nil {
		return nil, err
	}
	ru, err := innerProduct(vecDelta, aBlinders, q)
	if err != nil {
		return nil, err
	}
	Tcomm := gp.Element().Add(gp.Element().Scale(Rcomm, r), gp.Element().Scale(crs.Gt, rt))
	Ucomm := gp.Element().Add(gp.Element().Scale(Scomm, r), gp.Element().Scale(crs.Gu, ru))

	sameExpProof, err := ProveSameExponent(gp, transcript, crs.Gt, crs.Gu, Rcomm, Scomm, Tcomm, Ucomm, r, rt, ru, rng)
	if err != nil {
		return nil, err
	}

	// Step 5: multi-exponentiation proof over the blinded target vectors.
	TvecBlinded := make([]group.Element, n)
	UvecBlinded := make([]group.Element, n)
	copy(TvecBlinded, Tvec)
	copy(UvecBlinded, Uvec)
	for i := 0; i < NBlinders; i++ {
		TvecBlinded[ell+i] = gp.Element().Scale(crs.Gt, vecGamma[i])
		UvecBlinded[ell+i] = gp.Element().Scale(crs.Gu, vecDelta[i])
	}

	multiExpProof, err := ProveMultiExp(gp, transcript, crs.G, TvecBlinded, UvecBlinded, A, Tcomm, Ucomm, aPermWithBlinders, rng)
	if err != nil {
		return nil, err
	}

	return &ShuffleProof{
		M: M, A: A, T: Tcomm, U: Ucomm,
		GProd: gprodProof, SameExp: sameExpProof, MultiExp: multiExpProof,
	}, nil
}

// VerifyShuffle verifies proof against crs and the four public vectors.
func VerifyShuffle(gp group.Group, crs *ShuffleCRS, Rvec, Svec, Tvec, Uvec []group.Element, proof *ShuffleProof) error {
	ell := len(Rvec)
	if len(Svec) != ell || len(Tvec) != ell || len(Uvec) != ell {
		return ErrInvalidInput
	}
	n := ell + NBlinders
	if len(crs.G) != n || !isPowerOfTwo(n) {
		return ErrInvalidInput
	}
	q := gp.N()

	transcript := NewTranscript(q)

	absorbed := make([]group.Element, 0, 2*ell+1)
	absorbed = append(absorbed, Tvec...)
	absorbed = append(absorbed, Uvec...)
	absorbed = append(absorbed, proof.M)
	if err := transcript.AbsorbPoints(absorbed...); err != nil {
		return err
	}

	vecA := make([]*big.Int, ell)
	for i := range vecA {
		vecA[i] = transcript.ChallengeScalar()
	}

	if err := transcript.AbsorbPoints(proof.A); err != nil {
		return err
	}
	alpha := transcript.ChallengeScalar()
	beta := transcript.ChallengeScalar()

	// Permuting the roots of the polynomial does not change its product -
	// the crux of Bayer-Groth soundness.
	gprodResult := big.NewInt(1)
	for i := 0; i < ell; i++ {
		factor := addMod(addMod(vecA[i], mulMod(big.NewInt(int64(i)), alpha, q), q), beta, q)
		gprodResult = mulMod(gprodResult, factor, q)
	}

	sumG, err := msm(gp, crs.G, onesVector(n))
	if err != nil {
		return err
	}
	A1 := gp.Element().Add(gp.Element().Add(proof.A, gp.Element().Scale(proof.M, alpha)), gp.Element().Scale(sumG, beta))

	if err := VerifyGrandProduct(gp, transcript, crs.G, crs.U, A1, gprodResult, NBlinders, proof.GProd); err != nil {
		return err
	}

	if err := transcript.AbsorbPoints(proof.A); err != nil {
		return err
	}
	vecGamma := make([]*big.Int, NBlinders)
	vecDelta := make([]*big.Int, NBlinders)
	for i := 0; i < NBlinders; i++ {
		vecGamma[i] = transcript.ChallengeScalar()
		vecDelta[i] = transcript.ChallengeScalar()
	}

	Rcomm, err := msm(gp, Rvec, vecA)
	if err != nil {
		return err
	}
	Scomm, err := msm(gp, Svec, vecA)
	if err != nil {
		return err
	}

	if err := VerifySameExponent(gp, transcript, crs.Gt, crs.Gu, Rcomm, Scomm, proof.T, proof.U, proof.SameExp); err != nil {
		return err
	}

	TvecBlinded := make([]group.Element, n)
	UvecBlinded := make([]group.Element, n)
	copy(TvecBlinded, Tvec)
	copy(UvecBlinded, Uvec)
	for i := 0; i < NBlinders; i++ {
		TvecBlinded[ell+i] = gp.Element().Scale(crs.Gt, vecGamma[i])
		UvecBlinded[ell+i] = gp.Element().Scale(crs.Gu, vecDelta[i])
	}

	if err := VerifyMultiExp(gp, transcript, crs.G, TvecBlinded, UvecBlinded, proof.A, proof.T, proof.U, proof.MultiExp); err != nil {
		return err
	}

	return nil
}
