package shuffle

import (
	"io"
	"math/big"

	"github.com/shuffleproof/bgshuffle/group"
)

// GrandProductProof demonstrates that the product of the non-blinder
// entries committed in A equals a public value, by linearizing the
// running-product relation into a single inner-product statement checked
// with a nested IPAProof.
type GrandProductProof struct {
	B   group.Element
	Bl  *big.Int
	IPA *IPAProof
}

// buildGprodBasis derives the folded commitment C and the basis H shared by
// the grand-product prover and verifier, following the wrap-and-power
// schedule that linearizes the running-product relation.
func buildGprodBasis(gp group.Group, crsG []group.Element, A group.Element, x *big.Int, ell int) (group.Element, []group.Element, error) {
	q := gp.N()
	n := len(crsG)

	xInv, err := inverse(x, q)
	if err != nil {
		return nil, nil, err
	}

	sumG, err := msm(gp, crsG[:ell], onesVector(ell))
	if err != nil {
		return nil, nil, err
	}
	negXInv := subMod(big.NewInt(0), xInv, q)
	C := gp.Element().Add(gp.Element().Scale(sumG, negXInv), A)

	H := make([]group.Element, n)
	powInvX := new(big.Int).Set(xInv)
	for i := 1; i < ell; i++ {
		H[i-1] = gp.Element().Scale(crsG[i], powInvX)
		powInvX = mulMod(powInvX, xInv, q)
	}
	H[ell-1] = gp.Element().Scale(crsG[0], powInvX)
	powInvX = mulMod(powInvX, xInv, q)
	for j := ell; j < n; j++ {
		H[j] = gp.Element().Scale(crsG[j], powInvX)
		powInvX = mulMod(powInvX, xInv, q)
	}

	return C, H, nil
}

// ProveGrandProduct proves that, for a commitment A to a length-n vector a
// (n = ell + nBlinders), the product of the first ell entries equals the
// public value gprodResult.
func ProveGrandProduct(gp group.Group, transcript *Transcript, crsG []group.Element, crsU group.Element,
	A group.Element, gprodResult *big.Int, vecA []*big.Int, nBlinders int, rng io.Reader) (*GrandProductProof, error) {

	n := len(crsG)
	ell := n - nBlinders
	if ell <= 0 || len(vecA) != n {
		return nil, ErrInvalidInput
	}
	q := gp.N()

	vecB := make([]*big.Int, n)
	vecB[0] = big.NewInt(1)
	for i := 1; i < ell; i++ {
		vecB[i] = mulMod(vecA[i], vecB[i-1], q)
	}
	blinders, err := randomScalarVector(rng, q, nBlinders)
	if err != nil {
		return nil, err
	}
	copy(vecB[ell:], blinders)

	B, err := msm(gp, crsG, vecB)
	if err != nil {
		return nil, err
	}
	bl, err := innerProduct(vecA[ell:], vecB[ell:], q)
	if err != nil {
		return nil, err
	}

	if err := transcript.AbsorbPoints(A, B); err != nil {
		return nil, err
	}
	transcript.AbsorbScalars(bl)
	x := transcript.ChallengeScalar()

	C, H, err := buildGprodBasis(gp, crsG, A, x, ell)
	if err != nil {
		return nil, err
	}

	vecC := make([]*big.Int, n)
	powX := new(big.Int).Set(x)
	powXPrev := big.NewInt(1)
	for i := 1; i < ell; i++ {
		vecC[i-1] = subMod(mulMod(vecA[i], powX, q), powXPrev, q)
		powXPrev = powX
		powX = mulMod(powX, x, q)
	}
	vecC[ell-1] = subMod(mulMod(vecA[0], powX, q), powXPrev, q)
	powX = mulMod(powX, x, q)
	for j := ell; j < n; j++ {
		vecC[j] = mulMod(vecA[j], powX, q)
		powX = mulMod(powX, x, q)
	}

	innerProd := subMod(addMod(mulMod(bl, powMod(x, int64(ell+1), q), q), mulMod(gprodResult, powMod(x, int64(ell), q), q), q), big.NewInt(1), q)

	ipaProof, err := ProveIPA(gp, transcript, crsG, H, crsU, B, C, innerProd, vecB, vecC, rng)
	if err != nil {
		return nil, err
	}

	return &GrandProductProof{B: B, Bl: bl, IPA: ipaProof}, nil
}

// VerifyGrandProduct verifies that gprodResult is the product of the
// non-blinder elements committed in A.
func VerifyGrandProduct(gp group.Group, transcript *Transcript, crsG []group.Element, crsU group.Element,
	A group.Element, gprodResult *big.Int, nBlinders int, proof *GrandProductProof) error {

	n := len(crsG)
	ell := n - nBlinders
	if ell <= 0 {
		return ErrInvalidInput
	}
	q := gp.N()

	if err := transcript.AbsorbPoints(A, proof.B); err != nil {
		return err
	}
	transcript.AbsorbScalars(proof.Bl)
	x := transcript.ChallengeScalar()

	C, H, err := buildGprodBasis(gp, crsG, A, x, ell)
	if err != nil {
		return err
	}

	innerProd := subMod(addMod(mulMod(proof.Bl, powMod(x, int64(ell+1), q), q), mulMod(gprodResult, powMod(x, int64(ell), q), q), q), big.NewInt(1), q)

	return VerifyIPA(gp, transcript, crsG, H, crsU, proof.B, C, innerProd, proof.IPA)
}
