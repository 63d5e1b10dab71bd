package shuffle

import (
	"io"
	"math/big"

	"github.com/shuffleproof/bgshuffle/group"
)

// IPAProof is the proof object emitted by the inner-product argument: it
// demonstrates knowledge of vectors b, c with <b,c> = z, given commitments
// B = sum(b_i G_i) and C = sum(c_i H_i).
type IPAProof struct {
	R, S       group.Element
	Bl1, Bl2   *big.Int
	BL, BR     []group.Element
	CL, CR     []group.Element
	TipB, TipC *big.Int
}

// ProveIPA proves that z is the inner product of the vectors committed in B
// and C. The caller is assumed to have already absorbed any surrounding
// context into transcript; ProveIPA absorbs B, C, and its own blinder
// commitments before deriving its first challenge.
func ProveIPA(gp group.Group, transcript *Transcript, crsG, crsH []group.Element, crsU group.Element,
	B, C group.Element, z *big.Int, vecB, vecC []*big.Int, rng io.Reader) (*IPAProof, error) {

	n := len(vecB)
	if n != len(vecC) || n != len(crsG) || n != len(crsH) || n == 0 {
		return nil, ErrInvalidInput
	}
	if !isPowerOfTwo(n) {
		return nil, ErrInvalidInput
	}
	q := gp.N()

	vecR, err := randomScalarVector(rng, q, n)
	if err != nil {
		return nil, err
	}
	vecS, err := randomScalarVector(rng, q, n)
	if err != nil {
		return nil, err
	}

	R, err := msm(gp, crsG, vecR)
	if err != nil {
		return nil, err
	}
	S, err := msm(gp, crsH, vecS)
	if err != nil {
		return nil, err
	}

	ipBS, err := innerProduct(vecB, vecS, q)
	if err != nil {
		return nil, err
	}
	ipCR, err := innerProduct(vecC, vecR, q)
	if err != nil {
		return nil, err
	}
	bl1 := addMod(ipBS, ipCR, q)
	bl2, err := innerProduct(vecR, vecS, q)
	if err != nil {
		return nil, err
	}

	if err := transcript.AbsorbPoints(B, C, R, S); err != nil {
		return nil, err
	}
	transcript.AbsorbScalars(z, bl1, bl2)
	x1 := transcript.ChallengeScalar()

	b := make([]*big.Int, n)
	c := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		b[i] = addMod(vecB[i], mulMod(x1, vecR[i], q), q)
		c[i] = addMod(vecC[i], mulMod(x1, vecS[i], q), q)
	}

	transcript.AbsorbScalars(x1)
	x2 := transcript.ChallengeScalar()
	uPrime := gp.Element().Scale(crsU, x2)

	G := append([]group.Element(nil), crsG...)
	H := append([]group.Element(nil), crsH...)

	var BL, BR, CL, CR []group.Element

	for len(b) > 1 {
		bL, bR := leftHalfScalars(b), rightHalfScalars(b)
		cL, cR := leftHalfScalars(c), rightHalfScalars(c)
		GL, GR := leftHalfPoints(G), rightHalfPoints(G)
		HL, HR := leftHalfPoints(H), rightHalfPoints(H)

		ipBRcL, err := innerProduct(bR, cL, q)
		if err != nil {
			return nil, err
		}
		ipBLcR, err := innerProduct(bL, cR, q)
		if err != nil {
			return nil, err
		}

		msmBR, err := msm(gp, GL, bR)
		if err != nil {
			return nil, err
		}
		clB := gp.Element().Add(msmBR, gp.Element().Scale(uPrime, ipBRcL))

		msmBL, err := msm(gp, GR, bL)
		if err != nil {
			return nil, err
		}
		crB := gp.Element().Add(msmBL, gp.Element().Scale(uPrime, ipBLcR))

		clC, err := msm(gp, HR, cL)
		if err != nil {
			return nil, err
		}
		crC, err := msm(gp, HL, cR)
		if err != nil {
			return nil, err
		}

		BL = append(BL, clB)
		CL = append(CL, clC)
		BR = append(BR, crB)
		CR = append(CR, crC)

		if err := transcript.AbsorbPoints(clB, clC, crB, crC); err != nil {
			return nil, err
		}
		y := transcript.ChallengeScalar()
		yInv, err := inverse(y, q)
		if err != nil {
			return nil, err
		}

		newB := make([]*big.Int, len(bL))
		newC := make([]*big.Int, len(bL))
		for i := range bL {
			newB[i] = addMod(bL[i], mulMod(y, bR[i], q), q)
			newC[i] = addMod(cL[i], mulMod(yInv, cR[i], q), q)
		}
		b, c = newB, newC
		G = foldPoints(gp, GL, GR, yInv)
		H = foldPoints(gp, HL, HR, y)
	}

	return &IPAProof{
		R: R, S: S, Bl1: bl1, Bl2: bl2,
		BL: BL, BR: BR, CL: CL, CR: CR,
		TipB: b[0], TipC: c[0],
	}, nil
}

// VerifyIPA verifies that z is the inner product of the vectors committed
// in B and C against proof.
func VerifyIPA(gp group.Group, transcript *Transcript, crsG, crsH []group.Element, crsU group.Element,
	B, C group.Element, z *big.Int, proof *IPAProof) error {

	n := len(crsG)
	if n == 0 || n != len(crsH) || !isPowerOfTwo(n) {
		return ErrInvalidInput
	}
	logN := log2(n)
	if len(proof.BL) != logN || len(proof.BR) != logN || len(proof.CL) != logN || len(proof.CR) != logN {
		return ErrInvalidProof
	}
	q := gp.N()

	if err := transcript.AbsorbPoints(B, C, proof.R, proof.S); err != nil {
		return err
	}
	transcript.AbsorbScalars(z, proof.Bl1, proof.Bl2)
	x1 := transcript.ChallengeScalar()

	zPrime := addMod(addMod(z, mulMod(x1, proof.Bl1, q), q), mulMod(mulMod(x1, x1, q), proof.Bl2, q), q)
	B = gp.Element().Add(B, gp.Element().Scale(proof.R, x1))
	C = gp.Element().Add(C, gp.Element().Scale(proof.S, x1))

	transcript.AbsorbScalars(x1)
	x2 := transcript.ChallengeScalar()
	uPrime := gp.Element().Scale(crsU, x2)
	B = gp.Element().Add(B, gp.Element().Scale(uPrime, zPrime))

	G := append([]group.Element(nil), crsG...)
	H := append([]group.Element(nil), crsH...)

	for i := 0; i < logN; i++ {
		GL, GR := leftHalfPoints(G), rightHalfPoints(G)
		HL, HR := leftHalfPoints(H), rightHalfPoints(H)

		if err := transcript.AbsorbPoints(proof.BL[i], proof.CL[i], proof.BR[i], proof.CR[i]); err != nil {
			return err
		}
		y := transcript.ChallengeScalar()
		yInv, err := inverse(y, q)
		if err != nil {
			return err
		}

		B = gp.Element().Add(gp.Element().Add(gp.Element().Scale(proof.BL[i], y), B), gp.Element().Scale(proof.BR[i], yInv))
		C = gp.Element().Add(gp.Element().Add(gp.Element().Scale(proof.CL[i], y), C), gp.Element().Scale(proof.CR[i], yInv))

		G = foldPoints(gp, GL, GR, yInv)
		H = foldPoints(gp, HL, HR, y)
	}

	if len(G) != 1 || len(H) != 1 {
		return ErrInvalidProof
	}

	expB := gp.Element().Add(gp.Element().Scale(G[0], proof.TipB), gp.Element().Scale(uPrime, mulMod(proof.TipB, proof.TipC, q)))
	expC := gp.Element().Scale(H[0], proof.TipC)

	if !B.IsEqual(expB) || !C.IsEqual(expC) {
		return ErrInvalidProof
	}
	return nil
}
