package shuffle

import (
	"io"
	"math/big"

	"github.com/shuffleproof/bgshuffle/group"
)

// MultiExpProof demonstrates that T = sum(a_i * Tbase_i) and
// U = sum(a_i * Ubase_i) simultaneously, for the same committed vector a
// that A commits to.
type MultiExpProof struct {
	R, TBl, UBl            group.Element
	TL, TR, UL, UR, CL, CR []group.Element
	TipA                   *big.Int
}

// ProveMultiExp proves T = <a, Tbase> and U = <a, Ubase> for the vector a
// committed by A against crsG.
func ProveMultiExp(gp group.Group, transcript *Transcript, crsG []group.Element,
	Tbase, Ubase []group.Element, A, T, U group.Element, vecA []*big.Int, rng io.Reader) (*MultiExpProof, error) {

	n := len(crsG)
	if n == 0 || n != len(Tbase) || n != len(Ubase) || n != len(vecA) || !isPowerOfTwo(n) {
		return nil, ErrInvalidInput
	}
	q := gp.N()

	vecR, err := randomScalarVector(rng, q, n)
	if err != nil {
		return nil, err
	}

	R, err := msm(gp, crsG, vecR)
	if err != nil {
		return nil, err
	}
	TBl, err := msm(gp, Tbase, vecR)
	if err != nil {
		return nil, err
	}
	UBl, err := msm(gp, Ubase, vecR)
	if err != nil {
		return nil, err
	}

	if err := transcript.AbsorbPoints(A, T, U, R, TBl, UBl); err != nil {
		return nil, err
	}
	x := transcript.ChallengeScalar()

	a := make([]*big.Int, n)
	for i := range a {
		a[i] = addMod(vecA[i], mulMod(x, vecR[i], q), q)
	}

	G := append([]group.Element(nil), crsG...)
	Tb := append([]group.Element(nil), Tbase...)
	Ub := append([]group.Element(nil), Ubase...)

	var TL, TR, UL, UR, CL, CR []group.Element

	for len(a) > 1 {
		aL, aR := leftHalfScalars(a), rightHalfScalars(a)
		TbL, TbR := leftHalfPoints(Tb), rightHalfPoints(Tb)
		UbL, UbR := leftHalfPoints(Ub), rightHalfPoints(Ub)
		GL, GR := leftHalfPoints(G), rightHalfPoints(G)

		zLT, err := msm(gp, TbR, aL)
		if err != nil {
			return nil, err
		}
		zLU, err := msm(gp, UbR, aL)
		if err != nil {
			return nil, err
		}
		zRT, err := msm(gp, TbL, aR)
		if err != nil {
			return nil, err
		}
		zRU, err := msm(gp, UbL, aR)
		if err != nil {
			return nil, err
		}
		cL, err := msm(gp, GR, aL)
		if err != nil {
			return nil, err
		}
		cR, err := msm(gp, GL, aR)
		if err != nil {
			return nil, err
		}

		TL = append(TL, zLT)
		TR = append(TR, zRT)
		UL = append(UL, zLU)
		UR = append(UR, zRU)
		CL = append(CL, cL)
		CR = append(CR, cR)

		if err := transcript.AbsorbPoints(zLT, zLU, zRT, zRU, cL, cR); err != nil {
			return nil, err
		}
		y := transcript.ChallengeScalar()
		yInv, err := inverse(y, q)
		if err != nil {
			return nil, err
		}

		newA := make([]*big.Int, len(aL))
		for i := range aL {
			newA[i] = addMod(aL[i], mulMod(yInv, aR[i], q), q)
		}
		a = newA
		Tb = foldPoints(gp, TbL, TbR, y)
		Ub = foldPoints(gp, UbL, UbR, y)
		G = foldPoints(gp, GL, GR, y)
	}

	return &MultiExpProof{
		R: R, TBl: TBl, UBl: UBl,
		TL: TL, TR: TR, UL: UL, UR: UR, CL: CL, CR: CR,
		TipA: a[0],
	}, nil
}

// VerifyMultiExp verifies a MultiExpProof against the public commitments
// A, T, U and the bases Tbase, Ubase.
func VerifyMultiExp(gp group.Group, transcript *Transcript, crsG []group.Element,
	Tbase, Ubase []group.Element, A, T, U group.Element, proof *MultiExpProof) error {

	n := len(crsG)
	if n == 0 || n != len(Tbase) || n != len(Ubase) || !isPowerOfTwo(n) {
		return ErrInvalidInput
	}
	logN := log2(n)
	if len(proof.CL) != logN || len(proof.CR) != logN || len(proof.TL) != logN || len(proof.TR) != logN ||
		len(proof.UL) != logN || len(proof.UR) != logN {
		return ErrInvalidProof
	}
	q := gp.N()

	if err := transcript.AbsorbPoints(A, T, U, proof.R, proof.TBl, proof.UBl); err != nil {
		return err
	}
	x := transcript.ChallengeScalar()

	A = gp.Element().Add(A, gp.Element().Scale(proof.R, x))
	T = gp.Element().Add(T, gp.Element().Scale(proof.TBl, x))
	U = gp.Element().Add(U, gp.Element().Scale(proof.UBl, x))

	G := append([]group.Element(nil), crsG...)
	Tb := append([]group.Element(nil), Tbase...)
	Ub := append([]group.Element(nil), Ubase...)

	for i := 0; i < logN; i++ {
		GL, GR := leftHalfPoints(G), rightHalfPoints(G)
		TbL, TbR := leftHalfPoints(Tb), rightHalfPoints(Tb)
		UbL, UbR := leftHalfPoints(Ub), rightHalfPoints(Ub)

		if err := transcript.AbsorbPoints(proof.TL[i], proof.UL[i], proof.TR[i], proof.UR[i], proof.CL[i], proof.CR[i]); err != nil {
			return err
		}
		y := transcript.ChallengeScalar()
		yInv, err := inverse(y, q)
		if err != nil {
			return err
		}

		A = gp.Element().Add(gp.Element().Add(gp.Element().Scale(proof.CL[i], y), A), gp.Element().Scale(proof.CR[i], yInv))
		T = gp.Element().Add(gp.Element().Add(gp.Element().Scale(proof.TL[i], y), T), gp.Element().Scale(proof.TR[i], yInv))
		U = gp.Element().Add(gp.Element().Add(gp.Element().Scale(proof.UL[i], y), U), gp.Element().Scale(proof.UR[i], yInv))

		G = foldPoints(gp, GL, GR, y)
		Tb = foldPoints(gp, TbL, TbR, y)
		Ub = foldPoints(gp, UbL, UbR, y)
	}

	if len(G) != 1 || len(Tb) != 1 || len(Ub) != 1 {
		return ErrInvalidProof
	}

	expA := gp.Element().Scale(G[0], proof.TipA)
	expT := gp.Element().Scale(Tb[0], proof.TipA)
	expU := gp.Element().Scale(Ub[0], proof.TipA)

	if !A.IsEqual(expA) || !T.IsEqual(expT) || !U.IsEqual(expU) {
		return ErrInvalidProof
	}
	return nil
}
