package shuffle

import (
	"io"
	"math/big"

	"github.com/shuffleproof/bgshuffle/group"
)

// SameExponentProof is a sigma-protocol proof that T = r*R + rt*Gt and
// U = r*S + ru*Gu share the exponent r.
type SameExponentProof struct {
	Bt, Bu     group.Element
	Zr, Zt, Zu *big.Int
}

// ProveSameExponent proves knowledge of r, rt, ru with T = r*R + rt*Gt and
// U = r*S + ru*Gu using a three-move sigma protocol.
func ProveSameExponent(gp group.Group, transcript *Transcript, Gt, Gu group.Element,
	R, S, T, U group.Element, r, rt, ru *big.Int, rng io.Reader) (*SameExponentProof, error) {

	q := gp.N()
	blR, err := RandomScalar(rng, q)
	if err != nil {
		return nil, err
	}
	blT, err := RandomScalar(rng, q)
	if err != nil {
		return nil, err
	}
	blU, err := RandomScalar(rng, q)
	if err != nil {
		return nil, err
	}

	Bt := gp.Element().Add(gp.Element().Scale(R, blR), gp.Element().Scale(Gt, blT))
	Bu := gp.Element().Add(gp.Element().Scale(S, blR), gp.Element().Scale(Gu, blU))

	if err := transcript.AbsorbPoints(R, S, T, U); err != nil {
		return nil, err
	}
	// Bt, Bu are absorbed as points, not as scalars via their string
	// representation - the latter would weaken the binding of the
	// challenge to the actual commitment values.
	if err := transcript.AbsorbPoints(Bt, Bu); err != nil {
		return nil, err
	}
	x := transcript.ChallengeScalar()

	zr := addMod(blR, mulMod(r, x, q), q)
	zt := addMod(blT, mulMod(rt, x, q), q)
	zu := addMod(blU, mulMod(ru, x, q), q)

	return &SameExponentProof{Bt: Bt, Bu: Bu, Zr: zr, Zt: zt, Zu: zu}, nil
}

// VerifySameExponent verifies a SameExponentProof against the public points
// R, S, T, U, Gt, Gu.
func VerifySameExponent(gp group.Group, transcript *Transcript, Gt, Gu group.Element,
	R, S, T, U group.Element, proof *SameExponentProof) error {

	if err := transcript.AbsorbPoints(R, S, T, U); err != nil {
		return err
	}
	if err := transcript.AbsorbPoints(proof.Bt, proof.Bu); err != nil {
		return err
	}
	x := transcript.ChallengeScalar()

	lhs1 := gp.Element().Add(proof.Bt, gp.Element().Scale(T, x))
	rhs1 := gp.Element().Add(gp.Element().Scale(R, proof.Zr), gp.Element().Scale(Gt, proof.Zt))
	if !lhs1.IsEqual(rhs1) {
		return ErrInvalidProof
	}

	lhs2 := gp.Element().Add(proof.Bu, gp.Element().Scale(U, x))
	rhs2 := gp.Element().Add(gp.Element().Scale(S, proof.Zr), gp.Element().Scale(Gu, proof.Zu))
	if !lhs2.IsEqual(rhs2) {
		return ErrInvalidProof
	}
	return nil
}
