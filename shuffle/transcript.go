package shuffle

import (
	"crypto/sha256"
	"math/big"

	"github.com/shuffleproof/bgshuffle/group"
)

// coordinates is satisfied by group elements that can expose their affine
// (x, y) representation. The transcript's point encoding is pinned to a
// concrete base field's fixed-width coordinate layout, which only makes
// sense for a backend such as group.BLS12381G1.
type coordinates interface {
	Coordinates() (*big.Int, *big.Int)
}

// coordWidth is the serialized width of a single BLS12-381 G1 base-field
// coordinate: wide enough to hold the ~381-bit modulus with room to spare,
// matching the reference's 64-byte-per-coordinate encoding.
const coordWidth = 64

// Transcript is a sequential Fiat-Shamir transcript. Absorptions and
// challenge emissions must follow the exact order documented for each
// subargument - reordering them breaks soundness. A Transcript is created
// fresh per proof and is not safe for concurrent use.
type Transcript struct {
	digest []byte
	q      *big.Int
}

// NewTranscript returns an empty transcript for a group of order q.
func NewTranscript(q *big.Int) *Transcript {
	return &Transcript{q: q}
}

func serializePoint(p group.Element) ([]byte, error) {
	c, ok := p.(coordinates)
	if !ok {
		return nil, ErrInternal
	}
	x, y := c.Coordinates()
	buf := make([]byte, 2*coordWidth)
	leFill(buf[:coordWidth], x)
	leFill(buf[coordWidth:], y)
	return buf, nil
}

// leFill writes x into buf as a little-endian byte string, zero-padded on
// the high end.
func leFill(buf []byte, x *big.Int) {
	be := x.Bytes()
	for i, j := 0, len(be)-1; j >= 0 && i < len(buf); i, j = i+1, j-1 {
		buf[i] = be[j]
	}
}

// AbsorbPoints appends the affine encoding of each point to the digest.
func (t *Transcript) AbsorbPoints(ps ...group.Element) error {
	for _, p := range ps {
		b, err := serializePoint(p)
		if err != nil {
			return err
		}
		t.digest = append(t.digest, b...)
	}
	return nil
}

// AbsorbScalars appends the decimal textual encoding of each scalar. Prover
// and verifier transcripts must use the identical encoding or they will
// silently disagree on every subsequent challenge.
func (t *Transcript) AbsorbScalars(xs ...*big.Int) {
	for _, x := range xs {
		t.digest = append(t.digest, []byte(x.String())...)
	}
}

// ChallengeScalar hashes the current digest with SHA-256, reduces the
// little-endian interpretation of the digest mod q, and re-absorbs the
// result so that two challenge requests with no intervening absorption
// never collide.
func (t *Transcript) ChallengeScalar() *big.Int {
	sum := sha256.Sum256(t.digest)
	le := make([]byte, len(sum))
	for i, b := range sum {
		le[len(sum)-1-i] = b
	}
	raw := new(big.Int).SetBytes(le)
	challenge := mod(raw, t.q)
	t.AbsorbScalars(challenge)
	return challenge
}
