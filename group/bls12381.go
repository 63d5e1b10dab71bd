package group

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// bls12381FieldOrder is the base field modulus of BLS12-381.
var bls12381FieldOrder, _ = new(big.Int).SetString(
	"4002409555221667393417789825735904156556882819939007885332058136124031650490837864442687629129015664037894272559787", 10)

// bls12381GroupOrder is the prime order of the BLS12-381 G1/G2 subgroups.
var bls12381GroupOrder, _ = new(big.Int).SetString(
	"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

// bls12381G1DST is the domain-separation tag used when hashing arbitrary
// strings to G1 points via MapToGroup, following the DST naming convention
// of the IRTF hash-to-curve suite.
const bls12381G1DST = "BGSHUFFLE_BLS12381G1_XMD:SHA-256_SSWU_RO_"

type bls12381G1Group struct{}

type bls12381G1Point struct {
	val bls12381.G1Jac
}

func (g *bls12381G1Group) Name() string { return "bls12-381-g1" }

func (g *bls12381G1Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(&GroupId{g.Name()})
}

func (g *bls12381G1Group) P() *big.Int { return bls12381FieldOrder }
func (g *bls12381G1Group) N() *big.Int { return bls12381GroupOrder }

func (g *bls12381G1Group) Generator() Element {
	_, _, g1Aff, _ := bls12381.Generators()
	p := &bls12381G1Point{}
	p.val.FromAffine(&g1Aff)
	return p
}

func (g *bls12381G1Group) Identity() Element {
	return &bls12381G1Point{}
}

func (g *bls12381G1Group) Random() Element {
	s, err := rand.Int(rand.Reader, bls12381GroupOrder)
	if err != nil {
		panic(err)
	}
	return g.Generator().BaseScale(s)
}

func (g *bls12381G1Group) Element() Element {
	return &bls12381G1Point{}
}

func (e *bls12381G1Point) check(a Element) *bls12381G1Point {
	ea, ok := a.(*bls12381G1Point)
	if !ok {
		panic("incompatible group element type")
	}
	return ea
}

func (e *bls12381G1Point) Add(a, b Element) Element {
	ea, eb := e.check(a), e.check(b)
	e.val.Set(&ea.val)
	e.val.AddAssign(&eb.val)
	return e
}

func (e *bls12381G1Point) Subtract(a, b Element) Element {
	ea, eb := e.check(a), e.check(b)
	var negB bls12381.G1Jac
	negB.Neg(&eb.val)
	e.val.Set(&ea.val)
	e.val.AddAssign(&negB)
	return e
}

func (e *bls12381G1Point) Negate(a Element) Element {
	ea := e.check(a)
	e.val.Neg(&ea.val)
	return e
}

func (e *bls12381G1Point) Scale(a Element, s *big.Int) Element {
	ea := e.check(a)
	scalar := new(big.Int).Mod(s, bls12381GroupOrder)
	e.val.ScalarMultiplication(&ea.val, scalar)
	return e
}

func (e *bls12381G1Point) BaseScale(s *big.Int) Element {
	_, _, g1Aff, _ := bls12381.Generators()
	var base bls12381.G1Jac
	base.FromAffine(&g1Aff)
	scalar := new(big.Int).Mod(s, bls12381GroupOrder)
	e.val.ScalarMultiplication(&base, scalar)
	return e
}

func (e *bls12381G1Point) Set(a Element) Element {
	ea := e.check(a)
	e.val.Set(&ea.val)
	return e
}

func (e *bls12381G1Point) SetBytes(b []byte) Element {
	var aff bls12381.G1Affine
	if _, err := aff.SetBytes(b); err != nil {
		panic(err)
	}
	e.val.FromAffine(&aff)
	return e
}

// MapToGroup hashes s to a BLS12-381 G1 point whose discrete logarithm with
// respect to any other generator derived this way is unknown, using
// gnark-crypto's RFC 9380 hash-to-curve implementation.
func (e *bls12381G1Point) MapToGroup(s string) (Element, error) {
	aff, err := bls12381.HashToG1([]byte(s), []byte(bls12381G1DST))
	if err != nil {
		return nil, err
	}
	e.val.FromAffine(&aff)
	return e, nil
}

func (e *bls12381G1Point) IsEqual(b Element) bool {
	eb := e.check(b)
	var a, other bls12381.G1Affine
	a.FromJacobian(&e.val)
	other.FromJacobian(&eb.val)
	return a.Equal(&other)
}

func (e *bls12381G1Point) IsIdentity() bool {
	var a bls12381.G1Affine
	a.FromJacobian(&e.val)
	return a.IsInfinity()
}

func (e *bls12381G1Point) GroupOrder() *big.Int { return bls12381GroupOrder }
func (e *bls12381G1Point) FieldOrder() *big.Int { return bls12381FieldOrder }

func (e *bls12381G1Point) String() string {
	var a bls12381.G1Affine
	a.FromJacobian(&e.val)
	return a.String()
}

func (e *bls12381G1Point) MarshalBinary() ([]byte, error) {
	var a bls12381.G1Affine
	a.FromJacobian(&e.val)
	b := a.Marshal()
	return b, nil
}

func (e *bls12381G1Point) UnmarshalBinary(data []byte) error {
	var a bls12381.G1Affine
	if _, err := a.SetBytes(data); err != nil {
		return err
	}
	e.val.FromAffine(&a)
	return nil
}

func (e *bls12381G1Point) MarshalJSON() ([]byte, error) {
	b, err := e.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(b)
}

func (e *bls12381G1Point) UnmarshalJSON(data []byte) error {
	var b []byte
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	if err := e.UnmarshalBinary(b); err != nil {
		return fmt.Errorf("bls12381: unmarshal json: %w", err)
	}
	return nil
}

// Coordinates returns the point's affine (x, y) coordinates reduced into the
// base field. Used by the shuffle transcript, which is pinned to a concrete
// base field's fixed-width coordinate encoding and so only operates on group
// elements exposing this capability.
func (e *bls12381G1Point) Coordinates() (*big.Int, *big.Int) {
	var a bls12381.G1Affine
	a.FromJacobian(&e.val)
	x := new(big.Int)
	y := new(big.Int)
	a.X.BigInt(x)
	a.Y.BigInt(y)
	return x, y
}

// BLS12381G1 returns the BLS12-381 G1 group: the production backend the
// shuffle argument is specified against.
func BLS12381G1() Group {
	return &bls12381G1Group{}
}
