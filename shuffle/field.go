package shuffle

import "math/big"

// mod reduces x into [0, q).
func mod(x, q *big.Int) *big.Int {
	return new(big.Int).Mod(x, q)
}

func addMod(a, b, q *big.Int) *big.Int {
	return mod(new(big.Int).Add(a, b), q)
}

func subMod(a, b, q *big.Int) *big.Int {
	return mod(new(big.Int).Sub(a, b), q)
}

func mulMod(a, b, q *big.Int) *big.Int {
	return mod(new(big.Int).Mul(a, b), q)
}

// inverse computes the modular inverse of a mod q via the extended
// Euclidean algorithm. Unlike the reference, where inv(0) silently returns
// zero, an inverse of zero is reported as ErrInternal: a challenge scalar
// landing on zero would otherwise corrupt every later equation without
// signaling a fault.
func inverse(a, q *big.Int) (*big.Int, error) {
	a = mod(a, q)
	if a.Sign() == 0 {
		return nil, ErrInternal
	}
	inv := new(big.Int).ModInverse(a, q)
	if inv == nil {
		return nil, ErrInternal
	}
	return inv, nil
}

// powMod computes a^e mod q for a non-negative int64 exponent.
func powMod(a *big.Int, e int64, q *big.Int) *big.Int {
	return new(big.Int).Exp(a, big.NewInt(e), q)
}

// innerProduct computes sum(a[i]*b[i]) mod q.
func innerProduct(a, b []*big.Int, q *big.Int) (*big.Int, error) {
	if len(a) != len(b) {
		return nil, ErrInvalidInput
	}
	sum := big.NewInt(0)
	for i := range a {
		sum = addMod(sum, mulMod(a[i], b[i], q), q)
	}
	return sum, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func log2(n int) int {
	l := 0
	for t := n; t > 1; t >>= 1 {
		l++
	}
	return l
}

func leftHalfScalars(v []*big.Int) []*big.Int  { return v[:len(v)/2] }
func rightHalfScalars(v []*big.Int) []*big.Int { return v[len(v)/2:] }
