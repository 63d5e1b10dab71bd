package shuffle

import (
	"crypto/rand"
	"io"
	"math/big"
)

// RandomScalar draws a scalar uniformly from [0, q) using rng. Provers MUST
// pass a cryptographically secure source in production; a deterministic
// io.Reader may be substituted in tests to reproduce fixed test vectors.
func RandomScalar(rng io.Reader, q *big.Int) (*big.Int, error) {
	if rng == nil {
		rng = rand.Reader
	}
	return rand.Int(rng, q)
}

func randomScalarVector(rng io.Reader, q *big.Int, n int) ([]*big.Int, error) {
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		s, err := RandomScalar(rng, q)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
