package shuffle

import "math/big"

// Permutation is a bijection on {0, ..., len-1}: perm[i] names the input
// position that sources output position i.
type Permutation []int

// Validate reports ErrInvalidInput if perm is not a bijection on
// {0, ..., len(perm)-1}. An adversarial prover input cannot be assumed to
// satisfy this by construction, so it is validated explicitly.
func (perm Permutation) Validate() error {
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return ErrInvalidInput
		}
		seen[p] = true
	}
	return nil
}

// Apply returns [a[perm[i]] for i in range(len(perm))].
func Apply[T any](a []T, perm Permutation) ([]T, error) {
	if len(a) != len(perm) {
		return nil, ErrInvalidInput
	}
	out := make([]T, len(a))
	for i, p := range perm {
		out[i] = a[p]
	}
	return out, nil
}

func permToScalars(perm Permutation) []*big.Int {
	out := make([]*big.Int, len(perm))
	for i, p := range perm {
		out[i] = big.NewInt(int64(p))
	}
	return out
}
