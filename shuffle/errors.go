// Package shuffle implements a non-interactive zero-knowledge shuffle
// argument in the style of Bayer-Groth: a prover demonstrates that two
// output vectors of group elements are a randomized permutation of two
// input vectors, without revealing the permutation or the randomizing
// scalar. The argument is built from four subarguments - inner-product,
// grand-product, multi-exponentiation, and same-exponent - composed over a
// shared Fiat-Shamir transcript.
package shuffle

import "errors"

// Error kinds, matching the taxonomy every prove/verify call reports
// against: a failed verification equation is distinct from a structurally
// malformed input, which is distinct from an internal fault in a group or
// field operation.
var (
	// ErrInvalidProof indicates a verification equation failed, or a
	// proof's point-vector lengths do not match the expected log2(n)
	// recursion depth.
	ErrInvalidProof = errors.New("shuffle: invalid proof")

	// ErrInvalidInput indicates a vector length mismatch, a non-power-of-two
	// vector size, a CRS sized inconsistently with its inputs, or a
	// permutation that is not a bijection. Always checked before any group
	// operation runs.
	ErrInvalidInput = errors.New("shuffle: invalid input")

	// ErrInternal indicates a point without affine coordinates was passed
	// to the transcript, or a modular inverse was requested for zero.
	// The witness is assumed well-formed, so provers treat this as fatal.
	ErrInternal = errors.New("shuffle: internal error")
)
