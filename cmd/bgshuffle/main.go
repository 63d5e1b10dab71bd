// Command bgshuffle demonstrates an end-to-end Bayer-Groth shuffle: it
// builds a CRS, shuffles and re-randomizes a list of ElGamal-style pairs,
// proves the shuffle, and verifies the resulting proof.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/shuffleproof/bgshuffle/group"
	"github.com/shuffleproof/bgshuffle/shuffle"
)

const deckSize = 124

func randomPoints(gp group.Group, n int) ([]group.Element, error) {
	pts := make([]group.Element, n)
	for i := range pts {
		s, err := shuffle.RandomScalar(nil, gp.N())
		if err != nil {
			return nil, err
		}
		pts[i] = gp.Element().BaseScale(s)
	}
	return pts, nil
}

func randomPermutation(n int) shuffle.Permutation {
	perm := make(shuffle.Permutation, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j, err := shuffle.RandomScalar(nil, big.NewInt(int64(i+1)))
		if err != nil {
			continue
		}
		idx := int(j.Int64())
		perm[i], perm[idx] = perm[idx], perm[i]
	}
	return perm
}

func run() error {
	gp := group.BLS12381G1()
	q := gp.N()

	crs, err := shuffle.NewShuffleCRS(gp, deckSize)
	if err != nil {
		return fmt.Errorf("crs setup: %w", err)
	}

	Rvec, err := randomPoints(gp, deckSize)
	if err != nil {
		return fmt.Errorf("generate R: %w", err)
	}
	Svec, err := randomPoints(gp, deckSize)
	if err != nil {
		return fmt.Errorf("generate S: %w", err)
	}

	perm := randomPermutation(deckSize)
	if err := perm.Validate(); err != nil {
		return fmt.Errorf("permutation: %w", err)
	}
	r, err := shuffle.RandomScalar(nil, q)
	if err != nil {
		return fmt.Errorf("randomizer: %w", err)
	}

	permR, err := shuffle.Apply(Rvec, perm)
	if err != nil {
		return fmt.Errorf("permute R: %w", err)
	}
	permS, err := shuffle.Apply(Svec, perm)
	if err != nil {
		return fmt.Errorf("permute S: %w", err)
	}
	Tvec := make([]group.Element, deckSize)
	Uvec := make([]group.Element, deckSize)
	for i := range Tvec {
		Tvec[i] = gp.Element().Scale(permR[i], r)
		Uvec[i] = gp.Element().Scale(permS[i], r)
	}

	fmt.Println("Proving shuffle")
	proof, err := shuffle.ProveShuffle(gp, crs, Rvec, Svec, Tvec, Uvec, perm, r, nil)
	if err != nil {
		return fmt.Errorf("prove shuffle: %w", err)
	}

	fmt.Println("Verifying shuffle")
	if err := shuffle.VerifyShuffle(gp, crs, Rvec, Svec, Tvec, Uvec, proof); err != nil {
		return fmt.Errorf("verify shuffle: %w", err)
	}

	fmt.Println("Shuffle proof verified for", deckSize, "entries")
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
