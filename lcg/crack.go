package lcg

import (
	"math/big"

	"github.com/fysac/lcgcrack/arith"
)

// Crack recovers the parameters of an unknown linear congruential generator
// from consecutive observed outputs, using the difference technique from
// https://tailcall.net/blog/cracking-randomness-lcgs/.
//
// At least three values are required, and the recovery is probabilistic:
// with few values the recovered modulus may be a proper multiple of the true
// one, so callers should hold back some outputs and verify against them. The
// returned generator is seeded with the last observed value, so its Next
// predicts the output following the input run.
//
// Degenerate runs (constant, arithmetic, or too short to pin down a modulus)
// fail with ErrNotInvertible.
func Crack(values []*big.Int) (*LCG, error) {
	if len(values) < 3 {
		return nil, ErrTooFewValues
	}

	diffs := make([]*big.Int, len(values)-1)
	for i := range diffs {
		diffs[i] = new(big.Int).Sub(values[i+1], values[i])
	}

	// d[i+2]*d[i] - d[i+1]^2 is a multiple of the true modulus for every i,
	// so folding them through gcd converges on it.
	modulus := new(big.Int)
	for i := 0; i+2 < len(diffs); i++ {
		z := new(big.Int).Mul(diffs[i+2], diffs[i])
		z.Sub(z, new(big.Int).Mul(diffs[i+1], diffs[i+1]))
		modulus = arith.GCD(modulus, z)
	}

	inv, ok := arith.ModInverse(diffs[0], modulus)
	if !ok {
		return nil, ErrNotInvertible
	}
	a := arith.Mod(new(big.Int).Mul(diffs[1], inv), modulus)
	c := new(big.Int).Mul(values[0], a)
	c.Sub(values[1], c)

	return &LCG{
		State: new(big.Int).Set(values[len(values)-1]),
		A:     a,
		C:     arith.Mod(c, modulus),
		M:     modulus,
	}, nil
}
