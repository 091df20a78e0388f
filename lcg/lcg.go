// Package lcg implements linear congruential generators over arbitrary
// precision integers: exact forward and backward stepping, and recovery of
// unknown parameters from a run of observed outputs.
package lcg

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/fysac/lcgcrack/arith"
)

var (
	// ErrTooFewValues is returned by Crack when fewer than three observed
	// values are supplied.
	ErrTooFewValues = errors.New("need at least three values")

	// ErrNotInvertible is returned by Prev and Crack when a required modular
	// inverse does not exist.
	ErrNotInvertible = errors.New("modular inverse does not exist")
)

// LCG is a linear congruential generator. Next advances State to
// (A*State + C) mod M; Prev undoes one step. New reduces the seed into
// [0, M), and stepping keeps it there. Not safe for concurrent use.
type LCG struct {
	State *big.Int
	A     *big.Int
	C     *big.Int
	M     *big.Int
}

// New returns a generator seeded with state. The modulus must be positive;
// the seed may be any integer and is reduced modulo m. All arguments are
// copied.
func New(state, a, c, m *big.Int) (*LCG, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("modulus must be positive, got %s", m)
	}
	g := &LCG{
		A: new(big.Int).Set(a),
		C: new(big.Int).Set(c),
		M: new(big.Int).Set(m),
	}
	g.State = arith.Mod(state, g.M)
	return g, nil
}

// Next advances the generator one step and returns the new state.
func (g *LCG) Next() *big.Int {
	s := new(big.Int).Mul(g.A, g.State)
	s.Add(s, g.C)
	g.State = s.Mod(s, g.M)
	return new(big.Int).Set(g.State)
}

// Prev steps the generator backward, undoing one Next, and returns the new
// state. It fails with ErrNotInvertible when A has no inverse modulo M, in
// which case the state is left unchanged.
func (g *LCG) Prev() (*big.Int, error) {
	inv, ok := arith.ModInverse(g.A, g.M)
	if !ok {
		return nil, ErrNotInvertible
	}
	s := new(big.Int).Sub(g.State, g.C)
	s.Mul(s, inv)
	g.State = s.Mod(s, g.M)
	return new(big.Int).Set(g.State), nil
}

// Equal reports whether both generators have the same parameters and state.
func (g *LCG) Equal(o *LCG) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.State.Cmp(o.State) == 0 &&
		g.A.Cmp(o.A) == 0 &&
		g.C.Cmp(o.C) == 0 &&
		g.M.Cmp(o.M) == 0
}

func (g *LCG) String() string {
	return fmt.Sprintf("LCG(state=%s, a=%s, c=%s, m=%s)", g.State, g.A, g.C, g.M)
}
