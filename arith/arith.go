// Package arith provides the exact modular arithmetic primitives used by the
// LCG engine and the parameter recovery routine.
package arith

import "math/big"

var one = big.NewInt(1)

// Mod returns a mod m normalized into [0, m), for any a and any m > 0.
// big.Int's native Rem can go negative for negative dividends; this always
// returns the non-negative representative.
func Mod(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

// ExtGCD returns g, x, y such that a*x + b*y = g = gcd(a, b), with g >= 0.
// Works for arguments of any sign and in any order.
func ExtGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Div(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	// Euclidean division keeps remainders non-negative after the first step;
	// only the degenerate b == 0, a < 0 case can leave a negative gcd behind.
	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// ModInverse returns the multiplicative inverse of a modulo m, normalized
// into [0, m). The inverse exists iff m > 0 and gcd(a, m) == 1; ok is false
// otherwise. When present, (a * inv) mod m == 1.
func ModInverse(a, m *big.Int) (inv *big.Int, ok bool) {
	if m.Sign() <= 0 {
		return nil, false
	}
	g, x, _ := ExtGCD(Mod(a, m), m)
	if g.Cmp(one) != 0 {
		return nil, false
	}
	return Mod(x, m), true
}

// GCD returns the non-negative greatest common divisor of a and b, accepting
// zero and negative arguments: GCD(0, x) == |x| and GCD(0, 0) == 0. stdlib
// big.Int.GCD zeroes its result for non-positive inputs, so it cannot be used
// to fold a gcd over signed values starting from the identity 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, new(big.Int).Mod(x, y)
	}
	return x
}
