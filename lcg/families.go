package lcg

import "math/big"

// Family is a well-known set of LCG parameters.
type Family struct {
	Name string
	A    *big.Int
	C    *big.Int
	M    *big.Int
}

// The table models full-state recurrences. Generators that truncate or
// temper the state before emitting it (musl shifts out the low 33 bits,
// java.util.Random the low 16) only match when raw states are observed.
var families = []Family{
	{"musl rand", big.NewInt(6364136223846793005), big.NewInt(1), pow2(64)},
	{"Knuth MMIX", big.NewInt(6364136223846793005), big.NewInt(1442695040888963407), pow2(64)},
	{"java.util.Random", big.NewInt(25214903917), big.NewInt(11), pow2(48)},
	{"Numerical Recipes", big.NewInt(1664525), big.NewInt(1013904223), pow2(32)},
	{"Borland C++ rand", big.NewInt(22695477), big.NewInt(1), pow2(32)},
	{"glibc rand TYPE_0", big.NewInt(1103515245), big.NewInt(12345), pow2(31)},
	{"RANDU", big.NewInt(65539), big.NewInt(0), pow2(31)},
	{"MINSTD", big.NewInt(16807), big.NewInt(0), big.NewInt(2147483647)},
	{"ZX81", big.NewInt(75), big.NewInt(74), big.NewInt(65537)},
}

func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

// Families returns the built-in parameter sets. The parameter integers are
// shared and must not be modified.
func Families() []Family {
	return append([]Family(nil), families...)
}

// New returns a generator running this family's recurrence from seed.
func (f Family) New(seed *big.Int) *LCG {
	g := &LCG{
		A: new(big.Int).Set(f.A),
		C: new(big.Int).Set(f.C),
		M: new(big.Int).Set(f.M),
	}
	g.State = new(big.Int).Mod(seed, g.M)
	return g
}

// Identify reports the known family matching g's multiplier, increment and
// modulus, if any.
func (g *LCG) Identify() (Family, bool) {
	for _, f := range families {
		if g.A.Cmp(f.A) == 0 && g.C.Cmp(f.C) == 0 && g.M.Cmp(f.M) == 0 {
			return f, true
		}
	}
	return Family{}, false
}
