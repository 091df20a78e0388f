package arith

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMod(t *testing.T) {
	tests := []struct {
		a, m string
		want string
	}{
		{"7", "3", "1"},
		{"-7", "3", "2"},
		{"-9", "3", "0"},
		{"10", "10", "0"},
		{"0", "5", "0"},
		{"-1", "18446744073709551616", "18446744073709551615"},
	}
	for _, tt := range tests {
		a, m := mustBig(t, tt.a), mustBig(t, tt.m)
		assert.Equal(t, tt.want, Mod(a, m).String(), "Mod(%s, %s)", tt.a, tt.m)
	}
}

func TestExtGCD(t *testing.T) {
	tests := []struct {
		a, b    string
		g, x, y string
	}{
		{"240", "46", "2", "-9", "47"},
		{"17", "5", "1", "-2", "7"},
		{"0", "7", "7", "0", "1"},
		{"7", "0", "7", "1", "0"},
		{"-7", "0", "7", "-1", "0"},
		{"0", "0", "0", "1", "0"},
	}
	for _, tt := range tests {
		a, b := mustBig(t, tt.a), mustBig(t, tt.b)
		g, x, y := ExtGCD(a, b)
		assert.Equal(t, tt.g, g.String(), "ExtGCD(%s, %s) gcd", tt.a, tt.b)
		assert.Equal(t, tt.x, x.String(), "ExtGCD(%s, %s) x", tt.a, tt.b)
		assert.Equal(t, tt.y, y.String(), "ExtGCD(%s, %s) y", tt.a, tt.b)
	}
}

func TestExtGCDRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a := randomSigned(r)
		b := randomSigned(r)

		g, x, y := ExtGCD(a, b)

		if g.Sign() < 0 {
			t.Fatalf("ExtGCD(%s, %s): negative gcd %s", a, b, g)
		}

		// a*x + b*y == g
		id := new(big.Int).Mul(a, x)
		id.Add(id, new(big.Int).Mul(b, y))
		if id.Cmp(g) != 0 {
			t.Fatalf("ExtGCD(%s, %s): %s*%s + %s*%s = %s, want %s", a, b, a, x, b, y, id, g)
		}

		if g.Sign() == 0 {
			assert.Zero(t, a.Sign(), "gcd 0 with a = %s", a)
			assert.Zero(t, b.Sign(), "gcd 0 with b = %s", b)
			continue
		}
		assert.Zero(t, Mod(a, g).Sign(), "gcd %s does not divide %s", g, a)
		assert.Zero(t, Mod(b, g).Sign(), "gcd %s does not divide %s", g, b)
	}
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		a, m string
		want string
	}{
		{"3", "7", "5"},
		{"7", "3", "1"},
		{"-3", "7", "2"},
		{"5039", "479001599", "49810843"},
	}
	for _, tt := range tests {
		a, m := mustBig(t, tt.a), mustBig(t, tt.m)
		inv, ok := ModInverse(a, m)
		if !ok {
			t.Fatalf("ModInverse(%s, %s): no inverse", tt.a, tt.m)
		}
		assert.Equal(t, tt.want, inv.String(), "ModInverse(%s, %s)", tt.a, tt.m)

		prod := Mod(new(big.Int).Mul(a, inv), m)
		assert.Equal(t, "1", prod.String(), "a * inv mod m for a = %s, m = %s", tt.a, tt.m)
	}
}

func TestModInverseAbsent(t *testing.T) {
	tests := []struct{ a, m string }{
		{"2", "4"},
		{"4", "8"},
		{"0", "5"},
		{"3", "0"},
		{"3", "-7"},
	}
	for _, tt := range tests {
		inv, ok := ModInverse(mustBig(t, tt.a), mustBig(t, tt.m))
		assert.False(t, ok, "ModInverse(%s, %s)", tt.a, tt.m)
		assert.Nil(t, inv, "ModInverse(%s, %s)", tt.a, tt.m)
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"12", "18", "6"},
		{"-12", "18", "6"},
		{"270", "192", "6"},
		{"0", "-7", "7"},
		{"-7", "0", "7"},
		{"0", "0", "0"},
	}
	for _, tt := range tests {
		got := GCD(mustBig(t, tt.a), mustBig(t, tt.b))
		assert.Equal(t, tt.want, got.String(), "GCD(%s, %s)", tt.a, tt.b)
	}
}

// GCD folded from the zero identity over signed values, the way the modulus
// recovery uses it.
func TestGCDFold(t *testing.T) {
	vals := []string{"-36", "90", "12"}
	acc := new(big.Int)
	for _, v := range vals {
		acc = GCD(acc, mustBig(t, v))
	}
	assert.Equal(t, "6", acc.String())
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad integer literal %q", s)
	}
	return n
}

func randomSigned(r *rand.Rand) *big.Int {
	if r.Intn(20) == 0 {
		return new(big.Int)
	}
	n := big.NewInt(r.Int63())
	if r.Intn(2) == 0 {
		n.Neg(n)
	}
	return n
}
