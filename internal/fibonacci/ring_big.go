package fibonacci

import "math/big"

// bigRing implements modular arithmetic over Z/mZ for an arbitrary-precision
// modulus. Overflow is not a concern here; what matters is reducing every
// result modulo m before it is reused, so operand magnitude stays bounded by
// log2(m) bits and multiplication cost does not grow with the number of
// accumulated operations.
//
// The ring has value semantics: methods return fresh big.Ints and never
// mutate their operands, matching the copy-on-write contract of the matrix
// layer.
type bigRing struct {
	m *big.Int // m >= 1, enforced by the calculator layer
}

func (r bigRing) Zero() *big.Int { return new(big.Int) }

func (r bigRing) One() *big.Int {
	return new(big.Int).Mod(big.NewInt(1), r.m)
}

func (r bigRing) Add(x, y *big.Int) *big.Int {
	z := new(big.Int).Add(x, y)
	return z.Mod(z, r.m)
}

func (r bigRing) Mul(x, y *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Mod(z, r.m)
}
