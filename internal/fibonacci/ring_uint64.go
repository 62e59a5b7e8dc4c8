package fibonacci

import "math/bits"

// uint64Ring implements modular arithmetic over Z/mZ for a uint64 modulus.
//
// The pitfall this type exists to avoid: for residues near m-1 with m close
// to 2^64-1, the product x*y needs up to 128 bits. A plain x*y would wrap
// around and yield a wrong residue. Mul therefore widens to a 128-bit
// (hi, lo) pair via bits.Mul64 and reduces with the 128-by-64 division
// bits.Div64 before narrowing back to uint64.
type uint64Ring struct {
	m uint64 // m >= 1, enforced by the calculator layer
}

func (r uint64Ring) Zero() uint64 { return 0 }

func (r uint64Ring) One() uint64 { return 1 % r.m }

// Add returns (x + y) mod m. The sum of two residues can exceed 64 bits
// when m > 2^63, so the carry from bits.Add64 participates in the
// reduction. Since x, y < m, a single subtraction of m suffices.
func (r uint64Ring) Add(x, y uint64) uint64 {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 || sum >= r.m {
		sum -= r.m
	}
	return sum
}

// Mul returns (x * y) mod m with a 128-bit intermediate. bits.Div64 panics
// if the quotient overflows, which cannot happen here: x, y < m implies
// hi = floor(x*y / 2^64) < m.
func (r uint64Ring) Mul(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	_, rem := bits.Div64(hi, lo, r.m)
	return rem
}

// uint64Exp adapts a uint64 to the exponent interface, mirroring the
// big.Int bit accessors.
type uint64Exp uint64

func (e uint64Exp) BitLen() int { return bits.Len64(uint64(e)) }

func (e uint64Exp) Bit(i int) uint { return uint(uint64(e)>>uint(i)) & 1 }
