package fibonacci

// ring abstracts the modular arithmetic shared by the bounded-width and
// arbitrary-precision pipelines. Both pipelines run the exact same matrix
// algorithm; only the element type E and the reduction strategy differ.
//
// Every method returns a fully reduced residue in [0, m). Implementations
// own the widen-before-reduce guarantee: a product of two residues must be
// computed in a representation wide enough to hold it before reduction, so
// the matrix layer above never sees a silently truncated intermediate.
type ring[E any] interface {
	// Zero returns the additive identity of Z/mZ.
	Zero() E

	// One returns the multiplicative identity of Z/mZ. For m = 1 this is 0,
	// the only residue the ring has.
	One() E

	// Add returns (x + y) mod m.
	Add(x, y E) E

	// Mul returns (x * y) mod m without discarding high-order bits of the
	// intermediate product.
	Mul(x, y E) E
}

// exponent is the minimal bit-level view of a non-negative exponent needed
// by binary exponentiation: its bit length and individual bits, most
// significant first. *big.Int satisfies it directly; uint64 exponents are
// wrapped by uint64Exp.
type exponent interface {
	BitLen() int
	Bit(i int) uint
}
