package fibonacci

import (
	"context"
	"math/big"
)

// MatrixExponentiation is the default arbitrary-precision backend, built on
// math/big.
//
// Mathematical basis: with T = [[0,1],[1,1]],
//
//	T^n = [ F(n-1) F(n)   ]
//	      [ F(n)   F(n+1) ]
//
// so F(n) mod m is the [0][1] entry of T^n with every multiply-accumulate
// reduced mod m. Binary exponentiation brings the matrix multiplication
// count down from O(n) to O(log n), and the reduction discipline of bigRing
// keeps every operand below log2(m) bits, so each of those multiplications
// costs M(log m) regardless of how astronomically large n is.
type MatrixExponentiation struct{}

// Name returns the descriptive name of the backend.
func (c *MatrixExponentiation) Name() string {
	return "Matrix Exponentiation (math/big)"
}

// CalculateCore computes F(n) mod modulo for n >= 2 and modulo >= 1. The
// caller (the ModCalculator decorator) owns validation and base cases.
func (c *MatrixExponentiation) CalculateCore(ctx context.Context, n, modulo *big.Int) (*big.Int, error) {
	return fibMod[*big.Int](ctx, bigRing{m: modulo}, n)
}
