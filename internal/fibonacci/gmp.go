//go:build gmp

// This file provides a GMP-backed arbitrary-precision backend, conditionally
// compiled with the "gmp" build tag. The build tag architecture ensures that:
//   - Projects can build without GMP (the default, using math/big)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//   - Windows: requires MinGW or WSL with libgmp

package fibonacci

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	_ = RegisterCalculator("gmp", func() coreCalculator { return &GMPMatrixExponentiation{} })
}

// gmpRing implements the modular ring over gmp.Int. Same reduction
// discipline as bigRing; the arithmetic runs in libgmp's optimized routines.
type gmpRing struct {
	m *gmp.Int
}

func (r gmpRing) Zero() *gmp.Int { return new(gmp.Int) }

func (r gmpRing) One() *gmp.Int {
	return new(gmp.Int).Mod(gmp.NewInt(1), r.m)
}

func (r gmpRing) Add(x, y *gmp.Int) *gmp.Int {
	z := new(gmp.Int).Add(x, y)
	return z.Mod(z, r.m)
}

func (r gmpRing) Mul(x, y *gmp.Int) *gmp.Int {
	z := new(gmp.Int).Mul(x, y)
	return z.Mod(z, r.m)
}

// GMPMatrixExponentiation runs the matrix pipeline on GMP integers. It pays
// a CGO crossing per arithmetic operation, which is only worth it for very
// large moduli where libgmp's multiplication outruns math/big.
type GMPMatrixExponentiation struct{}

// Name returns the descriptive name of the backend.
func (c *GMPMatrixExponentiation) Name() string {
	return "Matrix Exponentiation (GMP)"
}

// CalculateCore computes F(n) mod modulo for n >= 2 and modulo >= 1.
// Operands cross the math/big <-> GMP boundary once per call, via the
// big-endian bytes representation both libraries share.
func (c *GMPMatrixExponentiation) CalculateCore(ctx context.Context, n, modulo *big.Int) (*big.Int, error) {
	r := gmpRing{m: new(gmp.Int).SetBytes(modulo.Bytes())}
	res, err := fibMod[*gmp.Int](ctx, r, n)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(res.Bytes()), nil
}
