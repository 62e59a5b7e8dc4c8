package fibonacci

import (
	"context"
	"fmt"
)

// mat2 is a 2x2 matrix over Z/mZ in row-major order. Matrices are values:
// every operation returns a fresh matrix and never mutates its operands.
type mat2[E any] struct {
	a00, a01 E
	a10, a11 E
}

// fibMatrix returns the Fibonacci transformation matrix [[0,1],[1,1]] with
// entries reduced mod m. Its n-th power is [[F(n-1),F(n)],[F(n),F(n+1)]].
func fibMatrix[E any](r ring[E]) mat2[E] {
	return mat2[E]{
		a00: r.Zero(), a01: r.One(),
		a10: r.One(), a11: r.One(),
	}
}

// mulMat2 returns x*y reduced mod m, entrywise. The ring performs each
// multiply-accumulate on reduced residues, so no intermediate escapes [0, m).
func mulMat2[E any](r ring[E], x, y mat2[E]) mat2[E] {
	return mat2[E]{
		a00: r.Add(r.Mul(x.a00, y.a00), r.Mul(x.a01, y.a10)),
		a01: r.Add(r.Mul(x.a00, y.a01), r.Mul(x.a01, y.a11)),
		a10: r.Add(r.Mul(x.a10, y.a00), r.Mul(x.a11, y.a10)),
		a11: r.Add(r.Mul(x.a10, y.a01), r.Mul(x.a11, y.a11)),
	}
}

// powMat2 computes t^p mod m for p >= 1 by binary exponentiation, scanning
// the exponent bits from the most significant down. Starting from t itself
// (rather than the identity) keeps the loop branch-free apart from the
// parity test and costs O(log2 p) matrix multiplications.
//
// The context is checked once per exponent bit: an arbitrary-precision
// exponent can carry millions of bits, and each squaring at a large modulus
// is real work.
func powMat2[E any](ctx context.Context, r ring[E], t mat2[E], p exponent) (mat2[E], error) {
	res := t
	for i := p.BitLen() - 2; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return mat2[E]{}, fmt.Errorf("matrix exponentiation canceled at bit %d: %w", i, err)
		}
		res = mulMat2(r, res, res)
		if p.Bit(i) == 1 {
			res = mulMat2(r, res, t)
		}
	}
	return res, nil
}

// fibMod computes F(n) mod m over the given ring for n >= 2. The answer is
// the projection of T^n onto the initial state vector [F(0), F(1)] = [0, 1],
// which collapses to the row-0/column-1 entry of the matrix power.
func fibMod[E any](ctx context.Context, r ring[E], n exponent) (E, error) {
	p, err := powMat2(ctx, r, fibMatrix(r), n)
	if err != nil {
		var zero E
		return zero, err
	}
	return p.a01, nil
}
