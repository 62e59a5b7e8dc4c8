package fibonacci

import (
	"context"
	"math/big"
	"testing"
)

func TestMulMat2_KnownProduct(t *testing.T) {
	t.Parallel()

	// [[1,2],[3,4]] * [[5,6],[7,8]] = [[19,22],[43,50]], then mod 10.
	r := uint64Ring{m: 10}
	x := mat2[uint64]{a00: 1, a01: 2, a10: 3, a11: 4}
	y := mat2[uint64]{a00: 5, a01: 6, a10: 7, a11: 8}

	got := mulMat2[uint64](r, x, y)
	want := mat2[uint64]{a00: 9, a01: 2, a10: 3, a11: 0}
	if got != want {
		t.Errorf("mulMat2 = %+v, want %+v", got, want)
	}
}

func TestFibMatrix_EntriesReduced(t *testing.T) {
	t.Parallel()

	// Mod 1 the transformation matrix collapses to all zeros.
	m := fibMatrix[uint64](uint64Ring{m: 1})
	if m.a00 != 0 || m.a01 != 0 || m.a10 != 0 || m.a11 != 0 {
		t.Errorf("fibMatrix mod 1 = %+v, want all zeros", m)
	}
}

func TestPowMat2_FibonacciTriples(t *testing.T) {
	t.Parallel()

	// T^k = [[F(k-1), F(k)], [F(k), F(k+1)]].
	fib := []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
	const mod = 1000
	r := uint64Ring{m: mod}
	ctx := context.Background()

	for k := 1; k <= 11; k++ {
		p, err := powMat2[uint64](ctx, r, fibMatrix[uint64](r), uint64Exp(k))
		if err != nil {
			t.Fatalf("powMat2(T, %d) error: %v", k, err)
		}
		want := mat2[uint64]{
			a00: fib[k-1] % mod, a01: fib[k] % mod,
			a10: fib[k] % mod, a11: fib[k+1] % mod,
		}
		if p != want {
			t.Errorf("T^%d = %+v, want %+v", k, p, want)
		}
	}
}

func TestPowMat2_BigMatchesUint64(t *testing.T) {
	t.Parallel()

	const mod = 1_000_000_007
	ctx := context.Background()
	ru := uint64Ring{m: mod}
	rb := bigRing{m: big.NewInt(mod)}

	for _, n := range []uint64{2, 3, 10, 92, 93, 94, 1000, 123456} {
		pu, err := powMat2[uint64](ctx, ru, fibMatrix[uint64](ru), uint64Exp(n))
		if err != nil {
			t.Fatalf("uint64 powMat2(%d) error: %v", n, err)
		}
		pb, err := powMat2[*big.Int](ctx, rb, fibMatrix[*big.Int](rb), new(big.Int).SetUint64(n))
		if err != nil {
			t.Fatalf("big powMat2(%d) error: %v", n, err)
		}
		if pb.a00.Uint64() != pu.a00 || pb.a01.Uint64() != pu.a01 ||
			pb.a10.Uint64() != pu.a10 || pb.a11.Uint64() != pu.a11 {
			t.Errorf("pipelines disagree at n=%d: uint64=%+v big=[[%s,%s],[%s,%s]]",
				n, pu, pb.a00, pb.a01, pb.a10, pb.a11)
		}
	}
}

func TestPowMat2_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := uint64Ring{m: 1_000_000}
	_, err := powMat2[uint64](ctx, r, fibMatrix[uint64](r), uint64Exp(1_000_000_000))
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	if ctx.Err() == nil {
		t.Fatal("context should be canceled")
	}
}

func TestFibMod_ProjectsColumnOne(t *testing.T) {
	t.Parallel()

	// fibMod must return exactly the [0][1] entry of T^n, i.e. F(n) mod m.
	r := uint64Ring{m: 1_000_000}
	got, err := fibMod[uint64](context.Background(), r, uint64Exp(30))
	if err != nil {
		t.Fatalf("fibMod error: %v", err)
	}
	if want := uint64(832040); got != want { // F(30)
		t.Errorf("fibMod(30) mod 1e6 = %d, want %d", got, want)
	}
}
