package fibonacci

import (
	"math"
	"math/big"
	"testing"
)

func TestUint64Ring_MulNearOverflow(t *testing.T) {
	t.Parallel()

	// Products of residues near m-1 with m near 2^64-1 need the full
	// 128-bit intermediate; a truncating multiply gets these wrong.
	const m = math.MaxUint64
	r := uint64Ring{m: m}

	cases := []struct {
		name string
		x, y uint64
		want uint64
	}{
		// (m-1)^2 = (-1)^2 = 1 (mod m)
		{"squared_minus_one", m - 1, m - 1, 1},
		// (m-1)(m-2) = (-1)(-2) = 2 (mod m)
		{"minus_one_times_minus_two", m - 1, m - 2, 2},
		{"zero_absorbs", m - 1, 0, 0},
		{"one_neutral", m - 1, 1, m - 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := r.Mul(tc.x, tc.y); got != tc.want {
				t.Errorf("Mul(%d, %d) mod %d = %d, want %d", tc.x, tc.y, uint64(m), got, tc.want)
			}
		})
	}
}

func TestUint64Ring_MulMatchesBig(t *testing.T) {
	t.Parallel()

	// Spot-check the widened multiply against big.Int over awkward moduli.
	moduli := []uint64{1, 2, 3, 10, 1_000_000_007, 1 << 63, math.MaxUint64 - 1, math.MaxUint64}
	operands := []uint64{0, 1, 2, 12345, 1 << 32, math.MaxUint64 - 2, math.MaxUint64 - 1}

	for _, m := range moduli {
		r := uint64Ring{m: m}
		bm := new(big.Int).SetUint64(m)
		for _, x := range operands {
			for _, y := range operands {
				xr, yr := x%m, y%m
				want := new(big.Int).Mul(new(big.Int).SetUint64(xr), new(big.Int).SetUint64(yr))
				want.Mod(want, bm)
				if got := r.Mul(xr, yr); got != want.Uint64() {
					t.Fatalf("Mul(%d, %d) mod %d = %d, want %s", xr, yr, m, got, want)
				}
			}
		}
	}
}

func TestUint64Ring_AddWithCarry(t *testing.T) {
	t.Parallel()

	// x + y exceeds 64 bits when m > 2^63; the carry must take part in the
	// reduction.
	const m = math.MaxUint64
	r := uint64Ring{m: m}

	if got, want := r.Add(m-1, m-1), uint64(m-2); got != want {
		t.Errorf("Add(m-1, m-1) = %d, want %d", got, want)
	}
	if got, want := r.Add(m-1, 1), uint64(0); got != want {
		t.Errorf("Add(m-1, 1) = %d, want %d", got, want)
	}
	if got, want := r.Add(0, 0), uint64(0); got != want {
		t.Errorf("Add(0, 0) = %d, want %d", got, want)
	}
}

func TestUint64Ring_IdentitiesReduced(t *testing.T) {
	t.Parallel()

	// In the one-element ring Z/1Z the multiplicative identity is 0.
	one := uint64Ring{m: 1}
	if got := one.One(); got != 0 {
		t.Errorf("One() mod 1 = %d, want 0", got)
	}
	if got := one.Zero(); got != 0 {
		t.Errorf("Zero() mod 1 = %d, want 0", got)
	}

	ten := uint64Ring{m: 10}
	if got := ten.One(); got != 1 {
		t.Errorf("One() mod 10 = %d, want 1", got)
	}
}

func TestBigRing_ValueSemantics(t *testing.T) {
	t.Parallel()

	r := bigRing{m: big.NewInt(97)}
	x := big.NewInt(60)
	y := big.NewInt(50)

	got := r.Mul(x, y)
	if want := big.NewInt(60 * 50 % 97); got.Cmp(want) != 0 {
		t.Errorf("Mul(60, 50) mod 97 = %s, want %s", got, want)
	}
	if x.Int64() != 60 || y.Int64() != 50 {
		t.Errorf("operands mutated: x=%s y=%s", x, y)
	}

	sum := r.Add(x, y)
	if want := big.NewInt((60 + 50) % 97); sum.Cmp(want) != 0 {
		t.Errorf("Add(60, 50) mod 97 = %s, want %s", sum, want)
	}
	if x.Int64() != 60 || y.Int64() != 50 {
		t.Errorf("operands mutated by Add: x=%s y=%s", x, y)
	}
}

func TestBigRing_IdentitiesReduced(t *testing.T) {
	t.Parallel()

	one := bigRing{m: big.NewInt(1)}
	if got := one.One(); got.Sign() != 0 {
		t.Errorf("One() mod 1 = %s, want 0", got)
	}
}

func TestUint64Exp_Bits(t *testing.T) {
	t.Parallel()

	// uint64Exp must agree with big.Int's bit accessors.
	for _, n := range []uint64{0, 1, 2, 3, 93, 1 << 40, math.MaxUint64} {
		e := uint64Exp(n)
		b := new(big.Int).SetUint64(n)
		if e.BitLen() != b.BitLen() {
			t.Errorf("BitLen(%d) = %d, want %d", n, e.BitLen(), b.BitLen())
		}
		for i := 0; i < 64; i++ {
			if e.Bit(i) != b.Bit(i) {
				t.Errorf("Bit(%d) of %d = %d, want %d", i, n, e.Bit(i), b.Bit(i))
			}
		}
	}
}
