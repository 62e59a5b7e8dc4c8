//go:build gmp

package fibonacci

import (
	"context"
	"math/big"
	"testing"
)

func TestGMPBackend_Registered(t *testing.T) {
	t.Parallel()

	if !GlobalFactory().Has("gmp") {
		t.Fatal("gmp backend not registered under the gmp build tag")
	}
}

func TestGMPBackend_MatchesMathBig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gmpCalc := GlobalFactory().MustGet("gmp")
	bigCalc := NewCalculator(&MatrixExponentiation{})

	cases := []struct {
		n, mod *big.Int
	}{
		{big.NewInt(100), big.NewInt(1_000_000_000)},
		{big.NewInt(1_000_000), big.NewInt(1_000_000_007)},
		{
			new(big.Int).Lsh(big.NewInt(1), 80),
			new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 89), big.NewInt(1)),
		},
	}

	for _, tc := range cases {
		want, err := bigCalc.FibWithModBig(ctx, tc.n, tc.mod)
		if err != nil {
			t.Fatalf("math/big backend error: %v", err)
		}
		got, err := gmpCalc.FibWithModBig(ctx, tc.n, tc.mod)
		if err != nil {
			t.Fatalf("gmp backend error: %v", err)
		}
		if got.Cmp(want) != 0 {
			t.Errorf("backends disagree for n=%s mod %s: gmp=%s big=%s", tc.n, tc.mod, got, want)
		}
	}
}
