// Package fibmod computes the n-th Fibonacci number modulo an arbitrary
// modulus in O(log n) arithmetic operations, using exponentiation by
// squaring of the 2x2 transformation matrix [[0,1],[1,1]] under modular
// arithmetic.
//
// Two entry points cover two numeric domains:
//
//	FibWithMod(n, modulo uint64)          // bounded-width inputs
//	FibWithModBig(n, modulo *big.Int)     // arbitrary-precision inputs
//
// Both are pure and deterministic, share no state across calls, and are
// safe for concurrent use. The bounded-width pipeline widens every
// intermediate product to 128 bits before reducing, so it stays correct
// even for moduli adjacent to 2^64.
//
// The arbitrary-precision backend defaults to math/big and can be switched
// to GMP (build tag "gmp") through the FIBMOD_BACKEND environment variable.
package fibmod

import (
	"context"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/agbru/fibmod/internal/config"
	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
)

// ValidationError reports an input outside the documented domain, such as a
// zero modulus or a negative index. Match it with errors.As.
type ValidationError = apperrors.ValidationError

// defaultCalculator serves the package-level entry points. It is built once
// from the environment; explicit backend selection goes through the
// internal factory.
var defaultCalculator = newDefaultCalculator()

func newDefaultCalculator() fibonacci.Calculator {
	settings := config.FromEnv()

	if settings.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else if settings.LogLevel != "" {
		if level, err := zerolog.ParseLevel(settings.LogLevel); err == nil {
			zerolog.SetGlobalLevel(level)
		}
	}

	calc, err := fibonacci.GlobalFactory().Get(settings.Backend)
	if err != nil {
		// Unknown backend names fall back to the always-registered default.
		calc = fibonacci.GlobalFactory().MustGet(config.DefaultBackend)
	}
	return calc
}

// FibWithMod returns F(n) mod modulo for 0-indexed Fibonacci numbers
// (F(0)=0, F(1)=1), in O(log n) time.
//
// The result is always in [0, modulo). A modulo of 0 yields a
// ValidationError; every other input succeeds.
func FibWithMod(n, modulo uint64) (uint64, error) {
	return defaultCalculator.FibWithMod(context.Background(), n, modulo)
}

// FibWithModBig returns F(n) mod modulo for arbitrary-precision inputs with
// the same semantics as FibWithMod. n must be non-negative and modulo
// positive; violations yield a ValidationError.
//
// Runtime is O(bitlen(n)) multiplications of log2(modulo)-bit integers, so
// indices far beyond 2^64 remain tractable as long as the modulus is
// moderate.
func FibWithModBig(n, modulo *big.Int) (*big.Int, error) {
	return defaultCalculator.FibWithModBig(context.Background(), n, modulo)
}
