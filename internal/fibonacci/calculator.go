// Package fibonacci computes Fibonacci numbers modulo an arbitrary modulus
// in O(log n) arithmetic operations. It exposes a `Calculator` interface
// covering two structurally identical pipelines: a bounded-width pipeline
// over uint64 with 128-bit widened intermediates, and an arbitrary-precision
// pipeline over math/big (or GMP, behind the "gmp" build tag). Both run the
// same generic matrix-exponentiation algorithm over a modular ring.
package fibonacci

//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

import (
	"context"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	apperrors "github.com/agbru/fibmod/internal/errors"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibmod_calculations_total",
			Help: "The total number of modular Fibonacci calculations processed",
		},
		[]string{"pipeline", "status"},
	)
	calculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fibmod_calculation_duration_seconds",
			Help: "The duration of modular Fibonacci calculations in seconds",
		},
		[]string{"pipeline"},
	)
)

// boundedPipeline is the metrics/log label of the fixed-width pipeline. The
// arbitrary-precision pipeline is labeled with its core's Name().
const boundedPipeline = "uint64"

// Calculator is the public contract of the package: F(n) mod m for the two
// numeric domains. Implementations are safe for concurrent use; every call
// works on freshly constructed local values and shares no state.
type Calculator interface {
	// FibWithMod returns F(n) mod modulo for 64-bit inputs. It fails with a
	// ValidationError when modulo is 0; any other well-formed input
	// succeeds deterministically.
	FibWithMod(ctx context.Context, n, modulo uint64) (uint64, error)

	// FibWithModBig returns F(n) mod modulo for arbitrary-precision inputs.
	// n must be non-negative and modulo positive; violations surface as
	// ValidationErrors. The result is a fresh big.Int in [0, modulo).
	FibWithModBig(ctx context.Context, n, modulo *big.Int) (*big.Int, error)

	// Name returns the display name of the arbitrary-precision backend.
	Name() string
}

// coreCalculator is the internal contract for an arbitrary-precision
// modular Fibonacci algorithm. The decorator guarantees n >= 2 and
// modulo >= 1 before delegating.
type coreCalculator interface {
	CalculateCore(ctx context.Context, n, modulo *big.Int) (*big.Int, error)
	Name() string
}

// ModCalculator implements Calculator by wrapping a coreCalculator with the
// cross-cutting concerns: input validation, base-case short-circuits,
// metrics, tracing and completion logging. The bounded-width pipeline is
// fixed (there is exactly one correct way to do 64-bit widen-then-reduce);
// the wrapped core only serves the arbitrary-precision pipeline.
type ModCalculator struct {
	core coreCalculator
}

// NewCalculator constructs a ModCalculator around the given core. It panics
// if the core is nil, ensuring system integrity.
func NewCalculator(core coreCalculator) Calculator {
	if core == nil {
		panic("fibonacci: the `coreCalculator` implementation cannot be nil")
	}
	return &ModCalculator{core: core}
}

// Name returns the name of the encapsulated coreCalculator.
func (c *ModCalculator) Name() string {
	return c.core.Name()
}

// FibWithMod computes F(n) mod modulo over the bounded-width pipeline.
//
// Base cases: F(0) = 0 and F(1) = 1, reduced mod modulo so that the result
// stays in [0, modulo) even for modulo = 1. For n >= 2 the answer is the
// [0][1] entry of the transformation matrix raised to the n-th power.
func (c *ModCalculator) FibWithMod(ctx context.Context, n, modulo uint64) (result uint64, err error) {
	tracer := otel.Tracer("fibmod")
	ctx, span := tracer.Start(ctx, "FibWithMod")
	defer span.End()

	defer observeCalculation(boundedPipeline, time.Now(), &err)
	defer func() {
		log.Debug().
			Str("pipeline", boundedPipeline).
			Uint64("n", n).
			Uint64("modulo", modulo).
			Err(err).
			Msg("calculation completed")
	}()

	if modulo == 0 {
		return 0, apperrors.ErrInvalidModulus()
	}
	switch n {
	case 0:
		return 0, nil
	case 1:
		return 1 % modulo, nil
	}

	result, err = fibMod[uint64](ctx, uint64Ring{m: modulo}, uint64Exp(n))
	if err != nil {
		return 0, apperrors.CalculationError{Cause: err}
	}
	return result, nil
}

// FibWithModBig computes F(n) mod modulo over the arbitrary-precision
// pipeline, delegating the general case to the configured core.
func (c *ModCalculator) FibWithModBig(ctx context.Context, n, modulo *big.Int) (result *big.Int, err error) {
	tracer := otel.Tracer("fibmod")
	ctx, span := tracer.Start(ctx, "FibWithModBig")
	defer span.End()

	pipeline := c.core.Name()
	defer observeCalculation(pipeline, time.Now(), &err)
	defer func() {
		log.Debug().
			Str("pipeline", pipeline).
			Err(err).
			Msg("calculation completed")
	}()

	if modulo == nil || modulo.Sign() <= 0 {
		return nil, apperrors.ErrInvalidModulus()
	}
	if n == nil || n.Sign() < 0 {
		return nil, apperrors.ValidationError{Field: "n", Message: "index must be a non-negative integer"}
	}
	if n.Cmp(bigTwo) < 0 {
		// F(0) = 0, F(1) = 1; reduce so modulo = 1 still yields a residue in [0, 1).
		return new(big.Int).Mod(n, modulo), nil
	}

	result, err = c.core.CalculateCore(ctx, n, modulo)
	if err != nil {
		return nil, apperrors.CalculationError{Cause: err}
	}
	return result, nil
}

var bigTwo = big.NewInt(2)

// observeCalculation records the outcome counters and duration histogram
// for one calculation. Designed to run in a defer, after err is final.
func observeCalculation(pipeline string, start time.Time, err *error) {
	status := "success"
	if *err != nil {
		status = "error"
	}
	calculationsTotal.WithLabelValues(pipeline, status).Inc()
	calculationDuration.WithLabelValues(pipeline).Observe(time.Since(start).Seconds())
}
