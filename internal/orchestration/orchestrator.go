// Package orchestration coordinates concurrent execution of the
// bounded-width and arbitrary-precision pipelines for the same inputs and
// aggregates their results for agreement analysis. Because the two
// pipelines share no code below the generic matrix algorithm, agreement is
// a strong cross-check of the widen-then-reduce arithmetic.
package orchestration

import (
	"context"
	"errors"
	"math/big"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/logging"
)

// PipelineResult encapsulates the outcome of one pipeline run. It is a
// standardized container so results from different numeric domains can be
// compared uniformly.
type PipelineResult struct {
	// Name identifies the pipeline ("uint64" or the backend name).
	Name string
	// Result is the computed residue. It is nil if an error occurred.
	Result *big.Int
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// boundedPipelineName labels the fixed-width pipeline in results.
const boundedPipelineName = "uint64"

// CrossCheck runs both pipelines concurrently for the same (n, modulo) pair
// and returns both outcomes. Inputs must fit in a uint64 so that both
// pipelines are applicable; wider inputs only have the arbitrary-precision
// pipeline and nothing to cross-check against.
//
// A failure in one pipeline does not cancel the other: both outcomes are
// always reported so the caller can tell a mismatch from a plain error.
func CrossCheck(ctx context.Context, calc fibonacci.Calculator, n, modulo uint64) []PipelineResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]PipelineResult, 2)

	g.Go(func() error {
		start := time.Now()
		res, err := calc.FibWithMod(ctx, n, modulo)
		pr := PipelineResult{Name: boundedPipelineName, Duration: time.Since(start), Err: err}
		if err == nil {
			pr.Result = new(big.Int).SetUint64(res)
		}
		results[0] = pr
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		res, err := calc.FibWithModBig(ctx, new(big.Int).SetUint64(n), new(big.Int).SetUint64(modulo))
		results[1] = PipelineResult{Name: calc.Name(), Result: res, Duration: time.Since(start), Err: err}
		return nil
	})

	_ = g.Wait()
	return results
}

// VerifyAgreement checks that all successful pipeline results carry the
// same residue. The first successful result is taken as the reference.
//
// Returns nil when every successful result agrees, a MismatchError when two
// successful results differ, and a wrapped error when no pipeline completed
// at all.
func VerifyAgreement(results []PipelineResult, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	var reference *PipelineResult
	var firstErr error
	for i := range results {
		if results[i].Err != nil {
			if firstErr == nil {
				firstErr = results[i].Err
			}
			continue
		}
		if reference == nil {
			reference = &results[i]
			continue
		}
		if results[i].Result.Cmp(reference.Result) != 0 {
			err := apperrors.MismatchError{Reference: reference.Name, Conflicting: results[i].Name}
			logger.Error("pipeline disagreement detected", err,
				logging.String("reference", reference.Name),
				logging.String("conflicting", results[i].Name))
			return err
		}
	}

	if reference == nil {
		if firstErr != nil {
			return apperrors.WrapError(firstErr, "no pipeline completed")
		}
		return errors.New("no pipeline results to verify")
	}

	logger.Debug("pipelines agree", logging.String("reference", reference.Name))
	return nil
}
