package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// ValidationError represents an input validation failure: an argument
// outside the documented domain of the calculation, such as a zero modulus
// or a negative index. It identifies which field failed validation and
// provides a human-readable explanation.
//
// Validation failures are deterministic: the same inputs will always fail
// identically, so there is no retry or recovery path.
type ValidationError struct {
	// Field is the name of the argument that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// ErrInvalidModulus returns the ValidationError for a non-positive modulus.
// A modulus of zero would make the modular ring ill-defined (a
// division-by-zero class fault), so it is rejected before any arithmetic.
func ErrInvalidModulus() error {
	return ValidationError{Field: "modulo", Message: "modulus must be positive"}
}

// CalculationError encapsulates a calculation failure while preserving the
// original cause, allowing structured inspection of what went wrong.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// MismatchError reports a disagreement between two pipelines that computed
// the same (n, modulo) pair. A mismatch means one of the pipelines is
// wrong; it is never an acceptable outcome.
type MismatchError struct {
	// Reference is the name of the pipeline taken as the reference result.
	Reference string
	// Conflicting is the name of the pipeline that disagreed.
	Conflicting string
}

// Error returns a formatted message describing the disagreement.
func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch: pipeline %q disagrees with %q", e.Conflicting, e.Reference)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// The wrapped error can be unwrapped with errors.Unwrap() and checked with
// errors.Is() and errors.As(). Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
