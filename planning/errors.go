/*
errors.go - Centralized error types for the planning engine

PURPOSE:
  All engine error types in one place. The engine has no I/O, so every
  error here means the caller handed us input that upstream validation
  should have caught. Failing fast keeps validation bugs visible instead
  of producing plausible-looking wrong numbers.

USAGE:
  Callers can classify with errors.Is:

    if errors.Is(err, planning.ErrUnknownPayCycle) {
        // 400, not 500
    }
*/
package planning

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownPayCycle is returned for a PayCycle outside the enum.
	ErrUnknownPayCycle = errors.New("unknown pay cycle")

	// ErrUnknownStrategy is returned for a debt strategy outside the enum.
	ErrUnknownStrategy = errors.New("unknown payoff strategy")

	// ErrUnknownTier is returned for a priority tier outside the enum.
	ErrUnknownTier = errors.New("unknown priority tier")

	// ErrNegativeAmount is returned when a currency input that must be
	// non-negative arrives negative.
	ErrNegativeAmount = errors.New("negative currency amount")

	// ErrInvalidAnnualDate is returned for a month/day pair that exists in
	// no year (e.g. April 31).
	ErrInvalidAnnualDate = errors.New("invalid annual date")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidInputError names the offending field and value alongside the
// sentinel it wraps.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError reports whether the error is caused by bad input rather
// than an engine defect. Handlers map these to 400.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnknownPayCycle) ||
		errors.Is(err, ErrUnknownStrategy) ||
		errors.Is(err, ErrUnknownTier) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidAnnualDate)
}

// requireNonNegative builds the standard rejection for negative currency.
func requireNonNegative(field string, m Money) error {
	if m.IsNegative() {
		return &InvalidInputError{Field: field, Value: m.String(), Err: ErrNegativeAmount}
	}
	return nil
}
