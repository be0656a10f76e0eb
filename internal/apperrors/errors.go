package apperrors

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidRange indicates that a date range query has its start after its end.
var ErrInvalidRange = errors.New("invalid date range")

// ErrRateUnavailable indicates that no exchange rate exists, neither fresh
// nor as a stored fallback.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ValidationError carries the full list of violated intake rules so callers
// can report every problem in one pass rather than just the first.
type ValidationError struct {
	Violations []string
}

// NewValidationError builds a ValidationError from the given violations.
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Violations, "; ")
}

// Is makes errors.Is(err, ErrValidation) hold for ValidationError values.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
