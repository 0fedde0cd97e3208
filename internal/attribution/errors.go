package attribution

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned by Solve when the inputs disagree in size.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// UnrecognizedFuelTypeError reports a fuel code with no emission factor.
type UnrecognizedFuelTypeError struct {
	FuelType   string
	Respondent string
}

func (e *UnrecognizedFuelTypeError) Error() string {
	return fmt.Sprintf("unrecognized fuel type %q reported by %s, cannot calculate emissions", e.FuelType, e.Respondent)
}

// IllConditionedError reports a system matrix too close to singular for the
// solution to carry meaning.
type IllConditionedError struct {
	Condition float64
	Threshold float64
}

func (e *IllConditionedError) Error() string {
	return fmt.Sprintf("system matrix is ill-conditioned: condition number %g exceeds %g", e.Condition, e.Threshold)
}

// ParseError reports a record field that is not a finite decimal number.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
