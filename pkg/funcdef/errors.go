/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package funcdef

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrArgKindMismatchError = errors.New("argument kind mismatch")

// ArgKindMismatchError reports a parameter specified as a literal where a
// field was expected, or the other way around
type ArgKindMismatchError struct {
	Expected FunctionArgKind
	Actual   FunctionArgKind
}

func (e *ArgKindMismatchError) Error() string {
	return fmt.Sprintf("%v: expected argument of kind %v, but got %v",
		ErrArgKindMismatchError, e.Expected.TrimString(), e.Actual.TrimString())
}

func (e *ArgKindMismatchError) Unwrap() error { return ErrArgKindMismatchError }

var ErrInvalidConstantError = errors.New("invalid argument")

// InvalidConstantError reports a literal argument rejected by a definition's
// validation
type InvalidConstantError struct {
	Msg string
}

func (e *InvalidConstantError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidConstantError, e.Msg)
}

func (e *InvalidConstantError) Unwrap() error { return ErrInvalidConstantError }

var ErrArityError = errors.New("arity violation")

func ErrArity(msg string, args ...any) error {
	return EnrichError(ErrArityError, msg, args...)
}
