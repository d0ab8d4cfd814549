/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ftypes

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

var ErrConvertError = errors.New("convert error")

func ErrConvert(msg string, args ...any) error {
	return EnrichError(ErrConvertError, msg, args...)
}

var ErrTypeMismatchError = errors.New("type mismatch")

// TypeMismatchError describes a failed type expectation: every expectation
// tried, in the order tried, and the actual type that satisfied none of them
type TypeMismatchError struct {
	Expected ExpectedTypeList
	Actual   Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%v: expected value of type %v, but got %v", ErrTypeMismatchError, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatchError }

func newTypeMismatch(expected ExpectedType, actual Type) *TypeMismatchError {
	e := &TypeMismatchError{Actual: actual}
	e.Expected.Add(expected)
	return e
}
