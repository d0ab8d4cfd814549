/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package lex

import (
	"errors"
	"fmt"
)

var ErrExpectedLiteralError = errors.New("expected literal")

// ExpectedLiteralError reports a missing required literal. Span is the input
// left when the literal was required
type ExpectedLiteralError struct {
	Literal string
	Span    string
}

func (e *ExpectedLiteralError) Error() string {
	return fmt.Sprintf("%v: %q", ErrExpectedLiteralError, e.Literal)
}

func (e *ExpectedLiteralError) Unwrap() error { return ErrExpectedLiteralError }

var ErrExpectedNameError = errors.New("expected name")

// ExpectedNameError reports an empty token run. Name describes the token
// that was expected, Span is the input left when it was expected
type ExpectedNameError struct {
	Name string
	Span string
}

func (e *ExpectedNameError) Error() string {
	return fmt.Sprintf("%v: %s", ErrExpectedNameError, e.Name)
}

func (e *ExpectedNameError) Unwrap() error { return ErrExpectedNameError }

var ErrParseIntError = errors.New("parse int error")

// ParseIntError reports an integer that failed to parse. Span covers the
// whole digit run including the sign, Radix the base it was parsed in
type ParseIntError struct {
	Err   error
	Radix int
	Span  string
}

func (e *ParseIntError) Error() string {
	return fmt.Sprintf("%v: %v while parsing with radix %d", ErrParseIntError, e.Err, e.Radix)
}

func (e *ParseIntError) Unwrap() []error { return []error{ErrParseIntError, e.Err} }

var ErrIncompatibleRangeBoundsError = errors.New("incompatible range bounds")

// IncompatibleRangeBoundsError reports a range whose upper bound is below
// its lower bound. Span covers both bounds and the separator
type IncompatibleRangeBoundsError struct {
	Span string
}

func (e *IncompatibleRangeBoundsError) Error() string {
	return fmt.Sprintf("%v: %q", ErrIncompatibleRangeBoundsError, e.Span)
}

func (e *IncompatibleRangeBoundsError) Unwrap() error { return ErrIncompatibleRangeBoundsError }
