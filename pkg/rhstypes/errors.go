/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rhstypes

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

var ErrListNameError = errors.New("invalid list name")

func ErrListName(msg string, args ...any) error {
	return EnrichError(ErrListNameError, msg, args...)
}

var ErrWildcardError = errors.New("bad wildcard")

// WildcardError reports a broken escape in a wildcard pattern. Pos is the
// byte offset of the offending backslash
type WildcardError struct {
	Pattern string
	Pos     int
}

func (e *WildcardError) Error() string {
	return fmt.Sprintf("%v: bad escape at position %d in %q", ErrWildcardError, e.Pos, e.Pattern)
}

func (e *WildcardError) Unwrap() error { return ErrWildcardError }

var ErrUnsupportedPatternError = errors.New("unsupported pattern")

// UnsupportedPatternError reports a pattern the custom matcher builder
// declined
type UnsupportedPatternError struct {
	Pattern string
}

func (e *UnsupportedPatternError) Error() string {
	return fmt.Sprintf("%v: failed to add pattern %q", ErrUnsupportedPatternError, e.Pattern)
}

func (e *UnsupportedPatternError) Unwrap() error { return ErrUnsupportedPatternError }

var ErrCompiledTooBigError = errors.New("compiled regex too big")

// CompiledTooBigError reports a pattern whose compiled program exceeds the
// size limit. Limit carries the exact bound that was applied
type CompiledTooBigError struct {
	Limit int
}

func (e *CompiledTooBigError) Error() string {
	return fmt.Sprintf("%v: exceeds size limit %d", ErrCompiledTooBigError, e.Limit)
}

func (e *CompiledTooBigError) Unwrap() error { return ErrCompiledTooBigError }

var ErrPatternSyntaxError = errors.New("regex error")

// PatternSyntaxError wraps the engine syntax error for a pattern
type PatternSyntaxError struct {
	Pattern string
	Err     error
}

func (e *PatternSyntaxError) Error() string {
	return fmt.Sprintf("%v: %v", ErrPatternSyntaxError, e.Err)
}

func (e *PatternSyntaxError) Unwrap() []error { return []error{ErrPatternSyntaxError, e.Err} }
