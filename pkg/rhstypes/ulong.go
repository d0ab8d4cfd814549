/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rhstypes

import (
	"strconv"
	"strings"

	"github.com/voedger/filtex/pkg/lex"
)

// lexDigits takes the longest run of hexadecimal digits regardless of the
// radix in use, so that a failed parse reports the whole run in its span
func lexDigits(input string) (digits, rest string, err error) {
	return lex.TakeWhile(input, "digit", lex.IsHexDigit)
}

// LexUint64 lexes an unsigned 64-bit integer off the input. Numbers with a
// `0x` prefix are hexadecimal, with a `0` prefix octal, decimal otherwise
func LexUint64(input string) (value uint64, rest string, err error) {
	if after, e := lex.Expect(input, "0x"); e == nil {
		digits, rest, err := lexDigits(after)
		if err != nil {
			return 0, "", err
		}
		return parseUint(digits, rest, 16)
	}

	if strings.HasPrefix(input, "0") {
		digits, rest, err := lexDigits(input)
		if err != nil {
			return 0, "", err
		}
		return parseUint(digits, rest, 8)
	}

	// a leading minus is skipped only to locate the digit run. It stays in
	// the parsed span, so negative input fails the unsigned parse with a
	// span that covers the sign
	withoutSign := input
	if after, e := lex.Expect(input, "-"); e == nil {
		withoutSign = after
	}
	_, rest, err = lexDigits(withoutSign)
	if err != nil {
		return 0, "", err
	}
	return parseUint(lex.Span(input, rest), rest, 10)
}

func parseUint(digits, rest string, radix int) (uint64, string, error) {
	v, err := strconv.ParseUint(digits, radix, 64)
	if err != nil {
		return 0, "", &lex.ParseIntError{Err: err, Radix: radix, Span: digits}
	}
	return v, rest, nil
}

// UlongRange is an inclusive range of unsigned 64-bit integers. A plain
// number is the degenerate range of itself
type UlongRange struct {
	First uint64
	Last  uint64
}

// UlongRangeFrom returns the degenerate range holding a single value
func UlongRangeFrom(value uint64) UlongRange {
	return UlongRange{First: value, Last: value}
}

// LexUlongRange lexes `first..last` or a plain number. A range whose upper
// bound is below the lower one is rejected with a span covering both bounds
func LexUlongRange(input string) (r UlongRange, rest string, err error) {
	first, rest, err := LexUint64(input)
	if err != nil {
		return UlongRange{}, "", err
	}

	last := first
	if after, e := lex.Expect(rest, ".."); e == nil {
		last, rest, err = LexUint64(after)
		if err != nil {
			return UlongRange{}, "", err
		}
	}

	if last < first {
		return UlongRange{}, "", &lex.IncompatibleRangeBoundsError{Span: lex.Span(input, rest)}
	}
	return UlongRange{First: first, Last: last}, rest, nil
}

// Contains reports whether the value falls into the range, bounds included
func (r UlongRange) Contains(value uint64) bool {
	return value >= r.First && value <= r.Last
}

func (r UlongRange) String() string {
	const base = 10
	if r.First == r.Last {
		return strconv.FormatUint(r.First, base)
	}
	return strconv.FormatUint(r.First, base) + ".." + strconv.FormatUint(r.Last, base)
}
