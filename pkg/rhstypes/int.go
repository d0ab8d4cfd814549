/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rhstypes

import (
	"strconv"
	"strings"

	"github.com/voedger/filtex/pkg/lex"
)

// LexInt64 lexes a signed 64-bit integer off the input with the same radix
// rules as LexUint64. The sign is part of the parsed span, so negative
// decimal numbers parse
func LexInt64(input string) (value int64, rest string, err error) {
	if after, e := lex.Expect(input, "0x"); e == nil {
		digits, rest, err := lexDigits(after)
		if err != nil {
			return 0, "", err
		}
		return parseInt(digits, rest, 16)
	}

	if strings.HasPrefix(input, "0") {
		digits, rest, err := lexDigits(input)
		if err != nil {
			return 0, "", err
		}
		return parseInt(digits, rest, 8)
	}

	withoutSign := input
	if after, e := lex.Expect(input, "-"); e == nil {
		withoutSign = after
	}
	_, rest, err = lexDigits(withoutSign)
	if err != nil {
		return 0, "", err
	}
	return parseInt(lex.Span(input, rest), rest, 10)
}

func parseInt(digits, rest string, radix int) (int64, string, error) {
	v, err := strconv.ParseInt(digits, radix, 64)
	if err != nil {
		return 0, "", &lex.ParseIntError{Err: err, Radix: radix, Span: digits}
	}
	return v, rest, nil
}

// IntRange is an inclusive range of signed 64-bit integers. A plain number
// is the degenerate range of itself
type IntRange struct {
	First int64
	Last  int64
}

// IntRangeFrom returns the degenerate range holding a single value
func IntRangeFrom(value int64) IntRange {
	return IntRange{First: value, Last: value}
}

// LexIntRange lexes `first..last` or a plain number. A range whose upper
// bound is below the lower one is rejected with a span covering both bounds
func LexIntRange(input string) (r IntRange, rest string, err error) {
	first, rest, err := LexInt64(input)
	if err != nil {
		return IntRange{}, "", err
	}

	last := first
	if after, e := lex.Expect(rest, ".."); e == nil {
		last, rest, err = LexInt64(after)
		if err != nil {
			return IntRange{}, "", err
		}
	}

	if last < first {
		return IntRange{}, "", &lex.IncompatibleRangeBoundsError{Span: lex.Span(input, rest)}
	}
	return IntRange{First: first, Last: last}, rest, nil
}

// Contains reports whether the value falls into the range, bounds included
func (r IntRange) Contains(value int64) bool {
	return value >= r.First && value <= r.Last
}

func (r IntRange) String() string {
	const base = 10
	if r.First == r.Last {
		return strconv.FormatInt(r.First, base)
	}
	return strconv.FormatInt(r.First, base) + ".." + strconv.FormatInt(r.Last, base)
}
