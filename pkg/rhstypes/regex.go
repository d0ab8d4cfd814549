/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

//go:build !regexpool

package rhstypes

import (
	"regexp"
	"regexp/syntax"

	"github.com/untillpro/goutils/logger"
)

// Regex is a compiled pattern. Equality follows the pattern source only,
// not the engine behind it.
//
// Safe for concurrent use
type Regex struct {
	matcher IRegexMatcher
	pattern string
	format  RegexFormat
}

// NewRegex compiles the pattern with the built-in engine, or through
// settings.MatcherBuilder when one is set.
//
// # Errors:
//   - PatternSyntaxError if the pattern does not parse
//   - CompiledTooBigError if the compiled program exceeds settings.SizeLimit
//   - UnsupportedPatternError if the custom builder declines the pattern
func NewRegex(pattern string, format RegexFormat, settings RegexSettings) (Regex, error) {
	if b := settings.MatcherBuilder; b != nil {
		m, ok := b.BuildPattern(pattern)
		if !ok {
			if logger.IsVerbose() {
				logger.Verbose("matcher builder declined pattern", pattern)
			}
			return Regex{}, &UnsupportedPatternError{Pattern: pattern}
		}
		return Regex{matcher: m, pattern: pattern, format: format}, nil
	}

	re, err := compileSized(pattern, settings.SizeLimit)
	if err != nil {
		return Regex{}, err
	}
	return Regex{matcher: builtinMatcher{re}, pattern: pattern, format: format}, nil
}

// compileSized compiles with the standard engine, failing patterns whose
// program grows beyond limit instructions. Zero limit disables the check
func compileSized(pattern string, limit int) (*regexp.Regexp, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &PatternSyntaxError{Pattern: pattern, Err: err}
	}
	if limit > 0 {
		prog, err := syntax.Compile(re.Simplify())
		if err != nil {
			return nil, &PatternSyntaxError{Pattern: pattern, Err: err}
		}
		if len(prog.Inst) > limit {
			return nil, &CompiledTooBigError{Limit: limit}
		}
	}
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternSyntaxError{Pattern: pattern, Err: err}
	}
	return compiled, nil
}

// IsMatch reports whether the text matches the pattern
func (r Regex) IsMatch(text []byte) bool { return r.matcher.IsMatch(text) }

// Pattern returns the original pattern source
func (r Regex) Pattern() string { return r.pattern }

// Format reports whether the pattern came in as a regex literal or was
// lowered from a wildcard
func (r Regex) Format() RegexFormat { return r.format }

// Equal follows the pattern source only
func (r Regex) Equal(o Regex) bool { return r.pattern == o.pattern }

func (r Regex) String() string { return r.pattern }

// Clone returns a handle to the same compiled pattern
func (r Regex) Clone() Regex { return r }

// Release lets go of the compiled pattern. A no-op here, the pooled
// implementation uses it for eviction
func (r Regex) Release() {}

// builtinMatcher adapts the standard engine.
//
// # Implements:
//   - IRegexMatcher
type builtinMatcher struct {
	re *regexp.Regexp
}

func (m builtinMatcher) IsMatch(text []byte) bool { return m.re.Match(text) }

func (m builtinMatcher) String() string { return m.re.String() }
