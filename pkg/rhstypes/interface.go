/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

// Package rhstypes provides the right-hand-side literal types of filter
// expressions: numeric ranges, wildcards, named lists and regexes, with
// their lexers.
//
// Lexers share one shape: they take the input, return the lexed value and
// the unconsumed rest, and locate failures with spans of the input.
package rhstypes

// Regex source formats enumeration.
//
// Ref. regex-format.go for constants and methods
type RegexFormat uint8

// IRegexMatcher matches text against one pre-built pattern. Matchers are
// safe for concurrent use
type IRegexMatcher interface {
	// IsMatch reports whether the text matches the pattern
	IsMatch(text []byte) bool

	// String returns the original pattern
	String() string
}

// IRegexMatcherBuilder builds custom matchers for regex patterns, replacing
// the built-in engine
type IRegexMatcherBuilder interface {
	// BuildPattern builds a matcher for the pattern. Returns false if the
	// pattern is not supported by this builder, the pattern is then
	// rejected rather than handed to another engine
	BuildPattern(pattern string) (IRegexMatcher, bool)
}

// RegexSettings bounds and customizes regex compilation.
//
// The pooled implementation (`regexpool` build tag) interns patterns in a
// process-wide pool and does not apply these settings
type RegexSettings struct {
	// SizeLimit bounds the compiled pattern, measured in program
	// instructions. Zero means no bound
	SizeLimit int

	// MatcherBuilder replaces the built-in engine when non-nil
	MatcherBuilder IRegexMatcherBuilder
}
