/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

// Package acmatcher plugs Aho-Corasick matching into regex compilation.
//
// Filter expressions often use regexes that are nothing but alternations
// of plain literals, like `"foo|bar|baz"`. Matching those with a backtracking
// or NFA engine wastes work, one automaton over all branches answers the
// same question in a single pass. The Builder here recognizes such patterns
// and builds automaton matchers for them, declining everything else.
package acmatcher

import (
	"strings"

	ac "github.com/petar-dambovaliev/aho-corasick"

	"github.com/voedger/filtex/pkg/rhstypes"
)

// Builder accepts patterns that are plain alternations of literals and
// builds Aho-Corasick matchers for them. Patterns using any other regex
// feature are declined.
//
// # Implements:
//   - rhstypes.IRegexMatcherBuilder
type Builder struct {
	// CaseInsensitive matches ASCII letters ignoring case
	CaseInsensitive bool
}

// BuildPattern builds a matcher when the pattern is an alternation of
// literals. Escapes `\|` and `\\` are honored. Empty branches, other
// escapes and regex metacharacters decline the pattern
func (b Builder) BuildPattern(pattern string) (rhstypes.IRegexMatcher, bool) {
	literals, ok := splitAlternation(pattern)
	if !ok {
		return nil, false
	}

	builder := ac.NewAhoCorasickBuilder(ac.Opts{
		AsciiCaseInsensitive: b.CaseInsensitive,
		MatchKind:            ac.LeftMostLongestMatch,
		DFA:                  true,
	})
	return &Matcher{
		automaton: builder.Build(literals),
		pattern:   pattern,
		literals:  literals,
	}, true
}

// regex metacharacters that disqualify a pattern from literal treatment
const regexMeta = `.+*?()[]{}^$`

// splitAlternation splits `a|b|c` into its literal branches, decoding `\|`
// and `\\` escapes
func splitAlternation(pattern string) (literals []string, ok bool) {
	branch := strings.Builder{}
	flush := func() bool {
		if branch.Len() == 0 {
			return false
		}
		literals = append(literals, branch.String())
		branch.Reset()
		return true
	}

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\':
			if i+1 == len(pattern) {
				return nil, false
			}
			i++
			if next := pattern[i]; next == '|' || next == '\\' {
				branch.WriteByte(next)
			} else {
				return nil, false
			}
		case c == '|':
			if !flush() {
				return nil, false
			}
		case strings.IndexByte(regexMeta, c) >= 0:
			return nil, false
		default:
			branch.WriteByte(c)
		}
	}

	if !flush() {
		return nil, false
	}
	return literals, true
}
