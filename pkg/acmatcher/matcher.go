/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package acmatcher

import (
	ac "github.com/petar-dambovaliev/aho-corasick"
	"golang.org/x/exp/slices"
)

// Matcher matches text against a fixed set of literal needles in one pass.
//
// Safe for concurrent use.
//
// # Implements:
//   - rhstypes.IRegexMatcher
type Matcher struct {
	automaton ac.AhoCorasick
	pattern   string
	literals  []string
}

// IsMatch reports whether any of the literal branches occurs in the text
func (m *Matcher) IsMatch(text []byte) bool {
	return len(m.automaton.FindAll(string(text))) > 0
}

// Literals returns the decoded literal branches of the pattern
func (m *Matcher) Literals() []string {
	return slices.Clone(m.literals)
}

// String returns the original pattern
func (m *Matcher) String() string { return m.pattern }
