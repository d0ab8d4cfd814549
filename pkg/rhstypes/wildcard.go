/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rhstypes

import (
	"regexp"
	"strings"
)

// Wildcard is a glob-style pattern where an unescaped `*` matches any run
// of bytes, newlines included. A literal star is written `\*`, a literal
// backslash `\\`. No other escapes exist
type Wildcard struct {
	pattern string
}

// NewWildcard validates the pattern escapes and returns the wildcard.
//
// # Errors:
//   - WildcardError if the pattern ends with a dangling backslash or
//     escapes anything other than `*` or `\`
func NewWildcard(pattern string) (Wildcard, error) {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			continue
		}
		if i+1 == len(pattern) {
			return Wildcard{}, &WildcardError{Pattern: pattern, Pos: i}
		}
		if next := pattern[i+1]; next != '*' && next != '\\' {
			return Wildcard{}, &WildcardError{Pattern: pattern, Pos: i}
		}
		i++
	}
	return Wildcard{pattern: pattern}, nil
}

// AsRegexPattern lowers the wildcard to an anchored regex source: literal
// runs are quoted, every unescaped `*` becomes `.*`
func (w Wildcard) AsRegexPattern() string {
	pat := strings.Builder{}
	pat.WriteString(`(?s)^`)

	lit := strings.Builder{}
	flush := func() {
		if lit.Len() > 0 {
			pat.WriteString(regexp.QuoteMeta(lit.String()))
			lit.Reset()
		}
	}

	for i := 0; i < len(w.pattern); i++ {
		switch c := w.pattern[i]; c {
		case '\\':
			i++
			lit.WriteByte(w.pattern[i])
		case '*':
			flush()
			pat.WriteString(`.*`)
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	pat.WriteString(`$`)
	return pat.String()
}

// Regex compiles the wildcard through the regex engine
func (w Wildcard) Regex(settings RegexSettings) (Regex, error) {
	return NewRegex(w.AsRegexPattern(), RegexFormat_Wildcard, settings)
}

func (w Wildcard) String() string { return w.pattern }
