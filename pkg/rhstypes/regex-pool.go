/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

//go:build regexpool

package rhstypes

import (
	"regexp"
	"sync"
	"sync/atomic"

	"github.com/untillpro/goutils/logger"
)

// RegexPool interns compiled patterns: all handles lexed from one pattern
// share one compiled program, dropped after the last handle releases it.
//
// Safe for concurrent use
type RegexPool struct {
	mu      sync.Mutex
	entries map[string]*poolEntry
	onEvict func(pattern string)
}

type poolEntry struct {
	pool     *RegexPool
	pattern  string
	compiled *regexp.Regexp
	refs     atomic.Int32
}

// NewRegexPool returns an empty pool
func NewRegexPool() *RegexPool {
	return &RegexPool{entries: make(map[string]*poolEntry)}
}

// Get returns a handle to the compiled pattern, compiling and interning it
// on first use.
//
// # Errors:
//   - PatternSyntaxError if the pattern does not parse
func (p *RegexPool) Get(pattern string, format RegexFormat) (Regex, error) {
	p.mu.Lock()
	if e, ok := p.entries[pattern]; ok {
		e.refs.Add(1)
		p.mu.Unlock()
		return Regex{entry: e, format: format}, nil
	}

	// compiling under the lock keeps concurrent gets of one pattern from
	// compiling it twice
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		p.mu.Unlock()
		return Regex{}, &PatternSyntaxError{Pattern: pattern, Err: err}
	}

	e := &poolEntry{pool: p, pattern: pattern, compiled: compiled}
	e.refs.Store(1)
	p.entries[pattern] = e
	p.mu.Unlock()

	if logger.IsVerbose() {
		logger.Verbose("regex pool: compiled", pattern)
	}
	return Regex{entry: e, format: format}, nil
}

// Len returns the number of interned patterns
func (p *RegexPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// OnEvict installs a hook called after a pattern is dropped from the pool.
// The hook runs outside the pool lock
func (p *RegexPool) OnEvict(hook func(pattern string)) {
	p.mu.Lock()
	p.onEvict = hook
	p.mu.Unlock()
}

// release drops one reference. The entry is evicted when the count hits
// zero, unless a concurrent Get revived it in the meantime
func (p *RegexPool) release(e *poolEntry) {
	if e.refs.Add(-1) != 0 {
		return
	}

	p.mu.Lock()
	if p.entries[e.pattern] != e || e.refs.Load() != 0 {
		// revived or replaced between the decrement and the lock
		p.mu.Unlock()
		return
	}
	delete(p.entries, e.pattern)
	hook := p.onEvict
	p.mu.Unlock()

	if logger.IsVerbose() {
		logger.Verbose("regex pool: evicted", e.pattern)
	}
	if hook != nil {
		hook(e.pattern)
	}
}

var defaultRegexPool = NewRegexPool()

// DefaultRegexPool returns the process-wide pool behind NewRegex
func DefaultRegexPool() *RegexPool { return defaultRegexPool }

// Regex is a handle to a pattern interned in a pool. Handles sharing one
// pattern share one compiled program. Equality follows the pattern source.
//
// Release a handle exactly once. Clone returns an independent handle when
// the pattern needs to outlive the original
type Regex struct {
	entry  *poolEntry
	format RegexFormat
}

// NewRegex interns the pattern in the process-wide pool. The settings are
// accepted for parity with the plain implementation and are not applied
func NewRegex(pattern string, format RegexFormat, _ RegexSettings) (Regex, error) {
	return defaultRegexPool.Get(pattern, format)
}

// IsMatch reports whether the text matches the pattern
func (r Regex) IsMatch(text []byte) bool { return r.entry.compiled.Match(text) }

// Pattern returns the original pattern source
func (r Regex) Pattern() string { return r.entry.pattern }

// Format reports whether the pattern came in as a regex literal or was
// lowered from a wildcard
func (r Regex) Format() RegexFormat { return r.format }

// Equal follows the pattern source only
func (r Regex) Equal(o Regex) bool { return r.Pattern() == o.Pattern() }

func (r Regex) String() string { return r.Pattern() }

// Clone returns a new handle to the same interned pattern
func (r Regex) Clone() Regex {
	r.entry.refs.Add(1)
	return r
}

// Release drops this handle. The compiled pattern is evicted from the pool
// when the last handle goes
func (r Regex) Release() {
	if r.entry != nil {
		r.entry.pool.release(r.entry)
	}
}
