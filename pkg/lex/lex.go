/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

// Package lex provides the plumbing shared by literal lexers: required
// prefixes, predicate-driven token runs and error spans locating a failure
// inside the lexed input.
package lex

import "strings"

// Expect strips the required literal prefix from the input
func Expect(input, literal string) (rest string, err error) {
	if !strings.HasPrefix(input, literal) {
		return "", &ExpectedLiteralError{Literal: literal, Span: input}
	}
	return input[len(literal):], nil
}

// TakeWhile takes the longest non-empty prefix of bytes satisfying the
// predicate. The name describes the expected token in the error
func TakeWhile(input, name string, pred func(byte) bool) (token, rest string, err error) {
	n := 0
	for n < len(input) && pred(input[n]) {
		n++
	}
	if n == 0 {
		return "", "", &ExpectedNameError{Name: name, Span: input}
	}
	return input[:n], input[n:], nil
}

// Span returns the consumed prefix of the input that ends where rest begins.
//
// The rest must be a suffix of the input
func Span(input, rest string) string {
	return input[:len(input)-len(rest)]
}

func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
