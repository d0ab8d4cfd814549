/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package acmatcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_BuildPattern(t *testing.T) {
	require := require.New(t)

	t.Run("literal alternations are accepted", func(t *testing.T) {
		for pattern, literals := range map[string][]string{
			"foo":          {"foo"},
			"foo|bar|baz":  {"foo", "bar", "baz"},
			`a\|b`:         {"a|b"},
			`a\|b|c`:       {"a|b", "c"},
			`c:\\tmp`:      {`c:\tmp`},
			"über|日本":      {"über", "日本"},
			"x-y_z,@# 01!": {"x-y_z,@# 01!"},
		} {
			m, ok := Builder{}.BuildPattern(pattern)
			require.True(ok, pattern)
			require.Equal(pattern, m.String())

			acm, isAC := m.(*Matcher)
			require.True(isAC)
			require.Equal(literals, acm.Literals())
		}
	})

	t.Run("regex features are declined", func(t *testing.T) {
		for _, pattern := range []string{
			"",
			"|",
			"a|",
			"|a",
			"a||b",
			`tail\`,
			`a\nb`,
			"a.b",
			"a*",
			"a+b",
			"a?",
			"(a|b)",
			"[ab]",
			"a{2}",
			"^a",
			"a$",
		} {
			m, ok := Builder{}.BuildPattern(pattern)
			require.False(ok, pattern)
			require.Nil(m, pattern)
		}
	})
}

func TestMatcher_IsMatch(t *testing.T) {
	require := require.New(t)

	m, ok := Builder{}.BuildPattern("foo|bar")
	require.True(ok)

	require.True(m.IsMatch([]byte("xx foo yy")))
	require.True(m.IsMatch([]byte("bar")))
	require.True(m.IsMatch([]byte("embedded: xxbarxx")))
	require.False(m.IsMatch([]byte("fo ba")))
	require.False(m.IsMatch([]byte("")))
	require.False(m.IsMatch([]byte("FOO")))

	t.Run("escaped branches match their decoded form", func(t *testing.T) {
		m, ok := Builder{}.BuildPattern(`a\|b`)
		require.True(ok)
		require.True(m.IsMatch([]byte("x a|b y")))
		require.False(m.IsMatch([]byte("ab")))
	})
}

func TestMatcher_CaseInsensitive(t *testing.T) {
	require := require.New(t)

	m, ok := Builder{CaseInsensitive: true}.BuildPattern("foo|bar")
	require.True(ok)

	require.True(m.IsMatch([]byte("FOO")))
	require.True(m.IsMatch([]byte("BaR")))
	require.False(m.IsMatch([]byte("fob")))
}
