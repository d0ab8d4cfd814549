/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rhstypes

import (
	"github.com/voedger/filtex/pkg/lex"
)

// ListName names a host-managed list, referenced as `$name` in expressions.
// Names are runs of lowercase latin letters, digits and underscores
type ListName struct {
	name string
}

// NewListName returns the list name as it would be lexed from `$` + name.
//
// # Panics:
//   - if the name is empty or holds a byte outside [a-z0-9_]
func NewListName(name string) ListName {
	if name == "" {
		panic(ErrListName("empty list name"))
	}
	for i := 0; i < len(name); i++ {
		if !isListNameByte(name[i]) {
			panic(ErrListName("unexpected byte %q in list name «%s»", name[i], name))
		}
	}
	return ListName{name: name}
}

// LexListName lexes a `$name` list reference off the input
func LexListName(input string) (l ListName, rest string, err error) {
	after, err := lex.Expect(input, "$")
	if err != nil {
		return ListName{}, "", err
	}
	name, rest, err := lex.TakeWhile(after, "list name", isListNameByte)
	if err != nil {
		return ListName{}, "", err
	}
	return ListName{name: name}, rest, nil
}

func isListNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || lex.IsDigit(b) || b == '_'
}

// Name returns the bare name, without the `$` sigil
func (l ListName) Name() string { return l.name }

func (l ListName) String() string { return "$" + l.name }
