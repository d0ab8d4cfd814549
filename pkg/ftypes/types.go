/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ftypes

import (
	"strings"

	"golang.org/x/exp/slices"
)

// NullType returns no-value type
func NullType() Type { return Type{} }

func BoolType() Type  { return Type{kind: TypeKind_Bool} }
func IntType() Type   { return Type{kind: TypeKind_Int} }
func UlongType() Type { return Type{kind: TypeKind_Ulong} }
func BytesType() Type { return Type{kind: TypeKind_Bytes} }
func IpType() Type    { return Type{kind: TypeKind_Ip} }

// ArrayType returns array type with specified item type
func ArrayType(item Type) Type { return Type{kind: TypeKind_Array, item: &item} }

// MapType returns map type with specified item type
func MapType(item Type) Type { return Type{kind: TypeKind_Map, item: &item} }

func (t Type) Kind() TypeKind { return t.kind }

// Item returns the element type of an array or map type.
//
// Returns false if the type has no element type
func (t Type) Item() (Type, bool) {
	if t.item == nil {
		return NullType(), false
	}
	return *t.item, true
}

func (t Type) IsArray() bool { return t.kind == TypeKind_Array }

func (t Type) IsMap() bool { return t.kind == TypeKind_Map }

// Equal compares types structurally. Array and Map types are equal only if
// their item types are equal too
func (t Type) Equal(o Type) bool {
	if t.kind != o.kind {
		return false
	}
	if t.item == nil {
		return o.item == nil
	}
	return o.item != nil && t.item.Equal(*o.item)
}

func (t Type) String() string {
	switch t.kind {
	case TypeKind_Array:
		return "Array(" + t.item.String() + ")"
	case TypeKind_Map:
		return "Map(" + t.item.String() + ")"
	}
	return t.kind.TrimString()
}

type expectedKind uint8

const (
	expectedKind_Exact expectedKind = iota
	expectedKind_AnyArray
	expectedKind_AnyMap
)

// Expected returns expectation of exactly the specified type
func Expected(t Type) ExpectedType { return ExpectedType{exact: t} }

// ExpectedAnyArray returns expectation of an array of any item type
func ExpectedAnyArray() ExpectedType { return ExpectedType{kind: expectedKind_AnyArray} }

// ExpectedAnyMap returns expectation of a map of any item type
func ExpectedAnyMap() ExpectedType { return ExpectedType{kind: expectedKind_AnyMap} }

// Matches reports whether the actual type satisfies the expectation
func (e ExpectedType) Matches(actual Type) bool {
	switch e.kind {
	case expectedKind_AnyArray:
		return actual.IsArray()
	case expectedKind_AnyMap:
		return actual.IsMap()
	}
	return e.exact.Equal(actual)
}

func (e ExpectedType) Equal(o ExpectedType) bool {
	if e.kind != o.kind {
		return false
	}
	if e.kind == expectedKind_Exact {
		return e.exact.Equal(o.exact)
	}
	return true
}

func (e ExpectedType) String() string {
	switch e.kind {
	case expectedKind_AnyArray:
		return "Array(_)"
	case expectedKind_AnyMap:
		return "Map(_)"
	}
	return e.exact.String()
}

// Add appends the expectation unless an equal one is already in the list
func (l *ExpectedTypeList) Add(e ExpectedType) {
	if slices.IndexFunc(l.items, e.Equal) < 0 {
		l.items = append(l.items, e)
	}
}

func (l ExpectedTypeList) Len() int { return len(l.items) }

func (l ExpectedTypeList) At(i int) ExpectedType { return l.items[i] }

// String renders a single expectation as is, several as `{A, B}`
func (l ExpectedTypeList) String() string {
	if len(l.items) == 1 {
		return l.items[0].String()
	}
	s := make([]string, len(l.items))
	for i, e := range l.items {
		s[i] = e.String()
	}
	return "{" + strings.Join(s, ", ") + "}"
}
