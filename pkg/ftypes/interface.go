/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

// Package ftypes provides the value-type model shared by the filter engine:
// types of fields, literals and function results, type expectations used by
// argument checks, and the runtime / parse-time value representations.
package ftypes

// Value types kinds enumeration.
//
// Ref. type-kind.go for constants and methods
type TypeKind uint8

// # Type
//
// Value type of a field, literal or function result.
//
// Scalar types compare by kind. Array and Map types carry an item type and
// compare structurally.
//
// Ref. types.go for constructors and methods
type Type struct {
	kind TypeKind
	item *Type
}

// # ExpectedType
//
// One acceptable argument type: a concrete type, any array or any map
// regardless of item type.
//
// Ref. types.go for constructors and methods
type ExpectedType struct {
	kind  expectedKind
	exact Type
}

// # ExpectedTypeList
//
// Ordered set of type expectations. Duplicates are suppressed, insertion
// order is preserved.
//
// Ref. types.go for methods
type ExpectedTypeList struct {
	items []ExpectedType
}

// # LhsValue
//
// Runtime value: a field value, a function argument or a function result.
// Immutable once constructed.
//
// Ref. lhs-value.go for constructors and methods
type LhsValue struct {
	typ  Type
	data any
}

// # RhsValue
//
// Parse-time literal. The expression language has no boolean and no compound
// literals, so only Int, Ulong, Bytes and Ip values are inhabited.
//
// Ref. rhs-value.go for constructors and methods
type RhsValue struct {
	typ  Type
	data any
}

// # CompiledValue
//
// Evaluated argument cell: a value, or a typed absence when the underlying
// field had no value at evaluation time.
//
// Ref. compiled-value.go for constructors and methods
type CompiledValue struct {
	value  LhsValue
	typ    Type
	absent bool
}
