/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package funcdef

import (
	"net/netip"

	"github.com/voedger/filtex/pkg/ftypes"
)

// Constant returns a literal parameter carrying the value
func Constant(v *ftypes.RhsValue) FunctionParam {
	return FunctionParam{value: v}
}

// Variable returns a field parameter of the declared type
func Variable(t ftypes.Type) FunctionParam {
	return FunctionParam{typ: t}
}

// ArgKind returns how the parameter was specified at the call site
func (p FunctionParam) ArgKind() FunctionArgKind {
	if p.value != nil {
		return FunctionArgKind_Literal
	}
	return FunctionArgKind_Field
}

// GetType returns the literal's type or the declared field type
func (p FunctionParam) GetType() ftypes.Type {
	if p.value != nil {
		return p.value.GetType()
	}
	return p.typ
}

// AsConstant returns the literal value. Field parameters are a kind mismatch
func (p FunctionParam) AsConstant() (*ftypes.RhsValue, error) {
	if p.value == nil {
		return nil, &ArgKindMismatchError{Expected: FunctionArgKind_Literal, Actual: FunctionArgKind_Field}
	}
	return p.value, nil
}

// AsVariable returns the declared field type. Literal parameters are a kind
// mismatch
func (p FunctionParam) AsVariable() (ftypes.Type, error) {
	if p.value != nil {
		return ftypes.NullType(), &ArgKindMismatchError{Expected: FunctionArgKind_Field, Actual: FunctionArgKind_Literal}
	}
	return p.typ, nil
}

// ExpectArgKind checks that the parameter kind is the expected kind
func (p FunctionParam) ExpectArgKind(expected FunctionArgKind) error {
	if kind := p.ArgKind(); kind != expected {
		return &ArgKindMismatchError{Expected: expected, Actual: kind}
	}
	return nil
}

// ExpectValType checks the parameter type against the expectations in order,
// first match wins. On failure the error lists every distinct expectation
// tried, in the order tried
func (p FunctionParam) ExpectValType(expected ...ftypes.ExpectedType) error {
	ty := p.GetType()
	tried := ftypes.ExpectedTypeList{}
	for _, e := range expected {
		if e.Matches(ty) {
			return nil
		}
		tried.Add(e)
	}
	return &ftypes.TypeMismatchError{Expected: tried, Actual: ty}
}

// ConstValue is the set of literal payloads an ExpectConstValue check can
// convert to
type ConstValue interface {
	int64 | uint64 | []byte | netip.Addr
}

// ExpectConstValue checks that the parameter is a literal convertible to T
// and calls op to validate the converted value. A non-nil op error is
// reported as an invalid constant
func ExpectConstValue[T ConstValue](p FunctionParam, op func(T) error) error {
	c, err := p.AsConstant()
	if err != nil {
		return err
	}
	var t T
	switch dst := any(&t).(type) {
	case *int64:
		v, convErr := c.AsInt()
		if convErr != nil {
			return convErr
		}
		*dst = v
	case *uint64:
		v, convErr := c.AsUlong()
		if convErr != nil {
			return convErr
		}
		*dst = v
	case *[]byte:
		v, convErr := c.AsBytes()
		if convErr != nil {
			return convErr
		}
		*dst = v
	case *netip.Addr:
		v, convErr := c.AsIp()
		if convErr != nil {
			return convErr
		}
		*dst = v
	}
	if opErr := op(t); opErr != nil {
		return &InvalidConstantError{Msg: opErr.Error()}
	}
	return nil
}
