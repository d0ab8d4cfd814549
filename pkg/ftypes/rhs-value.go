/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ftypes

import (
	"bytes"
	"net/netip"
	"strconv"

	"golang.org/x/exp/slices"
)

func IntLiteral(v int64) RhsValue { return RhsValue{typ: IntType(), data: v} }

func UlongLiteral(v uint64) RhsValue { return RhsValue{typ: UlongType(), data: v} }

// BytesLiteral returns a byte-string literal. The literal takes ownership of
// the slice, the caller should not modify it afterwards
func BytesLiteral(v []byte) RhsValue { return RhsValue{typ: BytesType(), data: v} }

// StringLiteral returns a byte-string literal built from a string
func StringLiteral(v string) RhsValue { return BytesLiteral([]byte(v)) }

func IpLiteral(v netip.Addr) RhsValue { return RhsValue{typ: IpType(), data: v} }

func (v RhsValue) GetType() Type { return v.typ }

// AsInt converts the literal to a signed 64-bit value
func (v RhsValue) AsInt() (int64, *TypeMismatchError) {
	if i, ok := v.data.(int64); ok {
		return i, nil
	}
	return 0, newTypeMismatch(Expected(IntType()), v.typ)
}

// AsUlong converts the literal to an unsigned 64-bit value
func (v RhsValue) AsUlong() (uint64, *TypeMismatchError) {
	if u, ok := v.data.(uint64); ok {
		return u, nil
	}
	return 0, newTypeMismatch(Expected(UlongType()), v.typ)
}

// AsBytes converts the literal to a byte string
func (v RhsValue) AsBytes() ([]byte, *TypeMismatchError) {
	if b, ok := v.data.([]byte); ok {
		return b, nil
	}
	return nil, newTypeMismatch(Expected(BytesType()), v.typ)
}

// AsIp converts the literal to an IP address
func (v RhsValue) AsIp() (netip.Addr, *TypeMismatchError) {
	if ip, ok := v.data.(netip.Addr); ok {
		return ip, nil
	}
	return netip.Addr{}, newTypeMismatch(Expected(IpType()), v.typ)
}

// AsLhsValue converts the literal to a runtime value. Byte-string payloads
// are copied so the two values stay independent
func (v RhsValue) AsLhsValue() LhsValue {
	if b, ok := v.data.([]byte); ok {
		return LhsValue{typ: v.typ, data: slices.Clone(b)}
	}
	return LhsValue{typ: v.typ, data: v.data}
}

func (v RhsValue) Equal(o RhsValue) bool {
	if !v.typ.Equal(o.typ) {
		return false
	}
	if b, ok := v.data.([]byte); ok {
		e, k := o.data.([]byte)
		return k && bytes.Equal(b, e)
	}
	return v.data == o.data
}

func (v RhsValue) String() string {
	switch d := v.data.(type) {
	case int64:
		return strconv.FormatInt(d, 10)
	case uint64:
		return strconv.FormatUint(d, 10)
	case []byte:
		return strconv.Quote(string(d))
	case netip.Addr:
		return d.String()
	}
	return "null"
}
