/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ftypes

import (
	"bytes"
	"net/netip"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func BoolValue(v bool) LhsValue { return LhsValue{typ: BoolType(), data: v} }

func IntValue(v int64) LhsValue { return LhsValue{typ: IntType(), data: v} }

func UlongValue(v uint64) LhsValue { return LhsValue{typ: UlongType(), data: v} }

// BytesValue returns a byte-string value. The value takes ownership of the
// slice, the caller should not modify it afterwards
func BytesValue(v []byte) LhsValue { return LhsValue{typ: BytesType(), data: v} }

// StringValue returns a byte-string value built from a string
func StringValue(v string) LhsValue { return BytesValue([]byte(v)) }

func IpValue(v netip.Addr) LhsValue { return LhsValue{typ: IpType(), data: v} }

// ArrayValue returns an array value of the specified item type.
//
// # Panics:
//   - if any item's type is not the item type
func ArrayValue(item Type, items ...LhsValue) LhsValue {
	for _, v := range items {
		if !v.GetType().Equal(item) {
			panic(ErrConvert("array item is %v, expected %v", v.GetType(), item))
		}
	}
	return LhsValue{typ: ArrayType(item), data: items}
}

// MapValue returns a map value of the specified item type.
//
// # Panics:
//   - if any entry's type is not the item type
func MapValue(item Type, entries map[string]LhsValue) LhsValue {
	for k, v := range entries {
		if !v.GetType().Equal(item) {
			panic(ErrConvert("map entry «%s» is %v, expected %v", k, v.GetType(), item))
		}
	}
	return LhsValue{typ: MapType(item), data: entries}
}

func (v LhsValue) GetType() Type { return v.typ }

func (v LhsValue) AsBool() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok
}

func (v LhsValue) AsInt() (int64, bool) {
	i, ok := v.data.(int64)
	return i, ok
}

func (v LhsValue) AsUlong() (uint64, bool) {
	u, ok := v.data.(uint64)
	return u, ok
}

func (v LhsValue) AsBytes() ([]byte, bool) {
	b, ok := v.data.([]byte)
	return b, ok
}

func (v LhsValue) AsIp() (netip.Addr, bool) {
	ip, ok := v.data.(netip.Addr)
	return ip, ok
}

func (v LhsValue) AsArray() ([]LhsValue, bool) {
	a, ok := v.data.([]LhsValue)
	return a, ok
}

func (v LhsValue) AsMap() (map[string]LhsValue, bool) {
	m, ok := v.data.(map[string]LhsValue)
	return m, ok
}

// Clone returns a deep copy. The copy shares no mutable state with the
// original
func (v LhsValue) Clone() LhsValue {
	switch d := v.data.(type) {
	case []byte:
		return LhsValue{typ: v.typ, data: slices.Clone(d)}
	case []LhsValue:
		items := make([]LhsValue, len(d))
		for i, item := range d {
			items[i] = item.Clone()
		}
		return LhsValue{typ: v.typ, data: items}
	case map[string]LhsValue:
		entries := make(map[string]LhsValue, len(d))
		for k, item := range d {
			entries[k] = item.Clone()
		}
		return LhsValue{typ: v.typ, data: entries}
	}
	return v
}

// Equal compares values deeply, type included
func (v LhsValue) Equal(o LhsValue) bool {
	if !v.typ.Equal(o.typ) {
		return false
	}
	switch d := v.data.(type) {
	case []byte:
		b, ok := o.data.([]byte)
		return ok && bytes.Equal(d, b)
	case []LhsValue:
		b, ok := o.data.([]LhsValue)
		if !ok || len(d) != len(b) {
			return false
		}
		for i := range d {
			if !d[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case map[string]LhsValue:
		b, ok := o.data.(map[string]LhsValue)
		if !ok || len(d) != len(b) {
			return false
		}
		for k, item := range d {
			if e, ok := b[k]; !ok || !item.Equal(e) {
				return false
			}
		}
		return true
	}
	return v.data == o.data
}

// String renders the value in debug form. Map entries are rendered in key
// order to keep the form deterministic
func (v LhsValue) String() string {
	switch d := v.data.(type) {
	case bool:
		return strconv.FormatBool(d)
	case int64:
		return strconv.FormatInt(d, 10)
	case uint64:
		return strconv.FormatUint(d, 10)
	case []byte:
		return strconv.Quote(string(d))
	case netip.Addr:
		return d.String()
	case []LhsValue:
		s := make([]string, len(d))
		for i, item := range d {
			s[i] = item.String()
		}
		return "[" + strings.Join(s, ", ") + "]"
	case map[string]LhsValue:
		keys := maps.Keys(d)
		slices.Sort(keys)
		s := make([]string, len(keys))
		for i, k := range keys {
			s[i] = strconv.Quote(k) + ": " + d[k].String()
		}
		return "{" + strings.Join(s, ", ") + "}"
	}
	return "null"
}
