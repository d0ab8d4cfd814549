/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ftypes

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLhsValue_GetType(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		v    LhsValue
		want Type
	}{
		{BoolValue(true), BoolType()},
		{IntValue(-1), IntType()},
		{UlongValue(42), UlongType()},
		{BytesValue([]byte("abc")), BytesType()},
		{StringValue("abc"), BytesType()},
		{IpValue(netip.MustParseAddr("127.0.0.1")), IpType()},
		{ArrayValue(BytesType()), ArrayType(BytesType())},
		{ArrayValue(IntType(), IntValue(1), IntValue(2)), ArrayType(IntType())},
		{MapValue(UlongType(), nil), MapType(UlongType())},
	}
	for _, tt := range tests {
		require.Equal(tt.want, tt.v.GetType())
	}

	t.Run("empty array keeps its item type", func(t *testing.T) {
		item, ok := ArrayValue(IpType()).GetType().Item()
		require.True(ok)
		require.Equal(IpType(), item)
	})
}

func TestLhsValue_Extractors(t *testing.T) {
	require := require.New(t)

	b, ok := BoolValue(true).AsBool()
	require.True(ok)
	require.True(b)

	i, ok := IntValue(-5).AsInt()
	require.True(ok)
	require.Equal(int64(-5), i)

	u, ok := UlongValue(42).AsUlong()
	require.True(ok)
	require.Equal(uint64(42), u)

	bs, ok := StringValue("abc").AsBytes()
	require.True(ok)
	require.Equal([]byte("abc"), bs)

	ip, ok := IpValue(netip.MustParseAddr("::1")).AsIp()
	require.True(ok)
	require.Equal(netip.MustParseAddr("::1"), ip)

	a, ok := ArrayValue(IntType(), IntValue(7)).AsArray()
	require.True(ok)
	require.Len(a, 1)

	m, ok := MapValue(IntType(), map[string]LhsValue{"x": IntValue(7)}).AsMap()
	require.True(ok)
	require.Len(m, 1)

	t.Run("wrong kind extracts nothing", func(t *testing.T) {
		_, ok := BoolValue(true).AsInt()
		require.False(ok)
		_, ok = IntValue(1).AsUlong()
		require.False(ok)
		_, ok = StringValue("x").AsArray()
		require.False(ok)
	})
}

func TestLhsValue_BadItems(t *testing.T) {
	require := require.New(t)

	require.Panics(func() { ArrayValue(IntType(), IntValue(1), UlongValue(2)) })
	require.Panics(func() { MapValue(BytesType(), map[string]LhsValue{"x": IntValue(1)}) })
}

func TestLhsValue_Clone(t *testing.T) {
	require := require.New(t)

	t.Run("bytes copy is independent", func(t *testing.T) {
		buf := []byte("abc")
		v := BytesValue(buf)
		c := v.Clone()
		buf[0] = 'X'
		got, _ := c.AsBytes()
		require.Equal([]byte("abc"), got)
	})

	t.Run("nested values are copied deeply", func(t *testing.T) {
		inner := []byte("abc")
		v := MapValue(ArrayType(BytesType()), map[string]LhsValue{
			"k": ArrayValue(BytesType(), BytesValue(inner)),
		})
		c := v.Clone()
		inner[0] = 'X'

		m, _ := c.AsMap()
		a, _ := m["k"].AsArray()
		got, _ := a[0].AsBytes()
		require.Equal([]byte("abc"), got)
	})

	t.Run("scalars clone as themselves", func(t *testing.T) {
		v := UlongValue(10)
		require.True(v.Equal(v.Clone()))
	})
}

func TestLhsValue_Equal(t *testing.T) {
	require := require.New(t)

	ip := netip.MustParseAddr("10.0.0.1")
	tests := []struct {
		name string
		a, b LhsValue
		want bool
	}{
		{"bool", BoolValue(true), BoolValue(true), true},
		{"bool mismatch", BoolValue(true), BoolValue(false), false},
		{"int vs ulong", IntValue(1), UlongValue(1), false},
		{"bytes", StringValue("abc"), BytesValue([]byte("abc")), true},
		{"bytes mismatch", StringValue("abc"), StringValue("abd"), false},
		{"ip", IpValue(ip), IpValue(ip), true},
		{"array", ArrayValue(IntType(), IntValue(1)), ArrayValue(IntType(), IntValue(1)), true},
		{"array length", ArrayValue(IntType(), IntValue(1)), ArrayValue(IntType()), false},
		{"empty arrays of different item types", ArrayValue(IntType()), ArrayValue(BytesType()), false},
		{"map", MapValue(IntType(), map[string]LhsValue{"x": IntValue(1)}), MapValue(IntType(), map[string]LhsValue{"x": IntValue(1)}), true},
		{"map keys", MapValue(IntType(), map[string]LhsValue{"x": IntValue(1)}), MapValue(IntType(), map[string]LhsValue{"y": IntValue(1)}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(tt.want, tt.a.Equal(tt.b))
			require.Equal(tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestLhsValue_String(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		v    LhsValue
		want string
	}{
		{LhsValue{}, "null"},
		{BoolValue(false), "false"},
		{IntValue(-7), "-7"},
		{UlongValue(42), "42"},
		{StringValue("a\"b"), `"a\"b"`},
		{IpValue(netip.MustParseAddr("10.0.0.1")), "10.0.0.1"},
		{ArrayValue(IntType(), IntValue(1), IntValue(2)), "[1, 2]"},
		{MapValue(IntType(), map[string]LhsValue{"b": IntValue(2), "a": IntValue(1)}), `{"a": 1, "b": 2}`},
	}
	for _, tt := range tests {
		require.Equal(tt.want, tt.v.String())
	}
}
