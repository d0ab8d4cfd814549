/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ftypes

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=TypeKind -output=type-kind_string.go

const (
	// null - no-value type. Returned when the requested kind does not exist
	TypeKind_null TypeKind = iota

	TypeKind_Bool

	// Signed 64-bit integer
	TypeKind_Int

	// Unsigned 64-bit integer
	TypeKind_Ulong

	// Byte string. Text values are byte strings too
	TypeKind_Bytes

	// IP address, v4 or v6
	TypeKind_Ip

	TypeKind_Array
	TypeKind_Map

	TypeKind_FakeLast
)

func (k TypeKind) MarshalText() ([]byte, error) {
	var s string
	if k < TypeKind_FakeLast {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an TypeKind in human-readable form, without `TypeKind_` prefix,
// suitable for debugging or error messages
func (k TypeKind) TrimString() string {
	const pref = "TypeKind_"
	return strings.TrimPrefix(k.String(), pref)
}
