/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package funcdef

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=FunctionArgKind -output=arg-kind_string.go

const (
	// Allow only literal as argument
	FunctionArgKind_Literal FunctionArgKind = iota

	// Allow only field as argument
	FunctionArgKind_Field

	FunctionArgKind_FakeLast
)

func (k FunctionArgKind) MarshalText() ([]byte, error) {
	var s string
	if k < FunctionArgKind_FakeLast {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an FunctionArgKind in human-readable form, without
// `FunctionArgKind_` prefix, suitable for debugging or error messages
func (k FunctionArgKind) TrimString() string {
	const pref = "FunctionArgKind_"
	return strings.TrimPrefix(k.String(), pref)
}
