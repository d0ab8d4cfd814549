/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rhstypes

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=RegexFormat -output=regex-format_string.go

const (
	// Pattern written as a regex literal
	RegexFormat_Literal RegexFormat = iota

	// Pattern lowered from a wildcard
	RegexFormat_Wildcard

	RegexFormat_FakeLast
)

func (f RegexFormat) MarshalText() ([]byte, error) {
	var s string
	if f < RegexFormat_FakeLast {
		s = f.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(f), base)
	}
	return []byte(s), nil
}

// Renders an RegexFormat in human-readable form, without `RegexFormat_`
// prefix, suitable for debugging or error messages
func (f RegexFormat) TrimString() string {
	const pref = "RegexFormat_"
	return strings.TrimPrefix(f.String(), pref)
}
