/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rhstypes

const (
	// DefaultRegexSizeLimit bounds a compiled pattern program. Generous for
	// handwritten patterns, stops pathological repetition expansions
	DefaultRegexSizeLimit = 1 << 16
)
