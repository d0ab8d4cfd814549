/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rhstypes

// DefaultRegexSettings returns settings with the default size limit and the
// built-in engine
func DefaultRegexSettings() RegexSettings {
	return RegexSettings{SizeLimit: DefaultRegexSizeLimit}
}
