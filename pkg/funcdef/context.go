/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package funcdef

// NewFunctionDefinitionContext returns a context owning the specified payload
func NewFunctionDefinitionContext(v IContextValue) FunctionDefinitionContext {
	return FunctionDefinitionContext{inner: v}
}

// Value returns the payload. Returns nil after the payload was unwrapped
func (c FunctionDefinitionContext) Value() IContextValue { return c.inner }

// SetValue replaces the payload
func (c *FunctionDefinitionContext) SetValue(v IContextValue) { c.inner = v }

// Clone returns a context owning a deep copy of the payload. Clones never
// share mutable state, two contexts can not alias
func (c FunctionDefinitionContext) Clone() FunctionDefinitionContext {
	if c.inner == nil {
		return FunctionDefinitionContext{}
	}
	return FunctionDefinitionContext{inner: c.inner.Clone()}
}

func (c FunctionDefinitionContext) String() string {
	if c.inner == nil {
		return "FunctionDefinitionContext(null)"
	}
	return "FunctionDefinitionContext(" + c.inner.String() + ")"
}

// Downcast returns the payload as T. On mismatch the context is unchanged
// and still usable
func Downcast[T IContextValue](ctx *FunctionDefinitionContext) (T, bool) {
	v, ok := ctx.inner.(T)
	return v, ok
}

// Unwrap extracts the payload as T and leaves the context empty. On
// mismatch the context is unchanged and still usable
func Unwrap[T IContextValue](ctx *FunctionDefinitionContext) (T, bool) {
	v, ok := ctx.inner.(T)
	if ok {
		ctx.inner = nil
	}
	return v, ok
}
