/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

// Package funcdef provides the contracts a host embeds custom functions
// through: parameter checking during parsing, per-call-site parse state and
// compilation of a call down to the closure executed by a filter.
package funcdef

import (
	"github.com/voedger/filtex/pkg/ftypes"
)

// Function argument kinds enumeration.
//
// Ref. arg-kind.go for constants and methods
type FunctionArgKind uint8

// # FunctionParam
//
// One parameter at a function call site: a literal constant or a field of a
// declared type.
//
// Ref. param.go for constructors and methods
type FunctionParam struct {
	value *ftypes.RhsValue
	typ   ftypes.Type
}

// # IArgs
//
// Sequence of evaluated arguments a function implementation consumes.
// The remaining length is always known.
//
// Ref. args.go for constructors
type IArgs interface {
	// Len returns the number of values left in the sequence
	Len() int

	// Next returns the next value. Returns false if the sequence is
	// exhausted
	Next() (ftypes.CompiledValue, bool)
}

// FunctionImpl is the runtime shape of a function: both raw implementations
// and compiled closures. Returning false means the function is not defined
// for this input and the caller treats the result as a missing value
type FunctionImpl func(args IArgs) (ftypes.LhsValue, bool)

// IContextValue is the capability set a parse-state payload must provide.
//
// Ref. context.go for the context owning a payload
type IContextValue interface {
	// Clone returns a deep copy sharing no mutable state with the receiver
	Clone() IContextValue

	// String renders the payload in debug form
	String() string
}

// # FunctionDefinitionContext
//
// Per-call-site parse state of a function definition. Owned by exactly one
// in-progress call-site parse.
//
// Ref. context.go for constructors and methods
type FunctionDefinitionContext struct {
	inner IContextValue
}

// UnboundedArgs marks an unlimited number of optional arguments
const UnboundedArgs = -1

// # IFunctionDefinition
//
// A custom function as the parser sees it. Definitions are shared between
// call sites and goroutines, so implementations must be safe for concurrent
// use; per-call-site mutable state belongs in the context.
//
// The parser drives a call site through the contract in order: Context once,
// CheckParam per parsed parameter, ReturnType after the parameters are
// accepted, Compile last.
type IFunctionDefinition interface {
	// Context returns a fresh parse state for one call site. Returns nil
	// when the definition needs none
	Context() *FunctionDefinitionContext

	// CheckParam checks the next parameter against the already accepted
	// prefix. The ctx is nil when the definition declared no context.
	//
	// The caller enforces ArgCount bounds, CheckParam is never invoked
	// beyond them
	CheckParam(prev []FunctionParam, next FunctionParam, ctx *FunctionDefinitionContext) error

	// ReturnType returns the function result type for the accepted
	// parameters
	ReturnType(params []FunctionParam, ctx *FunctionDefinitionContext) ftypes.Type

	// ArgCount returns the number of mandatory and optional arguments.
	// UnboundedArgs optional arguments means no upper bound
	ArgCount() (mandatory, optional int)

	// Compile resolves the call site down to the closure executed by the
	// filter, consuming the context
	Compile(params []FunctionParam, ctx *FunctionDefinitionContext) FunctionImpl
}
