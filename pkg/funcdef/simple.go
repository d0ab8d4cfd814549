/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package funcdef

import (
	"github.com/voedger/filtex/pkg/ftypes"
)

// SimpleFunctionParam defines a mandatory argument
type SimpleFunctionParam struct {
	// How the argument can be specified when calling the function
	ArgKind FunctionArgKind

	// The type of its associated value
	ValType ftypes.Type
}

// SimpleFunctionOptParam defines an optional argument. The expected type of
// the argument is the type of its default value
type SimpleFunctionOptParam struct {
	// How the argument can be specified when calling the function
	ArgKind FunctionArgKind

	// The value spliced in when the argument is not supplied
	Default ftypes.LhsValue
}

// SimpleFunctionDefinition defines a function by declared slots: a fixed
// list of mandatory arguments followed by a fixed list of optional ones,
// with a constant result type. It needs no parse state.
//
// # Implements:
//   - IFunctionDefinition
type SimpleFunctionDefinition struct {
	// Mandatory arguments
	Params []SimpleFunctionParam

	// Optional arguments, specified after the mandatory ones
	OptParams []SimpleFunctionOptParam

	// Function result type
	Result ftypes.Type

	// The runtime implementation
	Impl FunctionImpl
}

func (f *SimpleFunctionDefinition) Context() *FunctionDefinitionContext { return nil }

// CheckParam checks the next parameter against the declared slot at the
// prefix position: the argument kind must match and the value type must be
// exactly the slot type (the default's type for optional slots).
//
// # Panics:
//   - if the position is beyond all declared slots
func (f *SimpleFunctionDefinition) CheckParam(prev []FunctionParam, next FunctionParam, _ *FunctionDefinitionContext) error {
	index := len(prev)
	switch {
	case index < len(f.Params):
		param := f.Params[index]
		if err := next.ExpectArgKind(param.ArgKind); err != nil {
			return err
		}
		return next.ExpectValType(ftypes.Expected(param.ValType))
	case index < len(f.Params)+len(f.OptParams):
		opt := f.OptParams[index-len(f.Params)]
		if err := next.ExpectArgKind(opt.ArgKind); err != nil {
			return err
		}
		return next.ExpectValType(ftypes.Expected(opt.Default.GetType()))
	}
	panic(ErrArity("parameter %d checked against %d declared slots", index, len(f.Params)+len(f.OptParams)))
}

func (f *SimpleFunctionDefinition) ReturnType([]FunctionParam, *FunctionDefinitionContext) ftypes.Type {
	return f.Result
}

func (f *SimpleFunctionDefinition) ArgCount() (mandatory, optional int) {
	return len(f.Params), len(f.OptParams)
}

// Compile resolves the call site down to the runtime closure. Defaults for
// the unsupplied optional arguments are cloned once here and appended to the
// explicit arguments on every call, the closure never clones per call.
//
// # Panics:
//   - if fewer parameters than mandatory arguments were accepted
//   - in the returned closure, if it is invoked with a different number of
//     arguments than it was compiled for
func (f *SimpleFunctionDefinition) Compile(params []FunctionParam, _ *FunctionDefinitionContext) FunctionImpl {
	paramsCount := len(params)
	if paramsCount < len(f.Params) {
		panic(ErrArity("%d parameters accepted, %d mandatory", paramsCount, len(f.Params)))
	}
	opt := f.OptParams[paramsCount-len(f.Params):]
	if len(opt) == 0 {
		return func(args IArgs) (ftypes.LhsValue, bool) {
			if args.Len() != paramsCount {
				panic(ErrArity("%d arguments, compiled for %d", args.Len(), paramsCount))
			}
			return f.Impl(args)
		}
	}
	defaults := make([]ftypes.CompiledValue, len(opt))
	for i, p := range opt {
		defaults[i] = ftypes.CompiledOf(p.Default.Clone())
	}
	return func(args IArgs) (ftypes.LhsValue, bool) {
		if args.Len() != paramsCount {
			panic(ErrArity("%d arguments, compiled for %d", args.Len(), paramsCount))
		}
		return f.Impl(ChainArgs(args, ArgsOf(defaults...)))
	}
}
