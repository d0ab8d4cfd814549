/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package funcdef_test

import (
	"fmt"
	"strconv"

	"github.com/voedger/filtex/pkg/ftypes"
	"github.com/voedger/filtex/pkg/funcdef"
)

func ExampleSimpleFunctionDefinition() {

	// `len(field)` returns the byte length of its argument
	def := &funcdef.SimpleFunctionDefinition{
		Params: []funcdef.SimpleFunctionParam{
			{ArgKind: funcdef.FunctionArgKind_Field, ValType: ftypes.BytesType()},
		},
		Result: ftypes.UlongType(),
		Impl: func(args funcdef.IArgs) (ftypes.LhsValue, bool) {
			c, _ := args.Next()
			v, ok := c.Value()
			if !ok {
				return ftypes.LhsValue{}, false
			}
			b, _ := v.AsBytes()
			return ftypes.UlongValue(uint64(len(b))), true
		},
	}

	param := funcdef.Variable(ftypes.BytesType())
	if err := def.CheckParam(nil, param, nil); err != nil {
		panic(err)
	}

	params := []funcdef.FunctionParam{param}
	fmt.Println("return type:", def.ReturnType(params, nil))

	impl := def.Compile(params, nil)
	result, ok := impl(funcdef.ArgsOf(ftypes.CompiledOf(ftypes.StringValue("example.com"))))
	fmt.Println(result, ok)

	// Output:
	// return type: Ulong
	// 11 true
}

func ExampleSimpleFunctionDefinition_optional() {

	// `clamp(value, limit)` caps a value, limit defaults to 10
	def := &funcdef.SimpleFunctionDefinition{
		Params: []funcdef.SimpleFunctionParam{
			{ArgKind: funcdef.FunctionArgKind_Field, ValType: ftypes.UlongType()},
		},
		OptParams: []funcdef.SimpleFunctionOptParam{
			{ArgKind: funcdef.FunctionArgKind_Literal, Default: ftypes.UlongValue(10)},
		},
		Result: ftypes.UlongType(),
		Impl: func(args funcdef.IArgs) (ftypes.LhsValue, bool) {
			c, _ := args.Next()
			v, ok := c.Value()
			if !ok {
				return ftypes.LhsValue{}, false
			}
			value, _ := v.AsUlong()

			c, _ = args.Next()
			v, ok = c.Value()
			if !ok {
				return ftypes.LhsValue{}, false
			}
			limit, _ := v.AsUlong()

			if value > limit {
				value = limit
			}
			return ftypes.UlongValue(value), true
		},
	}

	// only the mandatory argument is supplied, the limit falls back to 10
	impl := def.Compile([]funcdef.FunctionParam{funcdef.Variable(ftypes.UlongType())}, nil)

	for _, value := range []uint64{7, 100500} {
		result, _ := impl(funcdef.ArgsOf(ftypes.CompiledOf(ftypes.UlongValue(value))))
		fmt.Println(result)
	}

	// Output:
	// 7
	// 10
}

// requestCount carries parse state between parameter checks
type requestCount struct {
	n int
}

func (c *requestCount) Clone() funcdef.IContextValue {
	clone := *c
	return &clone
}

func (c *requestCount) String() string { return strconv.Itoa(c.n) }

func ExampleFunctionDefinitionContext() {
	ctx := funcdef.NewFunctionDefinitionContext(&requestCount{n: 42})
	fmt.Println(ctx)

	clone := ctx.Clone()
	if state, ok := funcdef.Downcast[*requestCount](&clone); ok {
		state.n++
	}
	fmt.Println(ctx)
	fmt.Println(clone)

	// Output:
	// FunctionDefinitionContext(42)
	// FunctionDefinitionContext(42)
	// FunctionDefinitionContext(43)
}
