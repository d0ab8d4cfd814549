/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package funcdef

import (
	"github.com/voedger/filtex/pkg/ftypes"
)

// ArgsOf returns a fresh cursor over the specified values
func ArgsOf(values ...ftypes.CompiledValue) IArgs {
	return &sliceArgs{values: values}
}

// ChainArgs concatenates two argument sequences. The chain draws from the
// first sequence until it is exhausted, then from the second; its length is
// the sum of the remaining lengths at every point
func ChainArgs(a, b IArgs) IArgs {
	return &chainArgs{a: a, b: b}
}

// # Implements:
//   - IArgs
type sliceArgs struct {
	values []ftypes.CompiledValue
	pos    int
}

func (a *sliceArgs) Len() int { return len(a.values) - a.pos }

func (a *sliceArgs) Next() (ftypes.CompiledValue, bool) {
	if a.pos >= len(a.values) {
		return ftypes.CompiledValue{}, false
	}
	v := a.values[a.pos]
	a.pos++
	return v, true
}

// # Implements:
//   - IArgs
type chainArgs struct {
	a, b IArgs
}

func (c *chainArgs) Len() int { return c.a.Len() + c.b.Len() }

func (c *chainArgs) Next() (ftypes.CompiledValue, bool) {
	if v, ok := c.a.Next(); ok {
		return v, true
	}
	return c.b.Next()
}
