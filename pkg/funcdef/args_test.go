/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package funcdef

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/filtex/pkg/ftypes"
)

func drain(args IArgs) []ftypes.CompiledValue {
	out := []ftypes.CompiledValue{}
	for {
		v, ok := args.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestArgsOf(t *testing.T) {
	require := require.New(t)

	t.Run("length tracks consumption", func(t *testing.T) {
		args := ArgsOf(
			ftypes.CompiledOf(ftypes.UlongValue(1)),
			ftypes.CompiledOf(ftypes.UlongValue(2)),
		)
		require.Equal(2, args.Len())

		v, ok := args.Next()
		require.True(ok)
		u, _ := v.Value()
		require.True(u.Equal(ftypes.UlongValue(1)))
		require.Equal(1, args.Len())

		_, ok = args.Next()
		require.True(ok)
		require.Equal(0, args.Len())

		_, ok = args.Next()
		require.False(ok)
		require.Equal(0, args.Len())
	})

	t.Run("empty", func(t *testing.T) {
		args := ArgsOf()
		require.Equal(0, args.Len())
		_, ok := args.Next()
		require.False(ok)
	})
}

func TestChainArgs(t *testing.T) {
	require := require.New(t)

	newChain := func() IArgs {
		return ChainArgs(
			ArgsOf(ftypes.CompiledOf(ftypes.UlongValue(1)), ftypes.CompiledOf(ftypes.UlongValue(2))),
			ArgsOf(ftypes.CompiledOf(ftypes.UlongValue(3))),
		)
	}

	t.Run("draws left to right", func(t *testing.T) {
		got := drain(newChain())
		require.Len(got, 3)
		for i, want := range []uint64{1, 2, 3} {
			v, ok := got[i].Value()
			require.True(ok)
			require.True(v.Equal(ftypes.UlongValue(want)))
		}
	})

	t.Run("length is the sum of remainders at every point", func(t *testing.T) {
		chain := newChain()
		for want := 3; want > 0; want-- {
			require.Equal(want, chain.Len())
			_, ok := chain.Next()
			require.True(ok)
		}
		require.Equal(0, chain.Len())
		_, ok := chain.Next()
		require.False(ok)
	})

	t.Run("empty first sequence", func(t *testing.T) {
		chain := ChainArgs(ArgsOf(), ArgsOf(ftypes.CompiledOf(ftypes.BoolValue(true))))
		require.Equal(1, chain.Len())
		got := drain(chain)
		require.Len(got, 1)
	})

	t.Run("empty second sequence", func(t *testing.T) {
		chain := ChainArgs(ArgsOf(ftypes.CompiledOf(ftypes.BoolValue(true))), ArgsOf())
		require.Equal(1, chain.Len())
		require.Len(drain(chain), 1)
	})

	t.Run("chains nest", func(t *testing.T) {
		chain := ChainArgs(newChain(), ArgsOf(ftypes.CompiledOf(ftypes.UlongValue(4))))
		require.Equal(4, chain.Len())
		require.Len(drain(chain), 4)
	})

	t.Run("absences pass through", func(t *testing.T) {
		chain := ChainArgs(
			ArgsOf(ftypes.MissingOf(ftypes.BytesType())),
			ArgsOf(ftypes.CompiledOf(ftypes.UlongValue(1))),
		)
		require.Equal(2, chain.Len())

		v, ok := chain.Next()
		require.True(ok)
		mt, missing := v.MissingType()
		require.True(missing)
		require.Equal(ftypes.BytesType(), mt)
	})
}
