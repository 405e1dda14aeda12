package reader_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/hom/reader"
)

func boolID() reader.Reader[bool, bool] { return reader.Ask[bool]() }

func boolNot() reader.Reader[bool, bool] { return reader.Not(reader.Ask[bool]()) }

func TestAllReduction(t *testing.T) {
	for _, env := range []bool{false, true} {
		require.True(t, reader.All[bool](nil).Run(env), "empty conjunction is vacuously true")
	}

	same := []reader.Reader[bool, bool]{boolID(), boolID(), boolID()}
	require.False(t, reader.All(same).Run(false))
	require.True(t, reader.All(same).Run(true))

	mixed := []reader.Reader[bool, bool]{boolID(), boolNot(), boolID()}
	require.False(t, reader.All(mixed).Run(false))
	require.False(t, reader.All(mixed).Run(true))
}

func TestAnyReduction(t *testing.T) {
	for _, env := range []bool{false, true} {
		require.False(t, reader.Any[bool](nil).Run(env), "empty disjunction is vacuously false")
	}

	same := []reader.Reader[bool, bool]{boolID(), boolID(), boolID()}
	require.False(t, reader.Any(same).Run(false))
	require.True(t, reader.Any(same).Run(true))

	mixed := []reader.Reader[bool, bool]{boolID(), boolNot(), boolID()}
	require.True(t, reader.Any(mixed).Run(false))
	require.True(t, reader.Any(mixed).Run(true))
}

func TestSumAndProdReductions(t *testing.T) {
	rs := []reader.Reader[int, int]{reader.Ask[int](), rSquare, rAddOne}
	require.Equal(t, 16, reader.Sum(rs).Run(3))
	require.Equal(t, 108, reader.Prod(rs).Run(3))

	for _, env := range []int{-5, 0, 12} {
		for _, empty := range [][]reader.Reader[int, int]{nil, {}} {
			require.Zero(t, reader.Sum(empty).Run(env), "empty sum is the additive identity")
			require.Equal(t, 1, reader.Prod(empty).Run(env), "empty product is the multiplicative identity")
		}
	}
}

func TestMinMaxReductions(t *testing.T) {
	rs := []reader.Reader[int, int]{reader.Ask[int](), rSquare, rAddOne}

	lowest, ok := reader.Min(rs)
	require.True(t, ok)
	require.Equal(t, 3, lowest.Run(3))

	highest, ok := reader.Max(rs)
	require.True(t, ok)
	require.Equal(t, 9, highest.Run(3))

	_, ok = reader.Min[int, int](nil)
	require.False(t, ok, "min needs at least one reader")
	_, ok = reader.Max[int, int](nil)
	require.False(t, ok, "max needs at least one reader")
}

func TestFoldAndReduce(t *testing.T) {
	rs := []reader.Reader[int, int]{reader.Ask[int](), rSquare, rAddOne}

	concat := reader.Fold(rs, "", func(acc string, v int) string {
		if acc == "" {
			return strconv.Itoa(v)
		}
		return acc + "," + strconv.Itoa(v)
	})
	require.Equal(t, "3,9,4", concat.Run(3))

	total, ok := reader.Reduce(rs, func(a int, b int) int { return a + b })
	require.True(t, ok)
	require.Equal(t, 16, total.Run(3))

	_, ok = reader.Reduce[int, int](nil, func(a int, b int) int { return a + b })
	require.False(t, ok, "reduce needs a seed value")
}

func TestReductionsCopyTheInputSlice(t *testing.T) {
	rs := []reader.Reader[int, int]{rSquare, rAddOne}
	total := reader.Sum(rs)
	require.Equal(t, 13, total.Run(3))

	rs[0] = reader.Pure[int](1000)
	require.Equal(t, 13, total.Run(3), "mutating the input must not change the reader")
}
