// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/lazy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doubling(calls *int) func(int) (int, int, bool) {
	return func(n int) (int, int, bool) {
		*calls++
		return n, n * 2, true
	}
}

func TestTakeInfiniteUnfold(t *testing.T) {
	calls := 0
	xs, err := lazy.Take(5, lazy.Unfold(1, doubling(&calls)))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8, 16}, xs)
	// The producer for the sixth value onward never ran.
	assert.Equal(t, 5, calls)
}

func TestTakeStreamZeroDoesNotForce(t *testing.T) {
	calls := 0
	s := lazy.UnfoldStream(1, doubling(&calls))
	xs, err := lazy.TakeStream(0, s)
	require.NoError(t, err)
	assert.Empty(t, xs)
	assert.False(t, s.IsForced())
	assert.Equal(t, 0, calls)
}

func TestTakeStopsAtEnd(t *testing.T) {
	xs, err := lazy.TakeStream(10, lazy.FromSlice([]string{"a", "b", "c"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, xs)

	none, err := lazy.Take(3, lazy.End[int]())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTakeLargeCount(t *testing.T) {
	next := func(n int) (int, int, bool) { return n, n + 1, true }
	xs, err := lazy.Take(200_000, lazy.Unfold(0, next))
	require.NoError(t, err)
	require.Len(t, xs, 200_000)
	assert.Equal(t, 199_999, xs[len(xs)-1])
}

func TestTakeSharesForcedPrefix(t *testing.T) {
	calls := 0
	s := lazy.UnfoldStream(1, doubling(&calls))

	first, err := lazy.TakeStream(4, s)
	require.NoError(t, err)
	second, err := lazy.TakeStream(4, s)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 4, calls)
}

func TestTakeTailErrorIsRetryable(t *testing.T) {
	boom := errors.New("boom")
	fail := true
	tail := lazy.Defer(func() (lazy.Node[int], error) {
		if fail {
			return lazy.Node[int]{}, boom
		}
		return lazy.Cons(2, lazy.Empty[int]()), nil
	})
	s := lazy.Cons(1, tail)

	_, err := lazy.Take(2, s)
	require.ErrorIs(t, err, boom)

	fail = false
	xs, err := lazy.Take(2, s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, xs)
}

func TestNodeAccessors(t *testing.T) {
	end := lazy.End[int]()
	assert.True(t, end.IsEnd())
	_, ok := end.Head()
	assert.False(t, ok)
	assert.Nil(t, end.Tail())

	tail := lazy.Empty[int]()
	n := lazy.Cons(7, tail)
	assert.False(t, n.IsEnd())
	h, ok := n.Head()
	assert.True(t, ok)
	assert.Equal(t, 7, h)
	assert.Same(t, tail, n.Tail())

	describe := func(n lazy.Node[int]) string {
		return lazy.MatchNode(n,
			func() string { return "end" },
			func(h int, _ lazy.Stream[int]) string { return "cons" },
		)
	}
	assert.Equal(t, "end", describe(end))
	assert.Equal(t, "cons", describe(n))
}

func TestConsNilTailPanics(t *testing.T) {
	assert.PanicsWithValue(t, "lazy: Cons with nil tail", func() {
		lazy.Cons[int](1, nil)
	})
}

func TestStreamNodeIsWeakHeadNormal(t *testing.T) {
	calls := 0
	s := lazy.UnfoldStream(1, doubling(&calls))
	n, err := s.Force()
	require.NoError(t, err)
	assert.False(t, n.IsEnd())
	assert.False(t, n.Tail().IsForced())
	assert.Equal(t, 1, calls)

	v, err := lazy.ForceDeep(s)
	require.NoError(t, err)
	assert.IsType(t, lazy.Node[int]{}, v)
	assert.Equal(t, 1, calls)
}

func TestIterateAndRepeat(t *testing.T) {
	xs, err := lazy.TakeStream(4, lazy.Iterate(3, func(x int) int { return x + 10 }))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 13, 23, 33}, xs)

	rs, err := lazy.TakeStream(3, lazy.Repeat("x"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x"}, rs)
}

func TestMapStreamIsLazy(t *testing.T) {
	mapped := 0
	nat := lazy.Iterate(0, func(x int) int { return x + 1 })
	sq := lazy.MapStream(nat, func(x int) int { mapped++; return x * x })
	assert.Equal(t, 0, mapped)

	xs, err := lazy.TakeStream(5, sq)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, xs)
	assert.Equal(t, 5, mapped)
}

func TestFilter(t *testing.T) {
	nat := lazy.Iterate(1, func(x int) int { return x + 1 })
	even := lazy.Filter(nat, func(x int) bool { return x%2 == 0 })
	xs, err := lazy.TakeStream(5, even)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6, 8, 10}, xs)

	none, err := lazy.ToSlice(lazy.Filter(lazy.FromSlice([]int{1, 3}), func(x int) bool { return x%2 == 0 }))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTakeWhile(t *testing.T) {
	nat := lazy.Iterate(1, func(x int) int { return x + 1 })
	xs, err := lazy.ToSlice(lazy.TakeWhile(nat, func(x int) bool { return x < 6 }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, xs)
}

func TestDrop(t *testing.T) {
	calls := 0
	s := lazy.UnfoldStream(1, doubling(&calls))
	d := lazy.Drop(3, s)
	assert.Equal(t, 0, calls)

	xs, err := lazy.TakeStream(2, d)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 16}, xs)

	short, err := lazy.ToSlice(lazy.Drop(5, lazy.FromSlice([]int{1, 2})))
	require.NoError(t, err)
	assert.Empty(t, short)
}

func TestTailOf(t *testing.T) {
	xs, err := lazy.ToSlice(lazy.TailOf(lazy.FromSlice([]int{1, 2, 3})))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, xs)

	empty, err := lazy.ToSlice(lazy.TailOf(lazy.Empty[int]()))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestZipWithEndsWithShorter(t *testing.T) {
	nat := lazy.Iterate(0, func(x int) int { return x + 1 })
	names := lazy.FromSlice([]string{"a", "b", "c"})
	zipped := lazy.ZipWith(nat, names, func(i int, s string) string {
		return s + string(rune('0'+i))
	})
	xs, err := lazy.ToSlice(zipped)
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "b1", "c2"}, xs)
}

func TestFixFibonacci(t *testing.T) {
	adds := 0
	add := func(a, b int) int { adds++; return a + b }
	fibs := lazy.Fix(func(fibs lazy.Stream[int]) lazy.Stream[int] {
		return lazy.Pure(lazy.Cons(0, lazy.Pure(lazy.Cons(1,
			lazy.ZipWith(fibs, lazy.TailOf(fibs), add)))))
	})

	xs, err := lazy.TakeStream(10, fibs)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}, xs)
	// Sharing through the knot keeps the work linear.
	assert.Equal(t, 8, adds)

	again, err := lazy.TakeStream(10, fibs)
	require.NoError(t, err)
	assert.Equal(t, xs, again)
	assert.Equal(t, 8, adds)
}

func TestFold(t *testing.T) {
	sum, err := lazy.Fold(lazy.FromSlice([]int{1, 2, 3, 4}), 0, func(acc, x int) int { return acc + x })
	require.NoError(t, err)
	assert.Equal(t, 10, sum)

	nat := lazy.Iterate(1, func(x int) int { return x + 1 })
	big, err := lazy.Fold(lazy.TakeWhile(nat, func(x int) bool { return x <= 100_000 }), 0,
		func(acc, x int) int { return acc + x })
	require.NoError(t, err)
	assert.Equal(t, 5_000_050_000, big)
}

func TestFoldPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	s := lazy.Pure(lazy.Cons(1, lazy.Defer(func() (lazy.Node[int], error) {
		return lazy.Node[int]{}, boom
	})))
	_, err := lazy.Fold(s, 0, func(acc, x int) int { return acc + x })
	assert.ErrorIs(t, err, boom)
}

func TestAllBreakStopsForcing(t *testing.T) {
	calls := 0
	var got []int
	for v, err := range lazy.All(lazy.UnfoldStream(1, doubling(&calls))) {
		require.NoError(t, err)
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 4}, got)
	assert.Equal(t, 3, calls)
}

func TestAllYieldsError(t *testing.T) {
	boom := errors.New("boom")
	s := lazy.Pure(lazy.Cons(1, lazy.Defer(func() (lazy.Node[int], error) {
		return lazy.Node[int]{}, boom
	})))
	var vals []int
	var errs []error
	for v, err := range lazy.All(s) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vals = append(vals, v)
	}
	assert.Equal(t, []int{1}, vals)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], boom)
}
