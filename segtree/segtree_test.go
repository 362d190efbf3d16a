// SPDX-License-Identifier: MIT

package segtree_test

import (
	"testing"

	rng "github.com/leesper/go_rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/classics/segtree"
)

// ------------------------------------------------------------------------
// 1. Construction
// ------------------------------------------------------------------------

func TestNew_Empty(t *testing.T) {
	tr := segtree.New(nil)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, int64(0), tr.Total())
	assert.Empty(t, tr.Values())
	assert.NoError(t, segtree.CheckInvariant(tr, nil))

	err := tr.Update(0, 1)
	assert.ErrorIs(t, err, segtree.ErrEmptyTree)

	_, err = tr.Query(0, 0)
	assert.ErrorIs(t, err, segtree.ErrEmptyTree)

	_, err = tr.At(0)
	assert.ErrorIs(t, err, segtree.ErrEmptyTree)
}

func TestNew_EmptyRangeOnEmptyTree(t *testing.T) {
	// l > r is the additive identity even when no position is valid.
	sum, err := segtree.New(nil).Query(1, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), sum)
}

func TestNew_SingleElement(t *testing.T) {
	tr := segtree.New([]int64{42})
	require.Equal(t, 1, tr.Len())
	assert.Equal(t, int64(42), tr.Total())

	sum, err := tr.Query(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), sum)

	require.NoError(t, tr.Update(0, -7))
	v, err := tr.At(0)
	require.NoError(t, err)
	assert.Equal(t, int64(-7), v)
	assert.Equal(t, int64(-7), tr.Total())
	assert.NoError(t, segtree.CheckInvariant(tr, []int64{-7}))
}

func TestNew_StorageIsFourN(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5, 17, 100} {
		tr := segtree.New(make([]int64, n))
		assert.Equal(t, 4*n, segtree.NodeCount(tr), "n=%d", n)
	}
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	in := []int64{1, 2, 3}
	tr := segtree.New(in)
	in[0] = 100

	sum, err := tr.Query(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), sum)

	out := tr.Values()
	out[1] = 100
	assert.Equal(t, []int64{1, 2, 3}, tr.Values())
}

func TestWithBase_PanicsOnBadBase(t *testing.T) {
	assert.Panics(t, func() { segtree.WithBase(2) })
	assert.NotPanics(t, func() { segtree.WithBase(1) })
}

// ------------------------------------------------------------------------
// 2. Concrete scenario (1-based)
// ------------------------------------------------------------------------

func TestTree_OneBasedScenario(t *testing.T) {
	tr := segtree.New([]int64{1, 3, 5, 7, 9, 11}, segtree.WithOneBased())
	require.True(t, tr.OneBased())

	sum, err := tr.Query(1, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(36), sum)

	require.NoError(t, tr.Update(3, 10))

	sum, err = tr.Query(1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(14), sum)

	sum, err = tr.Query(4, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(27), sum)

	sum, err = tr.Query(1, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(41), sum)

	assert.NoError(t, segtree.CheckInvariant(tr, []int64{1, 3, 10, 7, 9, 11}))
}

// ------------------------------------------------------------------------
// 3. Errors and edge cases
// ------------------------------------------------------------------------

func TestTree_OutOfRange(t *testing.T) {
	zero := segtree.New([]int64{1, 2, 3})
	one := segtree.New([]int64{1, 2, 3}, segtree.WithOneBased())

	cases := []struct {
		name string
		run  func() error
	}{
		{"update zero-based negative", func() error { return zero.Update(-1, 0) }},
		{"update zero-based past end", func() error { return zero.Update(3, 0) }},
		{"update one-based zero", func() error { return one.Update(0, 0) }},
		{"update one-based past end", func() error { return one.Update(4, 0) }},
		{"query left below", func() error { _, err := zero.Query(-1, 1); return err }},
		{"query right above", func() error { _, err := zero.Query(1, 3); return err }},
		{"query one-based zero", func() error { _, err := one.Query(0, 2); return err }},
		{"at past end", func() error { _, err := one.At(4); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.run(), segtree.ErrOutOfRange)
		})
	}

	// Rejected calls leave the trees untouched.
	assert.NoError(t, segtree.CheckInvariant(zero, []int64{1, 2, 3}))
	assert.NoError(t, segtree.CheckInvariant(one, []int64{1, 2, 3}))
}

func TestTree_DegenerateRange(t *testing.T) {
	tr := segtree.New([]int64{5, 6, 7, 8})
	for _, lr := range [][2]int{{1, 0}, {3, 2}, {4, 1}, {100, -100}} {
		sum, err := tr.Query(lr[0], lr[1])
		assert.NoError(t, err, "Query(%d,%d)", lr[0], lr[1])
		assert.Equal(t, int64(0), sum, "Query(%d,%d)", lr[0], lr[1])
	}
}

func TestTree_UpdateIdempotent(t *testing.T) {
	a := segtree.New([]int64{4, 8, 15, 16, 23, 42})
	b := segtree.New([]int64{4, 8, 15, 16, 23, 42})

	require.NoError(t, a.Update(2, 99))
	require.NoError(t, b.Update(2, 99))
	require.NoError(t, b.Update(2, 99))

	assert.Equal(t, a.Values(), b.Values())
	for l := 0; l < a.Len(); l++ {
		for r := l; r < a.Len(); r++ {
			sa, _ := a.Query(l, r)
			sb, _ := b.Query(l, r)
			assert.Equal(t, sa, sb, "Query(%d,%d)", l, r)
		}
	}
}

func TestTree_WideSumsDoNotOverflow32(t *testing.T) {
	const big = int64(2_000_000_000)
	tr := segtree.New([]int64{big, big, big, big})
	sum, err := tr.Query(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 4*big, sum)
}

func TestTree_AllRangesSmall(t *testing.T) {
	vals := []int64{-3, 1, 4, -1, 5, -9, 2, 6, -5, 3}
	tr := segtree.New(vals)
	for l := range vals {
		for r := l; r < len(vals); r++ {
			got, err := tr.Query(l, r)
			require.NoError(t, err)
			assert.Equal(t, bruteSum(vals, l, r), got, "Query(%d,%d)", l, r)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Randomized cross-check against a linear scan
// ------------------------------------------------------------------------

const (
	valueBound = 1_000_000
	opsPerRun  = 1000
)

func TestTree_RandomizedCrossCheck(t *testing.T) {
	gen := rng.NewUniformGenerator(20241019)

	sizes := []int{1, 2, 3, 7, 64, 1000}
	runs := 40
	if testing.Short() {
		runs = 5
	}
	for i := 0; i < runs; i++ {
		sizes = append(sizes, 1+int(gen.Int64n(1000)))
	}

	for _, n := range sizes {
		ref := make([]int64, n)
		for i := range ref {
			ref[i] = gen.Int64Range(-valueBound, valueBound+1)
		}
		tr := segtree.New(ref)

		for op := 0; op < opsPerRun; op++ {
			if gen.Int64n(2) == 0 {
				pos := int(gen.Int64n(int64(n)))
				v := gen.Int64Range(-valueBound, valueBound+1)
				require.NoError(t, tr.Update(pos, v))
				ref[pos] = v
				continue
			}
			l := int(gen.Int64n(int64(n)))
			r := int(gen.Int64n(int64(n)))
			if l > r {
				l, r = r, l
			}
			got, err := tr.Query(l, r)
			require.NoError(t, err)
			require.Equal(t, bruteSum(ref, l, r), got, "n=%d op=%d Query(%d,%d)", n, op, l, r)
		}

		total, err := tr.Query(0, n-1)
		require.NoError(t, err)
		assert.Equal(t, bruteSum(ref, 0, n-1), total, "full range n=%d", n)
		assert.Equal(t, total, tr.Total())
		require.NoError(t, segtree.CheckInvariant(tr, ref), "n=%d", n)
	}
}

// bruteSum is the linear-scan reference for [l, r].
func bruteSum(vals []int64, l, r int) int64 {
	var s int64
	for i := l; i <= r; i++ {
		s += vals[i]
	}

	return s
}
