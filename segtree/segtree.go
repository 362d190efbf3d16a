// SPDX-License-Identifier: MIT

package segtree

import "fmt"

// root is the heap index of the node covering the whole sequence.
const root = 1

// Tree is a range-sum segment tree over a fixed number of int64 values.
// The zero value is an empty tree; use New to build a populated one.
type Tree struct {
	nodes []int64 // implicit heap, len 4·size, slot 0 unused
	size  int     // leaf count, immutable after New
	base  int     // first valid external position (0 or 1)
}

// New builds a tree from values in O(N). The slice is only read; later
// changes to it are not observed by the tree.
//
// An empty slice produces a tree whose positional operations return
// ErrEmptyTree. A single value makes node 1 both root and leaf.
func New(values []int64, opts ...Option) *Tree {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(values)
	t := &Tree{
		nodes: make([]int64, 4*n),
		size:  n,
		base:  cfg.Base,
	}
	if n > 0 {
		t.build(values, root, 0, n-1)
	}

	return t
}

// build fills node and its subtree, which covers values[start..end].
func (t *Tree) build(values []int64, node, start, end int) {
	if start == end {
		t.nodes[node] = values[start]
		return
	}
	mid := (start + end) / 2
	t.build(values, 2*node, start, mid)
	t.build(values, 2*node+1, mid+1, end)
	t.nodes[node] = t.nodes[2*node] + t.nodes[2*node+1]
}

// Len returns the number of positions in the tree.
func (t *Tree) Len() int { return t.size }

// OneBased reports whether positions are 1-based.
func (t *Tree) OneBased() bool { return t.base == 1 }

// Update sets the value at pos to v and recomputes every ancestor sum.
// It returns ErrOutOfRange (or ErrEmptyTree) without touching the tree
// when pos is not a valid position.
func (t *Tree) Update(pos int, v int64) error {
	i, err := t.index(pos)
	if err != nil {
		return err
	}
	t.update(root, 0, t.size-1, i, v)

	return nil
}

func (t *Tree) update(node, start, end, i int, v int64) {
	if start == end {
		t.nodes[node] = v
		return
	}
	mid := (start + end) / 2
	if i <= mid {
		t.update(2*node, start, mid, i, v)
	} else {
		t.update(2*node+1, mid+1, end, i, v)
	}
	t.nodes[node] = t.nodes[2*node] + t.nodes[2*node+1]
}

// Query returns the sum of the values at positions l through r inclusive.
//
// l > r is an empty range and yields 0 with a nil error, whatever the
// bounds. Otherwise both l and r must be valid positions.
func (t *Tree) Query(l, r int) (int64, error) {
	if l > r {
		return 0, nil
	}
	lo, err := t.index(l)
	if err != nil {
		return 0, err
	}
	hi, err := t.index(r)
	if err != nil {
		return 0, err
	}

	return t.query(root, 0, t.size-1, lo, hi), nil
}

// query sums [l, r] within the node covering [start, end]. The caller
// guarantees start <= l and r <= end whenever l <= r.
func (t *Tree) query(node, start, end, l, r int) int64 {
	if l > r {
		return 0
	}
	if l == start && r == end {
		return t.nodes[node]
	}
	mid := (start + end) / 2

	return t.query(2*node, start, mid, l, min(r, mid)) +
		t.query(2*node+1, mid+1, end, max(l, mid+1), r)
}

// At returns the current value at pos by walking to its leaf.
func (t *Tree) At(pos int) (int64, error) {
	i, err := t.index(pos)
	if err != nil {
		return 0, err
	}
	node, start, end := root, 0, t.size-1
	for start != end {
		mid := (start + end) / 2
		if i <= mid {
			node, end = 2*node, mid
		} else {
			node, start = 2*node+1, mid+1
		}
	}

	return t.nodes[node], nil
}

// Total returns the sum of every value, or 0 for an empty tree.
func (t *Tree) Total() int64 {
	if t.size == 0 {
		return 0
	}

	return t.nodes[root]
}

// Values returns a fresh copy of the current leaf values in position order.
func (t *Tree) Values() []int64 {
	out := make([]int64, 0, t.size)
	if t.size > 0 {
		t.collect(root, 0, t.size-1, &out)
	}

	return out
}

func (t *Tree) collect(node, start, end int, out *[]int64) {
	if start == end {
		*out = append(*out, t.nodes[node])
		return
	}
	mid := (start + end) / 2
	t.collect(2*node, start, mid, out)
	t.collect(2*node+1, mid+1, end, out)
}

// index converts an external position to a 0-based leaf offset.
func (t *Tree) index(pos int) (int, error) {
	if t.size == 0 {
		return 0, ErrEmptyTree
	}
	i := pos - t.base
	if i < 0 || i >= t.size {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, pos, t.base, t.base+t.size-1)
	}

	return i, nil
}
