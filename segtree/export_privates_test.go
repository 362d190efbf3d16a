// SPDX-License-Identifier: MIT

package segtree

import "fmt"

// Test bridge: white-box access to the node array for segtree_test.

// CheckInvariant walks the whole tree and reports the first internal node
// whose stored sum differs from the sum of its children, or the first leaf
// that differs from want[i]. A nil want skips the leaf comparison.
func CheckInvariant(t *Tree, want []int64) error {
	if t.size == 0 {
		return nil
	}
	if want != nil && len(want) != t.size {
		return fmt.Errorf("want has %d values, tree has %d", len(want), t.size)
	}

	return t.checkNode(root, 0, t.size-1, want)
}

func (t *Tree) checkNode(node, start, end int, want []int64) error {
	if start == end {
		if want != nil && t.nodes[node] != want[start] {
			return fmt.Errorf("leaf %d (node %d) = %d, want %d", start, node, t.nodes[node], want[start])
		}
		return nil
	}
	mid := (start + end) / 2
	if err := t.checkNode(2*node, start, mid, want); err != nil {
		return err
	}
	if err := t.checkNode(2*node+1, mid+1, end, want); err != nil {
		return err
	}
	if got, sum := t.nodes[node], t.nodes[2*node]+t.nodes[2*node+1]; got != sum {
		return fmt.Errorf("node %d [%d,%d] = %d, children sum to %d", node, start, end, got, sum)
	}

	return nil
}

// NodeCount exposes the length of the backing node slice.
func NodeCount(t *Tree) int { return len(t.nodes) }
