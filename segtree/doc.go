// SPDX-License-Identifier: MIT

// Package segtree implements a range-sum segment tree over a fixed-length
// sequence of int64 values, supporting point updates and closed-range sum
// queries in O(log N).
//
// Overview:
//
//   - The tree is array-backed and pointer-free: node k has children 2k and
//     2k+1, the root lives at index 1, and storage is preallocated to 4·N
//     slots, which is enough for every split pattern produced by the
//     recursion regardless of how N factors.
//   - The range a node covers is never stored; it is recomputed from the
//     recursion parameters [start, end] on every traversal.
//   - Every internal node holds the sum of its two children; every leaf holds
//     the current value at its position. Build and Update both restore this
//     before returning.
//
// Indexing:
//
//   - An instance is 0-based by default (positions [0, Len())).
//   - WithOneBased() switches it to 1-based (positions [1, Len()]).
//   - The convention is fixed for the lifetime of the instance and applies
//     uniformly to Update, Query and At.
//
// Errors (sentinel):
//
//   - ErrOutOfRange: a position outside the instance's valid range.
//   - ErrEmptyTree:  a positional operation on a tree built from no values.
//
// A Query with l > r is not an error: it returns the additive identity 0,
// so callers that decompose ranges can pass empty sub-ranges freely.
//
// Complexity:
//
//   - New:    O(N) time, O(N) space.
//   - Update: O(log N).
//   - Query:  O(log N); a node fully covered by the query returns its stored
//     sum without descending further.
//
// Thread safety:
//
//   - *Tree is not safe for concurrent use. Wrap it in a *Locked when an
//     instance is shared between goroutines.
//
// Example:
//
//	t := segtree.New([]int64{1, 3, 5, 7, 9, 11}, segtree.WithOneBased())
//	sum, _ := t.Query(1, 6)     // 36
//	_ = t.Update(3, 10)         // 5 → 10
//	sum, _ = t.Query(1, 3)      // 14
package segtree
