// Package classics is a small collection of classic algorithms, each in
// its own package and each backed by a stdin→stdout program under cmd/:
//
//	segtree/  range-sum segment tree with point updates (0- or 1-based)
//	dijkstra/ single-source shortest paths, lazy-deletion binary heap
//	kmp/      Knuth–Morris–Pratt matching, overlapping occurrences
//	lis/      longest strictly increasing subsequence, O(N log N)
//	matrix/   modular matrix power, linear recurrences, Fibonacci
//
// The algorithm packages depend on nothing but the standard library and
// report failures through sentinel errors matched with errors.Is. The
// programs share flag/env configuration and structured logging through
// internal/cli.
//
// Quick start:
//
//	t := segtree.New([]int64{1, 3, 5, 7, 9, 11}, segtree.WithOneBased())
//	_ = t.Update(3, 10)
//	sum, _ := t.Query(1, 3) // 14
package classics
