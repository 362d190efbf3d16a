// Package lis computes the longest strictly increasing subsequence of a
// sequence of integers in O(N log N) by patience sorting.
//
// The algorithm keeps tails, where tails[k] is the smallest value that ends
// an increasing subsequence of length k+1. tails is always sorted, so each
// element finds its slot with a lower-bound binary search: past the end it
// extends the longest run, otherwise it lowers an existing tail.
package lis

import "sort"

// Length returns the length of the longest strictly increasing
// subsequence of nums. Equal neighbours never extend a subsequence.
func Length(nums []int64) int {
	tails := make([]int64, 0, len(nums))
	for _, x := range nums {
		pos := lowerBound(tails, x)
		if pos == len(tails) {
			tails = append(tails, x)
		} else {
			tails[pos] = x
		}
	}

	return len(tails)
}

// Subsequence returns one longest strictly increasing subsequence of nums.
// Among equally long answers it returns the one whose last element is
// smallest. It returns nil for empty input.
func Subsequence(nums []int64) []int64 {
	if len(nums) == 0 {
		return nil
	}

	// tailIdx[k] indexes nums at the current tail of length k+1;
	// prev[i] links nums[i] to its predecessor in its subsequence.
	tailIdx := make([]int, 0, len(nums))
	tails := make([]int64, 0, len(nums))
	prev := make([]int, len(nums))
	for i, x := range nums {
		pos := lowerBound(tails, x)
		if pos > 0 {
			prev[i] = tailIdx[pos-1]
		} else {
			prev[i] = -1
		}
		if pos == len(tails) {
			tails = append(tails, x)
			tailIdx = append(tailIdx, i)
		} else {
			tails[pos] = x
			tailIdx[pos] = i
		}
	}

	out := make([]int64, len(tails))
	for k, i := len(tails)-1, tailIdx[len(tails)-1]; k >= 0; k, i = k-1, prev[i] {
		out[k] = nums[i]
	}

	return out
}

// lowerBound returns the first index whose value is >= x.
func lowerBound(sorted []int64, x int64) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] >= x })
}
