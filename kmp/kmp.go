// Package kmp finds every occurrence of a byte pattern in a text with the
// Knuth–Morris–Pratt algorithm.
//
// Two phases:
//  1. PrefixFunction builds the failure table of the pattern in O(M).
//  2. FindAll scans the text once in O(N); the text index never moves
//     backward, and overlapping matches are reported.
//
// Positions are 0-based byte offsets. Matching is byte-wise, so multi-byte
// UTF-8 runes are compared by their encoding.
package kmp

import "errors"

// ErrEmptyPattern is returned when compiling a zero-length pattern.
var ErrEmptyPattern = errors.New("kmp: pattern is empty")

// PrefixFunction returns lps where lps[i] is the length of the longest
// proper prefix of pattern[:i+1] that is also its suffix.
func PrefixFunction(pattern []byte) []int {
	lps := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = lps[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		lps[i] = k
	}

	return lps
}

// Matcher is a compiled pattern. It is immutable and safe for concurrent use.
type Matcher struct {
	pattern []byte
	lps     []int
}

// Compile precomputes the failure table for pattern. The pattern is copied.
func Compile(pattern []byte) (*Matcher, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	p := append([]byte(nil), pattern...)

	return &Matcher{pattern: p, lps: PrefixFunction(p)}, nil
}

// Len returns the pattern length.
func (m *Matcher) Len() int { return len(m.pattern) }

// FindAll returns the start offset of every occurrence of the pattern in
// text, in increasing order. It returns nil when there is none.
func (m *Matcher) FindAll(text []byte) []int {
	var out []int
	m.scan(text, func(pos int) bool {
		out = append(out, pos)
		return true
	})

	return out
}

// Count returns the number of (possibly overlapping) occurrences.
func (m *Matcher) Count(text []byte) int {
	n := 0
	m.scan(text, func(int) bool {
		n++
		return true
	})

	return n
}

// Index returns the first occurrence, or -1.
func (m *Matcher) Index(text []byte) int {
	first := -1
	m.scan(text, func(pos int) bool {
		first = pos
		return false
	})

	return first
}

// Contains reports whether the pattern occurs in text.
func (m *Matcher) Contains(text []byte) bool { return m.Index(text) >= 0 }

// scan calls yield for each match start until it returns false.
func (m *Matcher) scan(text []byte, yield func(pos int) bool) {
	p, lps := m.pattern, m.lps
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != p[j] {
			j = lps[j-1]
		}
		if text[i] == p[j] {
			j++
		}
		if j == len(p) {
			if !yield(i - j + 1) {
				return
			}
			j = lps[j-1]
		}
	}
}

// Search compiles pattern and returns all of its occurrences in text.
func Search(text, pattern []byte) ([]int, error) {
	m, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	return m.FindAll(text), nil
}
