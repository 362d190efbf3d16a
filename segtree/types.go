// SPDX-License-Identifier: MIT

package segtree

import "errors"

// Sentinel errors returned by Tree and Locked.
var (
	// ErrOutOfRange indicates a position outside [0, Len()) for a 0-based
	// tree, or outside [1, Len()] for a 1-based one.
	ErrOutOfRange = errors.New("segtree: position out of range")

	// ErrEmptyTree indicates a positional operation on a tree of length 0.
	ErrEmptyTree = errors.New("segtree: tree is empty")
)

// Option configures a Tree at construction time.
type Option func(*Options)

// Options holds the construction-time configuration of a Tree.
type Options struct {
	// Base is the index of the first position: 0 (default) or 1.
	Base int
}

// WithOneBased makes every positional argument of the tree 1-based.
func WithOneBased() Option {
	return func(o *Options) {
		o.Base = 1
	}
}

// WithBase sets the first valid position explicitly. Only 0 and 1 are
// meaningful; any other value panics as a programmer error.
func WithBase(base int) Option {
	if base != 0 && base != 1 {
		panic("segtree: WithBase: base must be 0 or 1")
	}

	return func(o *Options) {
		o.Base = base
	}
}

// DefaultOptions returns the zero configuration: 0-based positions.
func DefaultOptions() Options {
	return Options{Base: 0}
}
