// SPDX-License-Identifier: MIT

package segtree

import "sync"

// Locked guards a Tree with a read/write mutex: Update takes the write
// lock, every read takes the read lock. Queries may therefore run in
// parallel while updates are exclusive.
type Locked struct {
	mu   sync.RWMutex
	tree *Tree
}

// NewLocked builds a Tree from values and wraps it.
func NewLocked(values []int64, opts ...Option) *Locked {
	return &Locked{tree: New(values, opts...)}
}

// Update sets the value at pos. See Tree.Update.
func (l *Locked) Update(pos int, v int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.tree.Update(pos, v)
}

// Query sums positions lo through hi. See Tree.Query.
func (l *Locked) Query(lo, hi int) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.tree.Query(lo, hi)
}

// At returns the value at pos.
func (l *Locked) At(pos int) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.tree.At(pos)
}

// Total returns the sum of all values.
func (l *Locked) Total() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.tree.Total()
}

// Len returns the number of positions. The size never changes, so no
// lock is needed.
func (l *Locked) Len() int { return l.tree.Len() }

// Snapshot returns a copy of the current values taken under the read lock.
func (l *Locked) Snapshot() []int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.tree.Values()
}
