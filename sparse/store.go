// SPDX-License-Identifier: MIT

// Package sparse - Cell Store: the authoritative coordinate → value mapping.
//
// Purpose:
//   - Keep ONLY cells whose value differs from the default D (sparsity invariant).
//   - Provide a single natural iteration order (row-major) from one flat ordered map.
//
// Layout:
//   - One google/btree BTreeG keyed by the composite Coordinate. A flat tree has
//     no per-row containers, so there is no "empty row" state to reclaim.
//
// Complexity quicksheet:
//   - get/set/erase: O(log n); count: O(1); clone: O(1) copy-on-write;
//     first/last/seek/after/before: O(log n).
package sparse

import "github.com/google/btree"

// store owns the default value and the ordered map of non-default cells.
type store[T comparable] struct {
	def  T                       // logical value of every absent coordinate
	tree *btree.BTreeG[entry[T]] // occupied cells, row-major
}

// newStore creates an empty store with the given default and btree degree.
func newStore[T comparable](def T, degree int) *store[T] {
	return &store[T]{
		def:  def,
		tree: btree.NewG[entry[T]](degree, entryLess[T]),
	}
}

// get returns the stored value at c, or the default when c is absent.
// Never mutates.
func (s *store[T]) get(c Coordinate) T {
	if e, ok := s.tree.Get(entry[T]{key: c}); ok {
		return e.value
	}

	return s.def
}

// set writes v at c. Writing the default is defined as absence: the entry is
// erased (no-op when already absent). Any other value is inserted or overwritten.
// Returns true when an existing entry was reclaimed by a default write.
func (s *store[T]) set(c Coordinate, v T) (reclaimed bool) {
	if v == s.def {
		return s.erase(c)
	}
	s.tree.ReplaceOrInsert(entry[T]{key: c, value: v})

	return false
}

// erase removes c if present. Idempotent; reports whether an entry was removed.
func (s *store[T]) erase(c Coordinate) bool {
	_, ok := s.tree.Delete(entry[T]{key: c})

	return ok
}

// count is the number of occupied coordinates.
func (s *store[T]) count() int {
	return s.tree.Len()
}

// clear drops every entry; the default is kept.
func (s *store[T]) clear() {
	s.tree.Clear(false)
}

// clone returns an independent store. google/btree clones lazily
// (copy-on-write), so later writes on either side never leak to the other.
func (s *store[T]) clone() *store[T] {
	return &store[T]{def: s.def, tree: s.tree.Clone()}
}

// first returns the smallest occupied entry in row-major order.
func (s *store[T]) first() (entry[T], bool) {
	return s.tree.Min()
}

// last returns the largest occupied entry in row-major order.
func (s *store[T]) last() (entry[T], bool) {
	return s.tree.Max()
}

// seek returns the first occupied entry whose key is >= c.
func (s *store[T]) seek(c Coordinate) (entry[T], bool) {
	var (
		found entry[T]
		ok    bool
	)
	s.tree.AscendGreaterOrEqual(entry[T]{key: c}, func(e entry[T]) bool {
		found, ok = e, true

		return false
	})

	return found, ok
}

// after returns the first occupied entry whose key is strictly > c.
// The successor is found by seeking c and skipping an exact match, which
// avoids computing (row, col+1) and overflowing at the int boundary.
func (s *store[T]) after(c Coordinate) (entry[T], bool) {
	var (
		found entry[T]
		ok    bool
	)
	s.tree.AscendGreaterOrEqual(entry[T]{key: c}, func(e entry[T]) bool {
		if e.key == c {
			return true
		}
		found, ok = e, true

		return false
	})

	return found, ok
}

// before returns the last occupied entry whose key is strictly < c.
// Mirrors after: descend from c and skip an exact match.
func (s *store[T]) before(c Coordinate) (entry[T], bool) {
	var (
		found entry[T]
		ok    bool
	)
	s.tree.DescendLessOrEqual(entry[T]{key: c}, func(e entry[T]) bool {
		if e.key == c {
			return true
		}
		found, ok = e, true

		return false
	})

	return found, ok
}

// ascendFrom walks occupied entries with key >= from in row-major order until
// fn returns false.
func (s *store[T]) ascendFrom(from Coordinate, fn func(entry[T]) bool) {
	s.tree.AscendGreaterOrEqual(entry[T]{key: from}, fn)
}
