// SPDX-License-Identifier: MIT

// Package sparse - Occupancy Iterator: ordered walk over occupied cells.
//
// Behavior highlights:
//   - Row-major order (ascending row, then ascending column), no duplicates.
//   - Live view: every step re-seeks the tree for the strict successor of the
//     current coordinate, so no snapshot is taken and a mutation between steps
//     cannot invalidate a node pointer. Mutating while iterating is still
//     unspecified as to WHICH cells are visited.
//   - Restartable: Begin() after any mutation starts a fresh, correct walk.
//   - Bidirectional: Prev steps to the strict predecessor; Prev on End() lands
//     on the last occupied cell, Prev on the first cell yields an end position.
//
// Complexity:
//   - Begin/Last/Seek/Next/Prev: O(log n); a full walk is O(n log n).
package sparse

import "iter"

// Iterator is a position in the occupied-cell sequence of a Matrix.
// The zero value is an end position of no matrix.
type Iterator[T comparable] struct {
	m   *Matrix[T]
	cur Cell[T]
	ok  bool // positioned on an occupied cell
}

// Begin returns the position of the first occupied cell, or End() when empty.
func (m *Matrix[T]) Begin() Iterator[T] {
	if m == nil {
		return Iterator[T]{}
	}
	e, ok := m.cells.first()
	if !ok {
		return m.End()
	}

	return Iterator[T]{m: m, cur: e.cell(), ok: true}
}

// Last returns the position of the last occupied cell, or End() when empty.
func (m *Matrix[T]) Last() Iterator[T] {
	if m == nil {
		return Iterator[T]{}
	}
	e, ok := m.cells.last()
	if !ok {
		return m.End()
	}

	return Iterator[T]{m: m, cur: e.cell(), ok: true}
}

// Seek returns the position of the first occupied cell at or after
// (row, col) in row-major order, or End() when there is none. Seek only
// positions; it accepts any coordinate and never touches storage.
func (m *Matrix[T]) Seek(row, col int) Iterator[T] {
	if m == nil {
		return Iterator[T]{}
	}
	e, ok := m.cells.seek(Coordinate{Row: row, Col: col})
	if !ok {
		return m.End()
	}

	return Iterator[T]{m: m, cur: e.cell(), ok: true}
}

// End returns the past-the-last position.
func (m *Matrix[T]) End() Iterator[T] {
	return Iterator[T]{m: m}
}

// Done reports whether the iterator is past the last occupied cell.
func (it Iterator[T]) Done() bool { return !it.ok }

// Cell returns a copy of the current occupied cell. Calling Cell on an end
// position returns the zero Cell.
func (it Iterator[T]) Cell() Cell[T] {
	if !it.ok {
		return Cell[T]{}
	}

	return it.cur
}

// Next returns the position of the next occupied cell in row-major order.
// Next on an end position stays at the end.
func (it Iterator[T]) Next() Iterator[T] {
	if !it.ok || it.m == nil {
		return Iterator[T]{m: it.m}
	}
	e, ok := it.m.cells.after(it.cur.Coordinate())
	if !ok {
		return Iterator[T]{m: it.m}
	}

	return Iterator[T]{m: it.m, cur: e.cell(), ok: true}
}

// Prev returns the position of the previous occupied cell in row-major order.
// Prev on an end position returns Last(); Prev on the first cell returns an
// end position.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.m == nil {
		return Iterator[T]{}
	}
	if !it.ok {
		return it.m.Last()
	}
	e, ok := it.m.cells.before(it.cur.Coordinate())
	if !ok {
		return Iterator[T]{m: it.m}
	}

	return Iterator[T]{m: it.m, cur: e.cell(), ok: true}
}

// Equal compares logical positions within the same matrix: both at end, or
// the same coordinate. Positions of different matrices are never equal.
// The cached value is not compared.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if it.m != other.m {
		return false
	}
	if !it.ok || !other.ok {
		return it.ok == other.ok
	}

	return it.cur.Coordinate() == other.cur.Coordinate()
}

// All yields every occupied cell in row-major order:
//
//	for c := range m.All() { ... }
func (m *Matrix[T]) All() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for it := m.Begin(); !it.Done(); it = it.Next() {
			if !yield(it.Cell()) {
				return
			}
		}
	}
}

// Backward yields every occupied cell in reverse row-major order.
func (m *Matrix[T]) Backward() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for it := m.Last(); !it.Done(); it = it.Prev() {
			if !yield(it.Cell()) {
				return
			}
		}
	}
}

// RowCells yields the occupied cells of a single row in column order.
func (m *Matrix[T]) RowCells(row int) iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		if m == nil {
			return
		}
		m.cells.ascendFrom(Coordinate{Row: row}, func(e entry[T]) bool {
			if e.key.Row != row {
				return false
			}

			return yield(e.cell())
		})
	}
}

// Cells returns a materialized copy of every occupied cell in row-major order.
// Complexity: O(n log n), Space O(n).
func (m *Matrix[T]) Cells() []Cell[T] {
	out := make([]Cell[T], 0, m.Size())
	for c := range m.All() {
		out = append(out, c)
	}

	return out
}
