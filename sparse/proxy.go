// SPDX-License-Identifier: MIT

// Package sparse - Coordinate Proxy: two-step indexing m.Row(r).At(c).
//
// State machine (per handle value):
//
//	RowHandle (row fixed)  --At(c)-->  CellHandle (coordinate complete, value pre-fetched)
//	CellHandle             --At(c')--> CellHandle (same row, column rebound)
//	CellHandle             --Set(v)--> CellHandle (store mutated, value refreshed)
//	CellHandle             --Value()-> T (pure read)
//
// Handles borrow the matrix; they are cheap values meant to live for a single
// expression. Holding one across unrelated mutations yields a stale Value().
package sparse

// RowHandle is the result of single-axis indexing. It carries no validation
// state: the coordinate is checked when it becomes complete (At).
type RowHandle[T comparable] struct {
	m   *Matrix[T]
	row int
}

// Row returns the fixed first-axis coordinate.
func (h RowHandle[T]) Row() int { return h.row }

// At completes the coordinate with col, validates it and pre-fetches the
// current logical value. An invalid coordinate yields a handle whose Err() is
// ErrInvalidCoordinate; such a handle reads as the default and rejects writes.
// Complexity: O(log n).
func (h RowHandle[T]) At(col int) CellHandle[T] {
	return h.m.bind(h.row, col)
}

// CellHandle is a complete (row, col) coordinate bound to a matrix.
type CellHandle[T comparable] struct {
	m     *Matrix[T]
	pos   Coordinate
	value T     // pre-fetched logical value
	err   error // non-nil for an invalid coordinate (sticky)
}

// At rebinds the column under the same fixed row. The coordinate is always
// "row fixed, column most recently indexed"; columns do not accumulate.
func (h CellHandle[T]) At(col int) CellHandle[T] {
	return h.m.bind(h.pos.Row, col)
}

// Coordinate returns the bound position.
func (h CellHandle[T]) Coordinate() Coordinate { return h.pos }

// Value returns the pre-fetched logical value. Reading never creates storage.
func (h CellHandle[T]) Value() T { return h.value }

// Read returns the pre-fetched value together with the handle error.
func (h CellHandle[T]) Read() (T, error) { return h.value, h.err }

// Err reports why the coordinate was rejected, or nil.
func (h CellHandle[T]) Err() error { return h.err }

// Set writes v at the bound coordinate and returns a handle over the same
// coordinate holding v, so repeated writes chain and the last one wins:
//
//	m.Row(100).At(100).Set(314).Set(0).Set(217) // (100,100) == 217
//
// Writing the default removes the cell. A handle with an error is returned
// unchanged and storage is not touched.
// Complexity: O(log n).
func (h CellHandle[T]) Set(v T) CellHandle[T] {
	if h.err != nil {
		return h
	}
	h.m.write(h.pos, v)
	h.value = v

	return h
}

// bind builds a CellHandle for (row, col), validating the coordinate.
func (m *Matrix[T]) bind(row, col int) CellHandle[T] {
	h := CellHandle[T]{m: m, pos: Coordinate{Row: row, Col: col}}
	if m == nil {
		h.err = coordErrorf(ctxAt, row, col, ErrNilMatrix)

		return h
	}
	if err := m.check(ctxAt, row, col); err != nil {
		h.value = m.cells.def
		h.err = err

		return h
	}
	h.value = m.cells.get(h.pos)

	return h
}
