// SPDX-License-Identifier: MIT

// Package sparse - Matrix: the public surface over the Cell Store.
//
// Purpose:
//   - Behave like a dense, logically infinite 2D array m[row][col] of T.
//   - Physically store only cells whose value differs from the default D.
//   - Expose two-step indexing (Row(r).At(c)), direct At/Set, and ordered iteration.
//
// Concurrency:
//   - A Matrix is NOT safe for unsynchronized concurrent use. Callers that share
//     one across goroutines must serialize access themselves.
//
// Complexity quicksheet:
//   - At/Set/Erase: O(log n); Size/DefaultValue: O(1); Clone: O(1) (COW);
//     Move: O(1); Fragment: O(h*w*log n).
package sparse

import "go.uber.org/zap"

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxErase    = "Erase"
	ctxFragment = "Fragment"
)

// Matrix is a sparse two-dimensional container of comparable values.
type Matrix[T comparable] struct {
	cells *store[T]
	opts  Options
}

// New creates an empty matrix whose every cell logically holds def.
// MAIN DESCRIPTION:
//   - def is fixed for the lifetime of the matrix; writing def to a cell
//     removes it from storage.
//
// Inputs:
//   - def: the default value D.
//   - opts: WithMaxCoordinate, WithDegree, WithMaxFragmentCells, WithLogger.
//
// Complexity:
//   - Time O(1), Space O(1).
func New[T comparable](def T, opts ...Option) *Matrix[T] {
	o := gatherOptions(opts...)

	return &Matrix[T]{
		cells: newStore(def, o.degree),
		opts:  o,
	}
}

// Row fixes the first coordinate and returns a handle for the second step.
// No validation happens here; see RowHandle.At.
func (m *Matrix[T]) Row(row int) RowHandle[T] {
	return RowHandle[T]{m: m, row: row}
}

// At returns the logical value at (row, col): the stored value, or the default.
// Never creates storage.
// Errors: ErrInvalidCoordinate, ErrNilMatrix.
// Complexity: O(log n).
func (m *Matrix[T]) At(row, col int) (T, error) {
	return m.bind(row, col).Read()
}

// Set assigns v at (row, col). Assigning the default erases the cell.
// After a successful Set, At(row, col) == v.
// Errors: ErrInvalidCoordinate, ErrNilMatrix; storage is untouched on error.
// Complexity: O(log n).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if m == nil {
		return coordErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	if err := m.check(ctxSet, row, col); err != nil {
		return err
	}
	m.write(Coordinate{Row: row, Col: col}, v)

	return nil
}

// Erase removes (row, col) from storage. Idempotent.
// Errors: ErrInvalidCoordinate, ErrNilMatrix.
func (m *Matrix[T]) Erase(row, col int) error {
	if m == nil {
		return coordErrorf(ctxErase, row, col, ErrNilMatrix)
	}
	if err := m.check(ctxErase, row, col); err != nil {
		return err
	}
	if m.cells.erase(Coordinate{Row: row, Col: col}) {
		m.opts.log.Debug("sparse: cell erased",
			zap.Int("row", row), zap.Int("col", col), zap.Int("size", m.cells.count()))
	}

	return nil
}

// Size returns the number of occupied cells. A nil matrix has size 0.
// Complexity: O(1).
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return m.cells.count()
}

// DefaultValue returns D. A nil matrix returns the zero value of T.
func (m *Matrix[T]) DefaultValue() T {
	if m == nil {
		var zero T

		return zero
	}

	return m.cells.def
}

// Clear removes every occupied cell; the default is kept.
func (m *Matrix[T]) Clear() {
	if m == nil {
		return
	}
	m.cells.clear()
}

// Clone returns a deep copy: same default, same options, an independent copy
// of every stored entry. Values are copied by assignment, so pointer-like T
// still share their referents.
// Complexity: O(1) now; the tree copies nodes lazily on later writes.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}

	return &Matrix[T]{cells: m.cells.clone(), opts: m.opts}
}

// Move transfers the stored entries to a new matrix and leaves m empty with
// the same default and options. m remains valid and usable.
// Complexity: O(1).
func (m *Matrix[T]) Move() *Matrix[T] {
	if m == nil {
		return nil
	}
	moved := &Matrix[T]{cells: m.cells, opts: m.opts}
	m.cells = newStore(m.cells.def, m.opts.degree)

	return moved
}

// check validates a complete coordinate against the configured domain.
func (m *Matrix[T]) check(method string, row, col int) error {
	if m.opts.validCoordinate(row, col) {
		return nil
	}
	m.opts.log.Debug("sparse: coordinate rejected",
		zap.String("method", method), zap.Int("row", row), zap.Int("col", col))

	return coordErrorf(method, row, col, ErrInvalidCoordinate)
}

// write is the single mutation path shared by Set and CellHandle.Set.
// The coordinate must already be validated.
func (m *Matrix[T]) write(c Coordinate, v T) {
	if m.cells.set(c, v) {
		m.opts.log.Debug("sparse: cell reclaimed by default write",
			zap.Int("row", c.Row), zap.Int("col", c.Col), zap.Int("size", m.cells.count()))
	}
}
