// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the store, the handles and the iterator.
// Errors and options live in dedicated files (errors.go, options.go).
package sparse

import "fmt"

// Coordinate identifies a logical cell by (Row, Col).
// Ordering is lexicographic (row-major): rows first, columns within a row.
type Coordinate struct {
	Row int // first axis
	Col int // second axis
}

// Less reports whether c sorts strictly before o in row-major order.
// Complexity: O(1).
func (c Coordinate) Less(o Coordinate) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is the occupied-cell view yielded by iteration.
// Value is a copy taken at yield time, not an alias into storage.
type Cell[T any] struct {
	Row   int
	Col   int
	Value T
}

// Coordinate returns the position of the cell.
func (c Cell[T]) Coordinate() Coordinate {
	return Coordinate{Row: c.Row, Col: c.Col}
}

// Unpack destructures the cell into (row, col, value).
func (c Cell[T]) Unpack() (row, col int, value T) {
	return c.Row, c.Col, c.Value
}

// entry is the btree item: a coordinate plus its stored value.
// Lookups build an entry with only the key set; value is ignored by the ordering.
type entry[T any] struct {
	key   Coordinate
	value T
}

// cell copies the entry out as a read-only view.
func (e entry[T]) cell() Cell[T] {
	return Cell[T]{Row: e.key.Row, Col: e.key.Col, Value: e.value}
}

// entryLess orders entries by key only (row-major).
func entryLess[T any](a, b entry[T]) bool {
	return a.key.Less(b.key)
}
