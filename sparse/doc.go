// Package sparse provides a logically infinite two-dimensional sparse matrix.
//
// What:
//
//   - Matrix[T] maps non-negative (row, col) coordinates to values of T.
//   - Every coordinate logically holds a default value D fixed at construction.
//   - Only cells whose value differs from D are stored; writing D erases.
//
// Indexing:
//
//	m := sparse.New[int](0)
//	m.Row(100).At(100).Set(314)       // m[100][100] = 314
//	v := m.Row(100).At(100).Value()   // 314
//	m.Row(100).At(100).Set(314).Set(0) // chained writes, last one wins → erased
//
// Row(r) fixes the first axis; At(c) completes and validates the coordinate.
// Reads never create storage. Matrix.At/Set are the direct two-argument forms.
//
// Iteration:
//
//	for c := range m.All() { fmt.Println(c.Row, c.Col, c.Value) }
//	for it := m.Begin(); !it.Equal(m.End()); it = it.Next() { ... }
//	for it := m.Last(); !it.Done(); it = it.Prev() { ... } // reverse
//
// Cells come out in row-major order (ascending row, then column). Seek(r, c)
// starts a walk at the first occupied cell at or after (r, c).
//
// Complexity:
//
//   - At / Set / Erase: O(log n), n = occupied cells.
//   - Size: O(1). Full iteration: O(n log n).
//
// Errors:
//
//   - ErrInvalidCoordinate: negative coordinate or above WithMaxCoordinate.
//   - ErrNilMatrix: nil receiver.
//   - ErrBadWindow: Fragment window with end before start.
//   - ErrWindowTooLarge: Fragment window above WithMaxFragmentCells.
//
// A Matrix is not safe for concurrent mutation; serialize access externally.
package sparse
