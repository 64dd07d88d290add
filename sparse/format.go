// SPDX-License-Identifier: MIT

// Package sparse - dense windows & formatting.
package sparse

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtCell = "%v=%v\n" // "(row,col)=value"
	_fmtSize = "size=%d\n"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// Fragment copies the inclusive window [r0..r1]×[c0..c1] into a dense
// row-major [][]T. Absent cells read as the default. Reads only.
//
// Errors:
//   - ErrInvalidCoordinate when either corner lies outside the domain.
//   - ErrBadWindow when r1 < r0 or c1 < c0.
//   - ErrWindowTooLarge when the window holds more than the configured cell
//     budget (WithMaxFragmentCells), including spans that overflow int.
//   - ErrNilMatrix on a nil receiver.
//
// Complexity:
//   - Time O(h*w*log n), Space O(h*w).
func (m *Matrix[T]) Fragment(r0, c0, r1, c1 int) ([][]T, error) {
	if m == nil {
		return nil, coordErrorf(ctxFragment, r0, c0, ErrNilMatrix)
	}
	if err := m.check(ctxFragment, r0, c0); err != nil {
		return nil, err
	}
	if err := m.check(ctxFragment, r1, c1); err != nil {
		return nil, err
	}
	if r1 < r0 || c1 < c0 {
		return nil, coordErrorf(ctxFragment, r1, c1, ErrBadWindow)
	}

	h, w, ok := m.opts.windowShape(r0, c0, r1, c1)
	if !ok {
		return nil, coordErrorf(ctxFragment, r1, c1, ErrWindowTooLarge)
	}

	out := make([][]T, h)
	for i := range out {
		row := make([]T, w)
		for j := range row {
			row[j] = m.cells.get(Coordinate{Row: r0 + i, Col: c0 + j})
		}
		out[i] = row
	}

	return out, nil
}

// String lists the occupied cells as "(row,col)=value" lines in row-major
// order, followed by the size line.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for c := range m.All() {
		fmt.Fprintf(&sb, _fmtCell, c.Coordinate(), c.Value)
	}
	fmt.Fprintf(&sb, _fmtSize, m.Size())

	return sb.String()
}
