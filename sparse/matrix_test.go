// Package sparse_test contains unit tests for the Matrix public surface.
package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nik2704/sparse-matrix/sparse"
)

// TestEmptyMatrixReadsDefault checks that reading an empty matrix yields D
// and never creates storage.
func TestEmptyMatrixReadsDefault(t *testing.T) {
	m := sparse.New[int](0)
	require.Equal(t, 0, m.Size()) // empty on construction

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
	require.Equal(t, 0, m.Size()) // read is pure

	require.Equal(t, 0, m.Row(0).At(0).Value())
	require.Equal(t, 0, m.Size())
}

// TestSetThenDefaultReclaims covers write, read back and delete-on-default.
func TestSetThenDefaultReclaims(t *testing.T) {
	m := sparse.New[int](0)

	require.NoError(t, m.Set(100, 100, 314))
	require.Equal(t, 1, m.Size())

	v, err := m.At(100, 100)
	require.NoError(t, err)
	require.Equal(t, 314, v)

	require.NoError(t, m.Set(100, 100, 0)) // default write erases
	require.Equal(t, 0, m.Size())

	v, err = m.At(100, 100)
	require.NoError(t, err)
	require.Equal(t, 0, v)
	require.Empty(t, m.Cells())
}

// TestDefaultWriteOnAbsentIsNoop ensures writing D to an empty cell keeps size.
func TestDefaultWriteOnAbsentIsNoop(t *testing.T) {
	m := sparse.New[int](-1)
	require.NoError(t, m.Set(3, 4, 7))

	require.NoError(t, m.Set(5, 5, -1))
	require.NoError(t, m.Set(5, 5, -1))
	require.Equal(t, 1, m.Size())

	require.NoError(t, m.Erase(9, 9)) // idempotent erase
	require.NoError(t, m.Erase(3, 4))
	require.NoError(t, m.Erase(3, 4))
	require.Equal(t, 0, m.Size())
}

// TestOverwriteKeepsSingleEntry checks insert-or-overwrite semantics.
func TestOverwriteKeepsSingleEntry(t *testing.T) {
	m := sparse.New[string]("")
	require.NoError(t, m.Set(1, 2, "a"))
	require.NoError(t, m.Set(1, 2, "b"))
	require.Equal(t, 1, m.Size())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, "b", v)
}

// TestNonZeroDefault verifies D is returned for absent cells and is never stored.
func TestNonZeroDefault(t *testing.T) {
	m := sparse.New[float64](1.5)
	require.Equal(t, 1.5, m.DefaultValue())

	v, err := m.At(42, 7)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	require.NoError(t, m.Set(42, 7, 0)) // zero is NOT the default here
	require.Equal(t, 1, m.Size())
	require.NoError(t, m.Set(42, 7, 1.5))
	require.Equal(t, 0, m.Size())
}

// TestInvalidCoordinates ensures negative and out-of-bound coordinates are
// rejected and leave storage untouched.
func TestInvalidCoordinates(t *testing.T) {
	m := sparse.New[int](0, sparse.WithMaxCoordinate(99))
	require.NoError(t, m.Set(1, 1, 5))

	cases := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row above max", 100, 0},
		{"col above max", 0, 100},
		{"min int", math.MinInt, math.MinInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.At(tc.row, tc.col)
			require.ErrorIs(t, err, sparse.ErrInvalidCoordinate)

			err = m.Set(tc.row, tc.col, 9)
			require.ErrorIs(t, err, sparse.ErrInvalidCoordinate)

			err = m.Erase(tc.row, tc.col)
			require.ErrorIs(t, err, sparse.ErrInvalidCoordinate)

			require.Equal(t, 1, m.Size()) // rejected writes never mutate
		})
	}

	// the inclusive bound itself is valid
	require.NoError(t, m.Set(99, 99, 1))
	require.Equal(t, 2, m.Size())
}

// TestLargeCoordinates checks the int boundary does not break ordering or lookups.
func TestLargeCoordinates(t *testing.T) {
	m := sparse.New[int](0)
	require.NoError(t, m.Set(math.MaxInt, math.MaxInt, 1))
	require.NoError(t, m.Set(math.MaxInt, 0, 2))
	require.NoError(t, m.Set(0, math.MaxInt, 3))

	got := m.Cells()
	require.Len(t, got, 3)
	require.Equal(t, sparse.Cell[int]{Row: 0, Col: math.MaxInt, Value: 3}, got[0])
	require.Equal(t, sparse.Cell[int]{Row: math.MaxInt, Col: 0, Value: 2}, got[1])
	require.Equal(t, sparse.Cell[int]{Row: math.MaxInt, Col: math.MaxInt, Value: 1}, got[2])
}

// TestNilMatrix verifies nil receivers report ErrNilMatrix instead of panicking.
func TestNilMatrix(t *testing.T) {
	var m *sparse.Matrix[int]

	require.Equal(t, 0, m.Size())
	require.Equal(t, 0, m.DefaultValue())

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), sparse.ErrNilMatrix)
	require.ErrorIs(t, m.Erase(0, 0), sparse.ErrNilMatrix)
	require.ErrorIs(t, m.Row(0).At(0).Set(1).Err(), sparse.ErrNilMatrix)

	_, err = m.Fragment(0, 0, 1, 1)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	require.Nil(t, m.Clone())
	require.Nil(t, m.Move())
	require.Empty(t, m.Cells())
	require.True(t, m.Begin().Equal(m.End()))
	m.Clear()
}

// TestCloneIndependence ensures Clone deep-copies entries and keeps D.
func TestCloneIndependence(t *testing.T) {
	m := sparse.New[int](7)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(2, 3, 4))

	c := m.Clone()
	require.Equal(t, 7, c.DefaultValue())
	require.Equal(t, m.Cells(), c.Cells())

	require.NoError(t, c.Set(0, 0, 9)) // mutate clone only
	require.NoError(t, c.Set(2, 3, 7)) // erase in clone only
	require.NoError(t, m.Set(5, 5, 5)) // mutate original only

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 3, m.Size())

	v, err = c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 9, v)
	require.Equal(t, 1, c.Size())
}

// TestMoveLeavesSourceEmptyAndUsable checks ownership transfer semantics.
func TestMoveLeavesSourceEmptyAndUsable(t *testing.T) {
	m := sparse.New[int](0)
	require.NoError(t, m.Set(1, 1, 11))
	require.NoError(t, m.Set(2, 2, 22))

	moved := m.Move()
	require.Equal(t, 2, moved.Size())
	require.Equal(t, 0, m.Size())
	require.Equal(t, 0, m.DefaultValue())

	require.NoError(t, m.Set(3, 3, 33)) // source stays usable
	require.Equal(t, 1, m.Size())
	require.Equal(t, 2, moved.Size()) // and independent
}

// TestClear drops every cell and keeps D.
func TestClear(t *testing.T) {
	m := sparse.New[int](5)
	for i := 0; i < 10; i++ {
		require.NoError(t, m.Set(i, i, i))
	}
	require.Equal(t, 9, m.Size()) // (5,5)=5 is the default

	m.Clear()
	require.Equal(t, 0, m.Size())
	require.Equal(t, 5, m.DefaultValue())
	require.True(t, m.Begin().Done())
}

// TestFragment checks dense window extraction and its validation.
func TestFragment(t *testing.T) {
	m := sparse.New[int](0)
	require.NoError(t, m.Set(1, 1, 1))
	require.NoError(t, m.Set(2, 3, 5))

	f, err := m.Fragment(1, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0, 0}, {0, 0, 5}}, f)
	require.Equal(t, 2, m.Size()) // fragment reads are pure

	_, err = m.Fragment(2, 2, 1, 1)
	require.ErrorIs(t, err, sparse.ErrBadWindow)

	_, err = m.Fragment(-1, 0, 1, 1)
	require.ErrorIs(t, err, sparse.ErrInvalidCoordinate)
}

// TestFragmentWindowAtIntBoundary ensures spans reaching math.MaxInt are
// rejected instead of overflowing the window size.
func TestFragmentWindowAtIntBoundary(t *testing.T) {
	m := sparse.New[int](0)

	require.NotPanics(t, func() {
		_, err := m.Fragment(0, 0, math.MaxInt, 0)
		require.ErrorIs(t, err, sparse.ErrWindowTooLarge)
	})
	require.NotPanics(t, func() {
		_, err := m.Fragment(0, 0, 0, math.MaxInt)
		require.ErrorIs(t, err, sparse.ErrWindowTooLarge)
	})
	require.NotPanics(t, func() {
		_, err := m.Fragment(0, 0, math.MaxInt-1, math.MaxInt-1)
		require.ErrorIs(t, err, sparse.ErrWindowTooLarge)
	})

	// a small window at the far corner is still fine
	require.NoError(t, m.Set(math.MaxInt, math.MaxInt, 9))
	f, err := m.Fragment(math.MaxInt-1, math.MaxInt-1, math.MaxInt, math.MaxInt)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}, {0, 9}}, f)
}

// TestFragmentCellBudget checks WithMaxFragmentCells bounds height*width.
func TestFragmentCellBudget(t *testing.T) {
	m := sparse.New[int](0, sparse.WithMaxFragmentCells(6))

	f, err := m.Fragment(0, 0, 1, 2) // 2×3 == budget
	require.NoError(t, err)
	require.Len(t, f, 2)

	_, err = m.Fragment(0, 0, 2, 2) // 3×3 > budget
	require.ErrorIs(t, err, sparse.ErrWindowTooLarge)

	_, err = m.Fragment(0, 0, 6, 0) // 7×1 > budget
	require.ErrorIs(t, err, sparse.ErrWindowTooLarge)

	require.Panics(t, func() { sparse.WithMaxFragmentCells(0) })
}

// TestStringOutput checks that String() lists cells row-major plus size.
func TestStringOutput(t *testing.T) {
	m := sparse.New[int](0)
	require.NoError(t, m.Set(2, 0, 3))
	require.NoError(t, m.Set(0, 5, 1))

	require.Equal(t, "(0,5)=1\n(2,0)=3\nsize=2\n", m.String())
	require.Equal(t, "size=0\n", sparse.New[int](0).String())
}
