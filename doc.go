// Package sparsematrix is an in-memory, logically infinite two-dimensional
// sparse matrix for Go.
//
// What is it?
//
//	A dense-looking m[row][col] container that physically stores only the
//	cells whose value differs from a default fixed at construction:
//		• Two-step indexing: m.Row(r).At(c).Value() / .Set(v)
//		• Writing the default frees the cell; reads never allocate
//		• Ordered (row-major) iteration over occupied cells
//		• Clone / Move, dense Fragment windows
//
// Layout:
//
//	sparse/          — Matrix, RowHandle/CellHandle, Iterator, options & errors
//	cmd/sparsedemo/  — driver: fill both diagonals, print fragment and cells
//	internal/cfg/    — driver configuration (.env + SPARSE_* variables)
//	internal/cli/    — cobra root command
//	internal/demo/   — driver scenario and rendering
//
// Quick example:
//
//	m := sparse.New[int](0)
//	m.Row(100).At(100).Set(314)
//	fmt.Println(m.Size()) // 1
//
//	go get github.com/nik2704/sparse-matrix/sparse
package sparsematrix
