// Command sparsedemo fills both diagonals of a sparse matrix and prints a
// fragment, the occupied count and the occupied cells.
package main

import (
	"context"

	"github.com/nik2704/sparse-matrix/cmd/sparsedemo/app"
)

func main() {
	app.MustExecute(context.Background())
}
