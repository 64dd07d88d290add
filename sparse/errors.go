// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public methods wrap
// them with call-site context (method and coordinates); callers match with
// errors.Is. User-triggered conditions never panic.

package sparse

import "github.com/go-faster/errors"

// Every message is prefixed with "sparse: ..." for easy grepping across logs.
var (
	// ErrInvalidCoordinate is returned when a row or column is negative or
	// exceeds the configured maximum (see WithMaxCoordinate). It is detected
	// when the coordinate becomes complete, i.e. on the column step.
	ErrInvalidCoordinate = errors.New("sparse: invalid coordinate")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrBadWindow indicates a Fragment window whose end precedes its start.
	ErrBadWindow = errors.New("sparse: invalid window")

	// ErrWindowTooLarge indicates a Fragment window above the cell budget.
	ErrWindowTooLarge = errors.New("sparse: window too large")
)

// coordErrorf wraps err with the method tag and coordinates, preserving the sentinel.
func coordErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Matrix.%s(%d,%d)", method, row, col)
}
