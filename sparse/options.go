// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// The default value D is NOT an option: it is a required constructor argument
// of New, fixed for the lifetime of the matrix.
package sparse

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxCoordinate is the inclusive upper bound for rows and columns.
	// Coordinates are logically unbounded up to the int range.
	DefaultMaxCoordinate = math.MaxInt

	// DefaultDegree is the btree node degree of the Cell Store.
	DefaultDegree = 32

	// DefaultMaxFragmentCells bounds the number of cells a single Fragment
	// call may materialize.
	DefaultMaxFragmentCells = 1 << 24

	// minDegree is the smallest degree google/btree accepts for a useful tree.
	minDegree = 2
)

// ---------- Internal panic messages ----------

const (
	panicMaxCoordinateInvalid = "sparse: WithMaxCoordinate: max must be >= 0"
	panicDegreeInvalid        = "sparse: WithDegree: degree must be >= 2"
	panicLoggerNil            = "sparse: WithLogger: logger must not be nil"
	panicFragmentCellsInvalid = "sparse: WithMaxFragmentCells: limit must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxCoord int         // inclusive bound for Row and Col
	degree   int         // btree degree
	maxFrag  int         // cell budget of one Fragment window
	log      *zap.Logger // debug events; Nop by default
}

// WithMaxCoordinate bounds both axes to [0, max]. Coordinates outside the
// bound are rejected with ErrInvalidCoordinate.
// Panics if max < 0.
func WithMaxCoordinate(max int) Option {
	if max < 0 {
		panic(panicMaxCoordinateInvalid)
	}

	return func(o *Options) { o.maxCoord = max }
}

// WithDegree sets the node degree of the ordered store. Larger degrees trade
// per-node copy cost for a shallower tree.
// Panics if degree < 2.
func WithDegree(degree int) Option {
	if degree < minDegree {
		panic(panicDegreeInvalid)
	}

	return func(o *Options) { o.degree = degree }
}

// WithMaxFragmentCells caps the number of cells (height*width) Fragment may
// copy. Larger windows are rejected with ErrWindowTooLarge.
// Panics if limit < 1.
func WithMaxFragmentCells(limit int) Option {
	if limit < 1 {
		panic(panicFragmentCellsInvalid)
	}

	return func(o *Options) { o.maxFrag = limit }
}

// WithLogger attaches a zap logger. The matrix emits Debug entries when a
// default write reclaims a stored cell and when a coordinate is rejected.
// Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.log = log }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		maxCoord: DefaultMaxCoordinate,
		degree:   DefaultDegree,
		maxFrag:  DefaultMaxFragmentCells,
		log:      zap.NewNop(),
	}
}

// gatherOptions applies opts in order over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// validCoordinate reports whether (row, col) lies in [0, maxCoord]².
// Complexity: O(1).
func (o Options) validCoordinate(row, col int) bool {
	return row >= 0 && col >= 0 && row <= o.maxCoord && col <= o.maxCoord
}

// windowShape returns the height and width of the inclusive window
// [r0..r1]×[c0..c1] and whether it fits the Fragment budget. Corners must be
// valid and ordered. Spans are checked before the +1 so a corner at
// math.MaxInt cannot overflow.
func (o Options) windowShape(r0, c0, r1, c1 int) (h, w int, ok bool) {
	dr, dc := r1-r0, c1-c0 // both in [0, MaxInt]: corners are non-negative
	if dr >= o.maxFrag || dc >= o.maxFrag {
		return 0, 0, false
	}
	h, w = dr+1, dc+1
	if h > o.maxFrag/w {
		return 0, 0, false
	}

	return h, w, true
}
