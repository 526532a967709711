package svgpath

import (
	"errors"

	"github.com/katalvlaran/strokematch/geom"
)

// DefaultTolerance is the default flattening tolerance, in path units.
const DefaultTolerance = 0.05

// ErrSyntax indicates malformed path data.
var ErrSyntax = errors.New("svgpath: invalid path data")

// Descriptor is a curve that can be measured and walked by arc length.
type Descriptor interface {
	// Length returns the total drawn length of the curve.
	Length() float64
	// PointAt returns the point at arc-length offset s, with s clamped to
	// [0, Length()].
	PointAt(s float64) geom.Point
}

// Options configures parsing.
//
//   - Tolerance — maximum distance between a curve and its flattened chords.
//     Values ≤ 0 fall back to DefaultTolerance.
type Options struct {
	Tolerance float64
}

// DefaultOptions returns Options{Tolerance: DefaultTolerance}.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// segment is one flattened chord with its cumulative start offset.
type segment struct {
	a, b   geom.Point
	start  float64
	length float64
}
