package dtw

import (
	"errors"

	"github.com/katalvlaran/strokematch/geom"
)

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("dtw: input sequences must be non-empty")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrBadWindow indicates a Window below -1.
	ErrBadWindow = errors.New("dtw: Window must be >= -1")

	// ErrBadPenalty indicates a negative SlopePenalty.
	ErrBadPenalty = errors.New("dtw: SlopePenalty must be non-negative")
)

// DistanceFunc measures the local cost of matching point a with point b.
// It must be non-negative and symmetric for the cost to be meaningful.
type DistanceFunc func(a, b geom.Point) float64

// Euclidean is the default DistanceFunc: straight-line distance in the
// (normalized) plane.
func Euclidean(a, b geom.Point) float64 {
	return geom.Euclidean(a, b)
}

// MemoryMode controls how DTW stores its cumulative-cost matrix.
//
//   - FullMatrix — keep the entire n×m matrix in memory.
//     Allows cost + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows — only keep the previous and current row.
//     Memory: O(m), but cannot recover the path.
//     Use when you only need the cost.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, uses O(M) memory.
	TwoRows
)

// Coord is one (i, j) pair of a warping path: a[I] is matched with b[J].
type Coord struct {
	I, J int
}

// Result is the outcome of an alignment.
//
//   - Cost — cumulative cost D[n-1][m-1] (≥ 0 for a non-negative distance).
//   - Path — the warping path from (0,0) to (n-1,m-1), oldest first; nil when
//     not requested. Every step increases I, J or both by exactly one.
type Result struct {
	Cost float64
	Path []Coord
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       — maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     -1 means no windowing constraint; 0 forces the pure diagonal.
//   - SlopePenalty — extra cost added to every non-diagonal step.
//   - ReturnPath   — if true, Align backtracks and returns the warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   — choose FullMatrix or TwoRows storage.
//
// The zero value is NOT the default (Window 0 is the strict diagonal); start
// from DefaultOptions.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the plain, unconstrained DTW used for stroke
// matching: no window, no slope penalty, path returned, full matrix.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   true,
		MemoryMode:   FullMatrix,
	}
}
