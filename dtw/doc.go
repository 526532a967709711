// Package dtw computes the Dynamic Time Warping (DTW) alignment between two
// 2-D point sequences, returning both the cumulative cost and the optimal
// warping path.
//
// 🚀 What is DTW?
//
//	DTW finds the best monotonic correspondence between two sequences that
//	may vary in speed by warping the time axis to minimize cumulative
//	distance. For handwriting it lets a learner's stroke, captured at an
//	uneven pace, be compared point by point with an evenly sampled reference.
//
// ✨ Key features:
//   - pluggable point distance (DistanceFunc, Euclidean by default)
//   - full-matrix mode: exact O(N·M) time & memory, with path recovery
//   - two-rows mode: O(M) memory when only the cost is needed
//   - optional Sakoe–Chiba window (|i−j| ≤ w) and slope penalty
//   - deterministic tie-breaking during backtracking
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strokematch/dtw"
//
//	opts := dtw.DefaultOptions()        // no window, path returned
//	res, err := dtw.Align(user, ref, dtw.Euclidean, &opts)
//	if err != nil {
//	    // ErrEmptySequence: nothing to align
//	}
//	fmt.Println(res.Cost, len(res.Path))
//
// Guarantees (FullMatrix, ReturnPath):
//
//   - Path[0] == {0,0} and Path[len-1] == {n-1,m-1}
//   - every step increases I, J or both by exactly one
//   - max(n,m) ≤ len(Path) ≤ n+m-1
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
//
// The matrix is allocated per call; Align holds no state between calls and
// is safe for concurrent use.
package dtw
