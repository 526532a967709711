// Package geom holds the 2-D point and stroke primitives shared by the
// stroke-matching engine, together with the geometric normalizer that maps an
// arbitrary stroke into a canonical, scale- and position-invariant frame.
//
// 🚀 What does Normalize do?
//
//	Given a stroke (an ordered sequence of captured points), Normalize:
//	  1. computes the axis-aligned bounding box of all points,
//	  2. picks scale = max(width, height), falling back to 1 when the box is
//	     degenerate (single point or all points coincident),
//	  3. subtracts the box center and divides both axes by scale.
//
//	The result has its bounding-box center at (0,0) and its larger side equal
//	to 1, so two strokes of the same shape drawn at different sizes and
//	positions become directly comparable.
//
// ✨ Guarantees:
//   - pure: the input stroke is never mutated, a fresh slice is returned
//   - total: empty and single-point strokes are valid inputs
//   - timestamps (Point.T) are carried through unchanged
//
// Complexity:
//
//   - Time:   O(N)
//   - Memory: O(N)
package geom
