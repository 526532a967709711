// Package sampler converts a reference path into a fixed number of points
// placed at equal arc-length increments (arc-length resampling).
//
// 🚀 Algorithm:
//
//	L := d.Length()
//	if L == 0  → empty stroke ("template unavailable", not an error)
//	for i := 0; i < n; i++ {
//	    out[i] = d.PointAt(i / (n-1) * L)
//	}
//
// The first sample is the start of the curve, the last is its end. All
// sub-paths of the descriptor are walked as one logical curve, in order.
//
// Errors:
//   - ErrBadCount — n < 2, where the step L/(n-1) is undefined or degenerate.
//   - svgpath.ErrSyntax (wrapped) — SampleSVG could not parse the path data.
package sampler
