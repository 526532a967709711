// Package svgpath turns SVG path data ("M 80 40 C 60 70, 30 70, 20 40")
// into a measurable curve: the PathDescriptor of the reference glyph store.
//
// A reference glyph form is stored as one or more path-data strings. The
// sampler only needs two capabilities from them, captured by Descriptor:
//
//	Length()    — total drawn arc length,
//	PointAt(s)  — the point reached after travelling s units along the curve.
//
// ⚙️ Supported commands (absolute and relative):
//
//	M/m  L/l  H/h  V/v      move and straight lines
//	C/c  S/s                cubic Béziers (with reflected control point)
//	Q/q  T/t                quadratic Béziers (with reflected control point)
//	A/a                     elliptical arcs
//	Z/z                     close the current sub-path
//
// Parsing and flattening are done by github.com/tdewolff/canvas: curves and
// arcs become line segments within Options.Tolerance of the true curve. This
// package only keeps the resulting chords with their cumulative arc length.
//
// Sub-paths are measured as one logical curve: a MoveTo that starts a new
// sub-path contributes no length, the pen simply jumps.
//
// Complexity:
//
//   - Parse:   O(len(d) + S) where S is the number of flattened segments
//   - PointAt: O(log S)
package svgpath
