package geom

import "math"

// Bounds returns the axis-aligned bounding box of s.
// The zero Rect is returned for an empty stroke.
func Bounds(s Stroke) Rect {
	if len(s) == 0 {
		return Rect{}
	}
	r := Rect{MinX: s[0].X, MinY: s[0].Y, MaxX: s[0].X, MaxY: s[0].Y}
	for _, p := range s[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}

	return r
}

// Normalize maps s into the canonical frame: bounding-box center at the
// origin, larger side of the box equal to 1. A degenerate box (all points
// coincident) uses a scale of 1, so the result is just the translated stroke.
//
// Empty input yields an empty, non-nil stroke. s is never modified.
func Normalize(s Stroke) Stroke {
	out := make(Stroke, len(s))
	if len(s) == 0 {
		return out
	}

	box := Bounds(s)
	scale := box.Extent()
	if scale == 0 {
		scale = 1
	}
	c := box.Center()
	for i, p := range s {
		out[i] = Point{
			X: (p.X - c.X) / scale,
			Y: (p.Y - c.Y) / scale,
			T: p.T,
		}
	}

	return out
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// PathLength returns the polyline length of s (sum of consecutive distances).
func PathLength(s Stroke) float64 {
	var d float64
	for i := 1; i < len(s); i++ {
		d += Euclidean(s[i-1], s[i])
	}

	return d
}

// Heading returns the local writing angle (radians, atan2 convention) of s at
// index i: forward difference at the first point, backward difference at the
// last point and central difference elsewhere. Strokes shorter than two
// points have heading 0.
//
// Heading is not part of the default matching distance; it exists so a
// direction-weighted dtw.DistanceFunc can be built on top of it.
func Heading(s Stroke, i int) float64 {
	n := len(s)
	if n < 2 {
		return 0
	}
	switch {
	case i <= 0:
		return math.Atan2(s[1].Y-s[0].Y, s[1].X-s[0].X)
	case i >= n-1:
		return math.Atan2(s[n-1].Y-s[n-2].Y, s[n-1].X-s[n-2].X)
	default:
		return math.Atan2(s[i+1].Y-s[i-1].Y, s[i+1].X-s[i-1].X)
	}
}

// Transform returns a copy of s scaled uniformly by k and then translated by
// (dx, dy). Timestamps are preserved.
func Transform(s Stroke, k, dx, dy float64) Stroke {
	out := make(Stroke, len(s))
	for i, p := range s {
		out[i] = Point{X: p.X*k + dx, Y: p.Y*k + dy, T: p.T}
	}

	return out
}
