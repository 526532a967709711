package geom

import "math"

// Point is a single 2-D sample of a stroke.
//
// T is an advisory capture timestamp in milliseconds (0 when absent). Geometry
// operations ignore it and only pass it through.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	T float64 `json:"t,omitempty" yaml:"t,omitempty"`
}

// Stroke is an ordered sequence of points; index order is capture order.
// Strokes of length 0 or 1 are degenerate but valid everywhere in this module.
type Stroke []Point

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns MaxX-MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY-MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the midpoint of the box.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Extent returns the larger of Width and Height.
func (r Rect) Extent() float64 { return math.Max(r.Width(), r.Height()) }
