package svgpath

import (
	"sort"

	"github.com/katalvlaran/strokematch/geom"
)

// Path is a flattened, measurable path. The zero value and a nil *Path are
// both empty paths.
//
// A Path is immutable once returned by Parse; PointAt and Length are safe for
// concurrent use.
type Path struct {
	segs   []segment
	length float64
	origin geom.Point // first MoveTo, reported by PointAt on an empty path
}

// Length implements Descriptor.
func (p *Path) Length() float64 {
	if p == nil {
		return 0
	}
	return p.length
}

// PointAt implements Descriptor.
func (p *Path) PointAt(s float64) geom.Point {
	if p == nil {
		return geom.Point{}
	}
	n := len(p.segs)
	if n == 0 {
		return p.origin
	}
	if s <= 0 {
		return p.segs[0].a
	}
	if s >= p.length {
		return p.segs[n-1].b
	}
	// first segment whose end reaches s
	i := sort.Search(n, func(k int) bool {
		return p.segs[k].start+p.segs[k].length >= s
	})
	if i == n {
		i = n - 1
	}
	seg := p.segs[i]
	t := (s - seg.start) / seg.length

	return geom.Point{
		X: seg.a.X + (seg.b.X-seg.a.X)*t,
		Y: seg.a.Y + (seg.b.Y-seg.a.Y)*t,
	}
}

// Segments returns the number of flattened chords.
func (p *Path) Segments() int {
	if p == nil {
		return 0
	}
	return len(p.segs)
}

// Vertices returns the flattened polyline of every sub-path, concatenated.
// A vertex is emitted at each sub-path start followed by every chord end.
func (p *Path) Vertices() geom.Stroke {
	if p == nil {
		return geom.Stroke{}
	}
	out := make(geom.Stroke, 0, len(p.segs)+1)
	for i, seg := range p.segs {
		if i == 0 || p.segs[i-1].b != seg.a {
			out = append(out, seg.a)
		}
		out = append(out, seg.b)
	}

	return out
}

// chord appends the straight segment a-b; zero-length chords are dropped.
func (p *Path) chord(a, b geom.Point) {
	d := geom.Euclidean(a, b)
	if d <= 0 {
		return
	}
	p.segs = append(p.segs, segment{a: a, b: b, start: p.length, length: d})
	p.length += d
}
