package sampler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strokematch/geom"
	"github.com/katalvlaran/strokematch/svgpath"
)

// MinCount is the smallest meaningful sample count.
const MinCount = 2

// ErrBadCount indicates a sample count below MinCount.
var ErrBadCount = errors.New("sampler: sample count must be at least 2")

// Sample places n points at equal arc-length increments along d, from 0 to
// d.Length() inclusive. Output points carry no timestamp.
//
// A zero-length descriptor yields an empty stroke and a nil error: the
// template is unavailable, which callers must tell apart from a real sample.
func Sample(d svgpath.Descriptor, n int) (geom.Stroke, error) {
	if n < MinCount {
		return nil, ErrBadCount
	}
	total := d.Length()
	if total <= 0 {
		return geom.Stroke{}, nil
	}

	out := make(geom.Stroke, n)
	last := float64(n - 1)
	for i := 0; i < n; i++ {
		pt := d.PointAt(float64(i) / last * total)
		out[i] = geom.Point{X: pt.X, Y: pt.Y}
	}

	return out, nil
}

// SampleSVG joins the given path-data strings into one logical curve and
// samples it with Sample.
func SampleSVG(n int, paths ...string) (geom.Stroke, error) {
	p, err := svgpath.ParseJoined(paths...)
	if err != nil {
		return nil, fmt.Errorf("sampler: %w", err)
	}

	return Sample(p, n)
}
