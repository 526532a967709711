package geom_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokematch/geom"
)

const eps = 1e-9

// zigzag returns a small non-degenerate stroke used across tests.
func zigzag() geom.Stroke {
	return geom.Stroke{
		{X: 10, Y: 20, T: 1},
		{X: 40, Y: 80, T: 2},
		{X: 70, Y: 30, T: 3},
		{X: 90, Y: 60, T: 4},
	}
}

// TestNormalize_Empty verifies that empty input yields empty, non-nil output.
func TestNormalize_Empty(t *testing.T) {
	out := geom.Normalize(nil)
	require.NotNil(t, out)
	assert.Len(t, out, 0)
}

// TestNormalize_SinglePoint checks the scale floor: one point maps to the origin.
func TestNormalize_SinglePoint(t *testing.T) {
	out := geom.Normalize(geom.Stroke{{X: 42, Y: -7, T: 9}})
	require.Len(t, out, 1)
	assert.Equal(t, geom.Point{X: 0, Y: 0, T: 9}, out[0])
}

// TestNormalize_Coincident ensures all-coincident points never divide by zero.
func TestNormalize_Coincident(t *testing.T) {
	out := geom.Normalize(geom.Stroke{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}})
	for _, p := range out {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "no NaN on degenerate box")
		assert.Equal(t, 0.0, p.X)
		assert.Equal(t, 0.0, p.Y)
	}
}

// TestNormalize_CanonicalFrame verifies center (0,0) and larger side 1.
func TestNormalize_CanonicalFrame(t *testing.T) {
	out := geom.Normalize(zigzag())
	box := geom.Bounds(out)
	assert.InDelta(t, 1.0, box.Extent(), eps, "larger side must be 1")
	c := box.Center()
	assert.InDelta(t, 0.0, c.X, eps)
	assert.InDelta(t, 0.0, c.Y, eps)
	for i, p := range out {
		assert.Equal(t, zigzag()[i].T, p.T, "timestamps pass through")
	}
}

// TestNormalize_DoesNotMutate checks the input stroke is untouched.
func TestNormalize_DoesNotMutate(t *testing.T) {
	in := zigzag()
	_ = geom.Normalize(in)
	assert.Equal(t, zigzag(), in)
}

// TestNormalize_Invariance checks scale and translation invariance.
func TestNormalize_Invariance(t *testing.T) {
	base := geom.Normalize(zigzag())
	cases := []struct {
		name      string
		k, dx, dy float64
	}{
		{"Identity", 1, 0, 0},
		{"Shrink", 0.25, 3, 3},
		{"Grow", 7.5, -120, 480},
		{"Shift", 1, 1000, -1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			moved := geom.Normalize(geom.Transform(zigzag(), tc.k, tc.dx, tc.dy))
			require.Len(t, moved, len(base))
			for i := range base {
				assert.InDelta(t, base[i].X, moved[i].X, 1e-9)
				assert.InDelta(t, base[i].Y, moved[i].Y, 1e-9)
			}
		})
	}
}

// TestBounds covers empty and regular strokes.
func TestBounds(t *testing.T) {
	assert.Equal(t, geom.Rect{}, geom.Bounds(nil))
	box := geom.Bounds(zigzag())
	assert.Equal(t, geom.Rect{MinX: 10, MinY: 20, MaxX: 90, MaxY: 80}, box)
	assert.Equal(t, 80.0, box.Width())
	assert.Equal(t, 60.0, box.Height())
	assert.Equal(t, 80.0, box.Extent())
}

// TestEuclideanAndPathLength uses a 3-4-5 triangle.
func TestEuclideanAndPathLength(t *testing.T) {
	a, b := geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4}
	assert.Equal(t, 5.0, geom.Euclidean(a, b))
	assert.Equal(t, 10.0, geom.PathLength(geom.Stroke{a, b, a}))
	assert.Equal(t, 0.0, geom.PathLength(geom.Stroke{a}))
}

// TestHeading checks the forward, central and backward difference cases.
func TestHeading(t *testing.T) {
	s := geom.Stroke{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	assert.Equal(t, 0.0, geom.Heading(s, 0))
	assert.InDelta(t, math.Pi/4, geom.Heading(s, 1), eps)
	assert.InDelta(t, math.Pi/2, geom.Heading(s, 2), eps)
	assert.Equal(t, 0.0, geom.Heading(geom.Stroke{{X: 1, Y: 1}}, 0))
}

// TestPoint_FractionalTimestamp decodes high-resolution pointer timestamps.
func TestPoint_FractionalTimestamp(t *testing.T) {
	var s geom.Stroke
	require.NoError(t, json.Unmarshal([]byte(`[{"x":1,"y":2,"t":1712.25},{"x":3,"y":4}]`), &s))
	require.Len(t, s, 2)
	assert.Equal(t, 1712.25, s[0].T)
	assert.Zero(t, s[1].T)
	assert.Equal(t, 1712.25, geom.Normalize(s)[0].T)
}
